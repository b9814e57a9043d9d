package dto

// UploadResponse - результат загрузки файла
type UploadResponse struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FileURL  string `json:"fileUrl"`
	Size     int64  `json:"size"`
}
