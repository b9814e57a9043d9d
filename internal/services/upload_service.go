package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"nexues_backend/internal/services/dto"
	"nexues_backend/internal/storage"
	"nexues_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	UploadResume(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	UploadLogo(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	GetFile(ctx context.Context, path string) (io.ReadCloser, error)
}

// Допустимые расширения по типу загрузки
var (
	resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	logoExtensions   = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}
)

type UploadServiceImpl struct {
	storage       storage.Storage
	maxResumeSize int64
	maxLogoSize   int64
}

func NewUploadService(store storage.Storage, maxResumeSize, maxLogoSize int64) UploadService {
	return &UploadServiceImpl{
		storage:       store,
		maxResumeSize: maxResumeSize,
		maxLogoSize:   maxLogoSize,
	}
}

// UploadResume принимает резюме: .pdf/.doc/.docx, до 5 МБ
func (s *UploadServiceImpl) UploadResume(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	return s.upload(ctx, file, "resumes", resumeExtensions, s.maxResumeSize)
}

// UploadLogo принимает логотип компании: изображение до 2 МБ
func (s *UploadServiceImpl) UploadLogo(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	return s.upload(ctx, file, "logos", logoExtensions, s.maxLogoSize)
}

// GetFile открывает сохраненный файл для отдачи клиенту
func (s *UploadServiceImpl) GetFile(ctx context.Context, path string) (io.ReadCloser, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("File not found")
	}
	return s.storage.Get(ctx, path)
}

func (s *UploadServiceImpl) upload(ctx context.Context, file *multipart.FileHeader, prefix string, allowed map[string]bool, maxSize int64) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return nil, apperrors.ErrInvalidFileType
	}
	if file.Size > maxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	// Имя файла генерируем сами: оригинальное имя не доверено
	name := uuid.NewString() + ext
	path := fmt.Sprintf("%s/%s", prefix, name)

	contentType := file.Header.Get("Content-Type")
	if err := s.storage.Save(ctx, path, src, file.Size, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		FileName: name,
		FilePath: path,
		FileURL:  url,
		Size:     file.Size,
	}, nil
}
