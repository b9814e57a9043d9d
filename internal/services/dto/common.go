package dto

// Pagination - блок пагинации в списковых ответах
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// NewPagination собирает блок пагинации из total/page/limit
func NewPagination(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasMore:    int64(page*limit) < total,
	}
}
