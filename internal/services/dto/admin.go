package dto

import (
	"time"

	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
)

// ListQuery - общая пагинация admin-списков
type ListQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// DashboardStats - сводка для admin-дашборда
type DashboardStats struct {
	TotalUsers         int64                `json:"totalUsers"`
	TotalCompanies     int64                `json:"totalCompanies"`
	TotalJobs          int64                `json:"totalJobs"`
	TotalApplications  int64                `json:"totalApplications"`
	RecentUsers        []models.User        `json:"recentUsers"`
	RecentJobs         []models.Job         `json:"recentJobs"`
	RecentApplications []models.Application `json:"recentApplications"`
}

// DayCount - количество откликов за календарный день
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ActivityEntry - строка ленты последних событий
type ActivityEntry struct {
	ID    string    `json:"id"`
	Event string    `json:"event"`
	Date  time.Time `json:"date"`
}

// AnalyticsResponse - аналитика для admin-дашборда
type AnalyticsResponse struct {
	ApplicationsByDay []DayCount                   `json:"applicationsByDay"`
	JobsByCategory    []repositories.CategoryCount `json:"jobsByCategory"`
	RecentActivity    []ActivityEntry              `json:"recentActivity"`
}

// UpdateUserStatusRequest - блокировка/разблокировка пользователя
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UpdateUserRoleRequest - смена роли пользователя
type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required,is-user-role"`
}

// UserListResponse - пользователи с пагинацией
type UserListResponse struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}
