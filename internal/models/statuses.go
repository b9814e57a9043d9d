package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleUser    UserRole = "USER"
	UserRoleCompany UserRole = "COMPANY"
	UserRoleAdmin   UserRole = "ADMIN"

	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"

	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// ValidUserRole проверяет принадлежность роли закрытому множеству
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleUser, UserRoleCompany, UserRoleAdmin:
		return true
	}
	return false
}

// ValidJobStatus проверяет статус вакансии
func ValidJobStatus(status JobStatus) bool {
	return status == JobStatusOpen || status == JobStatusClosed
}

// ValidApplicationStatus проверяет статус отклика
func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
