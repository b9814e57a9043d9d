package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeNoRefreshToken     ErrorCode = "NO_REFRESH_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	CodeCompanyNotFound     ErrorCode = "COMPANY_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"
	CodeUserInactive       ErrorCode = "USER_INACTIVE"
	CodeInvalidJobStatus   ErrorCode = "INVALID_JOB_STATUS"
	CodeInvalidAppStatus   ErrorCode = "INVALID_APPLICATION_STATUS"

	// Загрузка файлов
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
	CodeNoFileUploaded  ErrorCode = "NO_FILE_UPLOADED"

	// Системные ошибки
	CodeRateLimited   ErrorCode = "RATE_LIMITED"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
