package response

// Response is the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo carries a machine-readable code and a human-readable message
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries pagination info for list responses
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"

	ErrCodePaymentDeclined = "PAYMENT_DECLINED"
)

// Success builds a success envelope
func Success(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Paginated builds a success envelope with pagination metadata
func Paginated(data interface{}, page, limit int, total int64) Response {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// Error builds an error envelope with the given code and message
func Error(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}

// BadRequest builds a BAD_REQUEST error envelope
func BadRequest(message string) Response {
	return Error(ErrCodeBadRequest, message)
}

// Unauthorized builds an UNAUTHORIZED error envelope
func Unauthorized(message string) Response {
	return Error(ErrCodeUnauthorized, message)
}

// Forbidden builds a FORBIDDEN error envelope
func Forbidden(message string) Response {
	return Error(ErrCodeForbidden, message)
}

// NotFound builds a NOT_FOUND error envelope
func NotFound(message string) Response {
	return Error(ErrCodeNotFound, message)
}

// Conflict builds a CONFLICT error envelope
func Conflict(message string) Response {
	return Error(ErrCodeConflict, message)
}

// ValidationError builds a VALIDATION_ERROR error envelope
func ValidationError(message string) Response {
	return Error(ErrCodeValidation, message)
}

// InternalError builds an INTERNAL_ERROR error envelope
func InternalError(message string) Response {
	return Error(ErrCodeInternal, message)
}
