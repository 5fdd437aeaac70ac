package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidForm       = "INVALID_FORM"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidPassportID = "INVALID_PASSPORT_ID"
	ErrCodeInvalidCategory   = "INVALID_CATEGORY"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodePassportNotFound  = "PASSPORT_NOT_FOUND"
	ErrCodeUpstream          = "UPSTREAM_ERROR"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidPassportID = NewDomainError(ErrCodeInvalidPassportID, "Passport ID must be a valid UUID")
	ErrPassportNotFound  = NewDomainError(ErrCodePassportNotFound, "Passport not found")
	ErrInvalidCategory   = NewDomainError(ErrCodeInvalidCategory, "Category is not one of the known categories")
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Status must be active or inactive")
	ErrUpstream          = NewDomainError(ErrCodeUpstream, "Passport API request failed")
)
