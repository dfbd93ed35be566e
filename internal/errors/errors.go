package errors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountNotActive is returned when the account is inactive or suspended.
	ErrAccountNotActive = errors.New("account is inactive or suspended")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrInvalidResetToken is returned when a password reset token is invalid or expired.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrEmailAlreadyRegistered is returned when the email is already taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrPasswordPolicy wraps password complexity violations.
	ErrPasswordPolicy = errors.New("password does not meet requirements")
	// ErrForbidden is returned when the actor lacks the required role or ownership.
	ErrForbidden = errors.New("unauthorized access")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when a referenced profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrResourceNotFound is returned when a referenced resource does not exist.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrLastAdmin is returned when deleting the only remaining admin.
	ErrLastAdmin = errors.New("cannot delete the last admin user")
	// ErrMissingRejectionReason is returned when rejecting without a reason.
	ErrMissingRejectionReason = errors.New("rejection reason is required")
	// ErrInvalidTransition is returned for illegal resource status transitions.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidDateRange is returned when end date precedes start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors with stable codes.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccountNotActive):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_NOT_ACTIVE")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrInvalidResetToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RESET_TOKEN")
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrPasswordPolicy):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_POLICY_VIOLATION")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrResourceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESOURCE_NOT_FOUND")
	case errors.Is(err, ErrLastAdmin):
		return NewHTTPError(http.StatusConflict, err.Error(), "LAST_ADMIN_PROTECTED")
	case errors.Is(err, ErrMissingRejectionReason):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_REJECTION_REASON")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrInvalidDateRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Unique-constraint backstop; don't leak driver detail.
		return NewHTTPError(http.StatusConflict, "duplicate record", "CONFLICT")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, "record not found", "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
