package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "invalid credentials", err: ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedCode: "INVALID_CREDENTIALS"},
		{name: "account not active", err: ErrAccountNotActive, expectedStatus: http.StatusForbidden, expectedCode: "ACCOUNT_NOT_ACTIVE"},
		{name: "email taken", err: ErrEmailAlreadyRegistered, expectedStatus: http.StatusConflict, expectedCode: "EMAIL_ALREADY_REGISTERED"},
		{name: "forbidden", err: ErrForbidden, expectedStatus: http.StatusForbidden, expectedCode: "FORBIDDEN"},
		{name: "resource not found", err: ErrResourceNotFound, expectedStatus: http.StatusNotFound, expectedCode: "RESOURCE_NOT_FOUND"},
		{name: "last admin", err: ErrLastAdmin, expectedStatus: http.StatusConflict, expectedCode: "LAST_ADMIN_PROTECTED"},
		{name: "missing rejection reason", err: ErrMissingRejectionReason, expectedStatus: http.StatusBadRequest, expectedCode: "MISSING_REJECTION_REASON"},
		{name: "invalid transition", err: ErrInvalidTransition, expectedStatus: http.StatusConflict, expectedCode: "INVALID_TRANSITION"},
		{name: "invalid date range", err: ErrInvalidDateRange, expectedStatus: http.StatusBadRequest, expectedCode: "INVALID_DATE_RANGE"},
		{name: "wrapped password policy error", err: fmt.Errorf("%w: too short", ErrPasswordPolicy), expectedStatus: http.StatusBadRequest, expectedCode: "PASSWORD_POLICY_VIOLATION"},
		{name: "gorm duplicate key", err: gorm.ErrDuplicatedKey, expectedStatus: http.StatusConflict, expectedCode: "CONFLICT"},
		{name: "gorm record not found", err: gorm.ErrRecordNotFound, expectedStatus: http.StatusNotFound, expectedCode: "NOT_FOUND"},
		{name: "unknown error", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)

			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
			assert.Equal(t, httpErr.Message, httpErr.ToErrorResponse().Error)
		})
	}
}
