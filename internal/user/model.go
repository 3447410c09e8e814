package user

import (
	"net/http"
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "EMAIL_ALREADY_USED", "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusForbidden, "INACTIVE_USER", "user is inactive")
)

// User is a staff account on the dashboard.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
