package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Role is a user's role in the system.
type Role string

// Roles supported by the system.
const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// Status is a user's account status.
type Status string

// Account statuses supported by the system.
const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Valid reports whether the status is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// User represents an authenticated user in the system.
type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Email               string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name                string     `json:"name" gorm:"size:100;not null"`
	PasswordHash        string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role                Role       `json:"role" gorm:"size:20;not null;default:'user'"`
	Status              Status     `json:"status" gorm:"size:20;not null;default:'active'"`
	EmailVerified       bool       `json:"email_verified" gorm:"default:false"`
	EmailVerifiedAt     *time.Time `json:"email_verified_at,omitempty"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	ResetToken          *string    `json:"-" gorm:"size:100"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	// Relations
	Profile   *Profile   `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Resources []Resource `json:"resources,omitempty" gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// SetPassword hashes plaintext and stores the hash. The plaintext is never
// retained; there is no accessor for it.
func (u *User) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// VerifyPassword reports whether candidate matches the stored hash.
func (u *User) VerifyPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(candidate)) == nil
}

// VerifyResetToken reports whether token matches the stored reset token and
// the token has not expired.
func (u *User) VerifyResetToken(token string, now time.Time) bool {
	if u.ResetToken == nil || *u.ResetToken != token {
		return false
	}
	if u.ResetTokenExpiresAt == nil || now.After(*u.ResetTokenExpiresAt) {
		return false
	}
	return true
}

// ClearResetToken removes the stored reset token; tokens are single use.
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
}

// VerifyEmail marks the email as verified.
func (u *User) VerifyEmail(now time.Time) {
	u.EmailVerified = true
	u.EmailVerifiedAt = &now
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsProvider reports whether the user has the provider role.
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// IsActive reports whether the account status is active.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
