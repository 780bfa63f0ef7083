// Package users provides the account system backing registration and login.
package users

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	minPasswordLength    = 8
	maxPasswordLength    = 72
	maxDisplayNameLength = 64
)

// User is a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterCommand contains the data required to create an account.
type RegisterCommand struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// Normalize trims whitespace and lower-cases the email address.
func (c *RegisterCommand) Normalize() {
	c.Email = NormalizeEmail(c.Email)
	c.DisplayName = strings.TrimSpace(c.DisplayName)
}

// Validate checks the command after Normalize.
func (c *RegisterCommand) Validate() error {
	if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
		return invalid("a valid email address is required")
	}
	if c.DisplayName == "" {
		return invalid("display name is required")
	}
	if utf8.RuneCountInString(c.DisplayName) > maxDisplayNameLength {
		return invalid("display name is too long")
	}
	if len(c.Password) < minPasswordLength {
		return invalid("password must be at least 8 characters")
	}
	if len(c.Password) > maxPasswordLength {
		return invalid("password must be at most 72 bytes")
	}
	return nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
