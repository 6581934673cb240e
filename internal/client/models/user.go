package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is enforced on registration.
const MinPasswordLength = 8

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// User is the account returned by /auth/me.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials are sent to the login and register endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the registration rules.
func (c Credentials) Validate() error {
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(c.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
