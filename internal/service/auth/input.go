package auth

import (
	"net/mail"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
	maxEmailLength    = 254
	maxTokenLength    = 512
)

// RegisterInput holds parameters for email + password registration.
type RegisterInput struct {
	Email    string
	Password string
}

func (i RegisterInput) Validate() error {
	var errs domain.FieldErrors
	checkEmail(&errs, i.Email)
	checkPassword(&errs, "password", i.Password)
	return errs.Err()
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate only checks presence and format. Password length rules are not
// applied so that a wrong password and a short one look the same.
func (i LoginPasswordInput) Validate() error {
	var errs domain.FieldErrors
	checkEmail(&errs, i.Email)
	if i.Password == "" {
		errs.Add("password", "required")
	}
	return errs.Err()
}

// RefreshInput holds the refresh token being rotated.
type RefreshInput struct {
	RefreshToken string
}

func (i RefreshInput) Validate() error {
	var errs domain.FieldErrors
	checkToken(&errs, "refreshToken", i.RefreshToken)
	return errs.Err()
}

// RecoveryInput holds parameters for a password recovery request.
type RecoveryInput struct {
	Email string
}

func (i RecoveryInput) Validate() error {
	var errs domain.FieldErrors
	checkEmail(&errs, i.Email)
	return errs.Err()
}

// ResetPasswordInput holds the reset token from the recovery email and the new password.
type ResetPasswordInput struct {
	AccessToken string
	Password    string
}

func (i ResetPasswordInput) Validate() error {
	var errs domain.FieldErrors
	checkToken(&errs, "accessToken", i.AccessToken)
	checkPassword(&errs, "password", i.Password)
	return errs.Err()
}

func checkEmail(errs *domain.FieldErrors, email string) {
	switch {
	case email == "":
		errs.Add("email", "required")
		return
	case len(email) > maxEmailLength:
		errs.Add("email", "too long")
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs.Add("email", "invalid email format")
	}
}

func checkPassword(errs *domain.FieldErrors, field, password string) {
	switch {
	case len(password) < minPasswordLength:
		errs.Add(field, "must be at least 6 characters")
	case len(password) > maxPasswordLength:
		errs.Add(field, "too long")
	}
}

func checkToken(errs *domain.FieldErrors, field, token string) {
	switch {
	case token == "":
		errs.Add(field, "required")
	case len(token) > maxTokenLength:
		errs.Add(field, "too long")
	}
}
