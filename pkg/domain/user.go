package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

var validate = validator.New() //nolint: gochecknoglobals

// UserID is the store-assigned identifier of a user.
type UserID int64

// User is a registered account. Only the password hash is kept.
type User struct {
	ID           UserID `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	PhoneNumber  string `json:"phone_number"`
}

// UserParams holds the raw registration input.
type UserParams struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
}

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ValidEmail reports whether email has a valid address shape.
func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidPhoneNumber reports whether phone is empty or starts with '+'.
func ValidPhoneNumber(phone string) bool {
	return phone == "" || strings.HasPrefix(phone, "+")
}

// CheckPassword applies the password policy and reports the first rule the
// password breaks.
func CheckPassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return userError("password", "min_length",
			fmt.Sprintf("Password must be at least %d characters long.", MinPasswordLength))
	}

	var upper, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	if !upper {
		return userError("password", "uppercase", "Password must contain at least one uppercase letter.")
	}
	if !special {
		return userError("password", "special_character", "Password must contain at least one special character.")
	}

	return nil
}

// NewUser validates p and returns a user whose password has been hashed with
// hasher. Nothing is hashed unless every field is valid.
func NewUser(p UserParams, hasher PasswordHasher) (*User, error) {
	if strings.TrimSpace(p.Username) == "" {
		return nil, userError("username", "required", "Username must be a non-empty string.")
	}
	if !ValidEmail(p.Email) {
		return nil, userError("email", "email", "Invalid email format.")
	}
	if err := CheckPassword(p.Password); err != nil {
		return nil, err
	}
	if !ValidPhoneNumber(p.PhoneNumber) {
		return nil, userError("phone_number", "international_prefix", "Phone number must start with '+'.")
	}

	hash, err := hasher.Hash(p.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	return &User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
		PhoneNumber:  p.PhoneNumber,
	}, nil
}

func userError(field, rule, msg string) *ValidationError {
	return newValidationError(EntityUser, field, rule, msg)
}
