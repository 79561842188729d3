package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common user validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a human account of the service. UserName is unique
// across all users. HashedPassword holds the one-way digest produced by
// the password hasher; the plaintext is never persisted.
type User struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	MobileNumber   string    `json:"mobile_number"`
	Language       string    `json:"language"`
	Culture        string    `json:"culture"`
	Password       string    `json:"-"` // Plaintext, held only between request decode and hashing
	HashedPassword string    `json:"-"` // Never expose the digest in JSON
}

// NewUser creates a new User with the given profile fields and plaintext
// password. It generates a new UUID for the user ID.
// Returns an error if validation fails.
//
// NOTE: The caller is responsible for hashing the password before
// storing the user.
func NewUser(userName, fullName, email, mobileNumber, language, culture, password string) (*User, error) {
	user := &User{
		ID:           uuid.New(),
		UserName:     userName,
		FullName:     fullName,
		Email:        email,
		MobileNumber: mobileNumber,
		Language:     language,
		Culture:      culture,
		Password:     password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.UserName) == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// Either a plaintext password (pre-hashing) or a stored digest must
	// be present; a user without both is unverifiable.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs basic validation of email format: a single
// '@' with a dotted domain after it. Richer validation happens at the
// API layer via struct tags.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
