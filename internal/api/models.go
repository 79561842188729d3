package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/keyauth/userauth-api/internal/domain"
)

// Common request/response structures

// ValidateKeyRequest defines the payload for the explicit key validation endpoint.
type ValidateKeyRequest struct {
	Key string `json:"key" validate:"required"`
}

// ValidatePasswordRequest defines the payload for the password check endpoint.
type ValidatePasswordRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password"  validate:"required"`
}

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	UserName     string `json:"user_name"     validate:"required"`
	FullName     string `json:"full_name"     validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Language     string `json:"language"      validate:"required"`
	Culture      string `json:"culture"       validate:"required"`
	Password     string `json:"password"      validate:"required,min=8,max=72"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
// Password is optional; when present the stored digest is replaced.
type UpdateUserRequest struct {
	UserName     string `json:"user_name"     validate:"required"`
	FullName     string `json:"full_name"     validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Language     string `json:"language"      validate:"required"`
	Culture      string `json:"culture"       validate:"required"`
	Password     string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// UserResponse defines the user representation returned by the API.
// It never carries the password digest.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"user_name"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	Language     string    `json:"language"`
	Culture      string    `json:"culture"`
}

// APIKeyResponse defines the key record returned on successful issuance.
type APIKeyResponse struct {
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"key"`
	ClientID   string    `json:"client_id"`
	ValidUntil time.Time `json:"valid_until"`
}

// MessageResponse defines a plain informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse maps a domain user to its API representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		UserName:     user.UserName,
		FullName:     user.FullName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		Language:     user.Language,
		Culture:      user.Culture,
	}
}

// NewAPIKeyResponse maps a domain API key to its API representation.
func NewAPIKeyResponse(key *domain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         key.ID,
		Key:        key.Key,
		ClientID:   key.ClientID,
		ValidUntil: key.ValidUntil,
	}
}
