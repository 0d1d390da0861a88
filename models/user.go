package models

import "time"

// User represents an account entity used for authentication.
// Only ID and Email are ever serialized; the password hash stays server-side.
type User struct {
	// UserID is the surrogate identifier assigned by the database.
	UserID int64 `json:"id"`

	// Email is the unique login handle, stored trimmed and lowercased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"-"`
}

// Credentials is the request body accepted by the register and login
// endpoints.
type Credentials struct {
	Email    string `json:"email" validate:"required,max=255,email"`
	Password string `json:"password" validate:"required"`

	// PasswordConfirmation is optional; when present on registration it must
	// match Password.
	PasswordConfirmation *string `json:"password_confirmation,omitempty"`
}

// UserResponse wraps a user as {"user": {...}}.
type UserResponse struct {
	User User `json:"user"`
}
