package domain

import "github.com/google/uuid"

// User is an account record. The password hash never leaves the process.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}

// UserInput is the payload accepted from clients
type UserInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserCredentials is what gets persisted for a user
type UserCredentials struct {
	Email        string
	PasswordHash string
}
