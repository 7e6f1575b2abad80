package auth

import (
	"context"

	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
