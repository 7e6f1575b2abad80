package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// Dev-mode signing key; there is no real auth server behind this system.
var jwtKey = []byte("arjuna-pos-dev-secret")

const tokenTTL = 24 * time.Hour

type service struct {
	userRepo user.Repository
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Same message for unknown email and wrong password; no partial match.
		return nil, apierr.Unauthorized("email atau password salah")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apierr.Unauthorized("email atau password salah")
	}

	claims := &jwt.StandardClaims{
		Subject:   u.Email,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return nil, apierr.System(err, "signing token")
	}

	return &LoginResult{User: *u, Token: tokenString}, nil
}
