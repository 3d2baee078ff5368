package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/botica-real/botica/internal/platform/httpx"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Authenticate validates username/password credentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, httpx.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, httpx.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httpx.ErrUnauthorized
	}
	return user, nil
}

// IssueToken authenticates and returns a signed access token.
func (s *Service) IssueToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// VerifyToken checks a token's signature and expiry and confirms the account
// behind it is still active.
func (s *Service) VerifyToken(ctx context.Context, raw string) (*User, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, httpx.ErrUnauthorized
	}
	user, err := s.repo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, httpx.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, httpx.ErrUnauthorized
	}
	return user, nil
}
