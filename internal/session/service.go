package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/compele/reservas/internal/api"
	"go.uber.org/zap"
)

// ErrNotAuthenticated is returned by Require when no token is stored.
// Callers react by sending the user to the login flow.
var ErrNotAuthenticated = errors.New("not authenticated")

// LoginClient is the slice of the API client the session service needs.
type LoginClient interface {
	Login(ctx context.Context, email, senha string) (*api.LoginResponse, error)
}

// Service drives login, logout and the per-view session guard.
type Service struct {
	store  *Store
	client LoginClient
	logger *zap.Logger
}

// NewService creates a session service over the given store and API client.
func NewService(store *Store, client LoginClient, logger *zap.Logger) *Service {
	return &Service{store: store, client: client, logger: logger}
}

// Login exchanges credentials for a token and profile and persists both.
// On failure nothing is persisted and the caller surfaces the server's first
// error message.
func (s *Service) Login(ctx context.Context, email, senha string) (*Profile, error) {
	resp, err := s.client.Login(ctx, email, senha)
	if err != nil {
		s.logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	profile := &Profile{
		ID:     resp.ID,
		Nome:   resp.Nome,
		Email:  resp.Email,
		Perfil: resp.Perfil,
	}

	if err := s.store.SaveToken(resp.Token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.store.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}

	s.logger.Info("Logged in", zap.String("email", profile.Email), zap.String("perfil", profile.Perfil))
	return profile, nil
}

// Logout clears token and profile together.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.logger.Info("Logged out")
	return nil
}

// Require is the session guard run once at every protected view's entry:
// it yields the profile when a token is present and ErrNotAuthenticated
// otherwise. It never polls; each navigation checks again.
func (s *Service) Require() (*Profile, error) {
	if s.store.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	return s.store.Profile(), nil
}
