// Package session owns the persisted client session: the opaque access
// token and the cached user profile. All reads and writes go through Store;
// nothing else in the client touches the session files.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// File names keep the storage keys the original client used, so a previously
// provisioned state directory keeps working.
const (
	tokenFileName   = "Compele-ChaveAcesso"
	profileFileName = "Compele-DadosUsuario"
)

// Profile is the cached user identity returned at login.
type Profile struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

// IsApprover reports whether the profile may see approval features.
// The server mixes "Aprovador" and "aprovador" across endpoints, so the
// comparison is case-insensitive.
func (p *Profile) IsApprover() bool {
	if p == nil {
		return false
	}
	perfil := strings.ToLower(p.Perfil)
	return perfil == "aprovador" || perfil == "admin"
}

// IsAdmin reports whether the profile may see financial administration
// features (ledger operations).
func (p *Profile) IsAdmin() bool {
	return p != nil && strings.EqualFold(p.Perfil, "Admin")
}

// Store persists the token and profile as two files in the state directory.
// Both are written at login and removed together at logout.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a session store rooted at dir.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Token returns the persisted access token, or empty when logged out.
// Implements api.TokenSource.
func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken persists the access token.
func (s *Store) SaveToken(token string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFileName), []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Profile returns the cached profile, or nil when none is stored.
func (s *Store) Profile() *Profile {
	data, err := os.ReadFile(filepath.Join(s.dir, profileFileName))
	if err != nil {
		return nil
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("Stored profile is unreadable", zap.Error(err))
		return nil
	}
	return &p
}

// SaveProfile persists the profile JSON.
func (s *Store) SaveProfile(p *Profile) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, profileFileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// Clear removes token and profile together.
func (s *Store) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFileName, profileFileName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to remove %s: %w", name, err)
			}
		}
	}
	return firstErr
}
