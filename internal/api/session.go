// internal/api/session.go
package api

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the persisted bearer token. The token is the only client
// state that survives a restart; it is kept in a local file the way the
// browser app kept it in local storage.
type Session struct {
	mu   sync.Mutex
	file string
}

// NewSession creates a session backed by the given file
func NewSession(file string) *Session {
	return &Session{file: file}
}

// Token returns the persisted token, or empty when none is stored
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.file)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetToken persists the token
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.file, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	return nil
}

// Clear removes the persisted token
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// BearerToken returns the token when it is present and not expired. Expiry is
// read from the token's claims without signature verification; only the
// backend can verify the signature, the client just avoids attaching a token
// it knows is dead.
func (s *Session) BearerToken() string {
	token := s.Token()
	if token == "" {
		return ""
	}

	// Opaque tokens are attached as-is; only a parseable JWT with a past
	// expiry is withheld.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return token
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return token
	}
	if exp.Before(time.Now()) {
		return ""
	}
	return token
}
