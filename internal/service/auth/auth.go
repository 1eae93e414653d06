package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

const tokenBytes = 32

// Auth issues and checks admin session tokens. Sessions live in memory,
// a restart simply signs everyone out.
type Auth struct {
	adminPassword string
	sessionTTL    time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func New(adminPassword string, sessionTTL time.Duration) *Auth {
	return &Auth{
		adminPassword: adminPassword,
		sessionTTL:    sessionTTL,
		sessions:      make(map[string]time.Time),
		now:           time.Now,
	}
}

// Login checks the password in constant time and returns a fresh session
// token on success.
func (s *Auth) Login(_ context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	s.sessions[token] = s.now().Add(s.sessionTTL)

	return token, nil
}

func (s *Auth) Validate(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.sessions[token]
	if !ok {
		return ErrInvalidSession
	}
	if s.now().After(expiresAt) {
		delete(s.sessions, token)
		return ErrInvalidSession
	}

	return nil
}

func (s *Auth) Logout(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

func (s *Auth) pruneLocked() {
	now := s.now()
	for token, expiresAt := range s.sessions {
		if now.After(expiresAt) {
			delete(s.sessions, token)
		}
	}
}
