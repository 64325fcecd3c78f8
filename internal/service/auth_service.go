package service

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"lingua/backend/internal/logger"
)

// AuthService is a deliberately trivial credential check: one configured
// username/password pair, in-memory session tokens, nothing persisted.
// This is not a security boundary and never was in the product.
type AuthService interface {
	// Login checks the credentials and mints a session token.
	Login(username, password string) (string, error)
	// ValidateToken reports whether token belongs to a live session.
	ValidateToken(token string) bool
	// Logout invalidates a session token.
	Logout(token string)
}

type authService struct {
	username string
	password string

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewAuthService creates an auth service for the configured credentials.
func NewAuthService(username, password string) AuthService {
	return &authService{
		username: username,
		password: password,
		tokens:   make(map[string]struct{}),
	}
}

func (s *authService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		logger.Warn("login rejected", "module", "service", "action", "login", "resource", "auth", "result", "failed", "username", username)
		return "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	logger.Info("login ok", "module", "service", "action", "login", "resource", "auth", "result", "ok", "username", username)
	return token, nil
}

func (s *authService) ValidateToken(token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *authService) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
