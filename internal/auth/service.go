// Package auth manages the account registry: registration and login.
package auth

import (
	"errors"
	"strings"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/normalize"
)

const minPasswordLen = 4

var (
	// ErrBlankUsername rejects usernames that are empty after trimming.
	ErrBlankUsername = errors.New("username must not be blank")
	// ErrPasswordTooShort rejects passwords shorter than four characters.
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	// ErrUsernameTaken rejects registration under an existing username.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service owns the account registry.
type Service struct {
	registry *model.Registry
}

// NewService creates a Service over a registry.
func NewService(registry *model.Registry) *Service {
	return &Service{registry: registry}
}

// Register creates an account with a fresh empty wallet and inserts it
// under the normalized username. The username is stored as entered.
func (s *Service) Register(username, password string) (*model.Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrBlankUsername
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	key := normalize.Key(username)
	if s.registry.Contains(key) {
		return nil, ErrUsernameTaken
	}
	account := model.NewAccount(username, password)
	s.registry.Add(key, account)
	return account, nil
}

// Login returns the account for a username if the password matches.
// Passwords are compared with plain string equality.
func (s *Service) Login(username, password string) (*model.Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrBlankUsername
	}
	account, ok := s.registry.Lookup(normalize.Key(username))
	if !ok || !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
