package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// The session file holds the normalized username of the logged-in user.

func saveSession(path, key string) error {
	if err := os.WriteFile(path, []byte(key+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

func loadSession(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func clearSession(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
