// Package credentials stores Augment API credentials on disk.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	credentialsDirName  = ".augment"
	credentialsFileName = "credentials"

	dirMode  = 0o700
	fileMode = 0o600

	minTokenLength = 10
)

// Credentials holds the API token and enterprise scope for a user.
type Credentials struct {
	APIToken     string `json:"augment_api_token"`
	EnterpriseID string `json:"enterprise_id"`
}

// Store reads and writes credentials at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store rooted at the default credentials path.
func NewStore() *Store {
	return &Store{path: DefaultPath()}
}

// NewStoreAt returns a store using an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard credentials location under the home
// directory, falling back to a relative path when home cannot be resolved.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(credentialsDirName, credentialsFileName)
	}
	return filepath.Join(homeDir, credentialsDirName, credentialsFileName)
}

// Path returns where this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads stored credentials. Missing, corrupt, or empty files yield nil
// credentials without an error so callers can fall back to the environment.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read credentials file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, nil // Corrupt files are treated as absent
	}
	if creds.APIToken == "" {
		return nil, nil
	}
	return &creds, nil
}

// Save writes credentials, creating the parent directory when needed. The
// directory and file are restricted to the owning user.
func (s *Store) Save(creds *Credentials) error {
	if creds == nil || creds.APIToken == "" {
		return errors.New("cannot save empty credentials")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("cannot create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode credentials: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("cannot write credentials file: %w", err)
	}
	// WriteFile only applies the mode on create, so tighten pre-existing files too.
	if err := os.Chmod(s.path, fileMode); err != nil {
		return fmt.Errorf("cannot restrict credentials file: %w", err)
	}
	return nil
}

// Clear removes stored credentials. Clearing an absent file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove credentials file: %w", err)
	}
	return nil
}

// ValidateTokenFormat rejects tokens that are clearly malformed before any
// request is made with them.
func ValidateTokenFormat(token string) error {
	trimmed := strings.TrimSpace(token)
	if len(trimmed) < minTokenLength {
		return fmt.Errorf("API token is too short: expected at least %d characters", minTokenLength)
	}
	if strings.ContainsAny(trimmed, " \t\n\r") {
		return errors.New("API token must not contain whitespace")
	}
	return nil
}
