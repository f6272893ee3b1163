// Package file implements the credential store over a static JSON file.
// The file is the source of truth for the demo user set; it is read fresh on
// every load so edits take effect without a restart.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/staffdir/user-directory/internal/core/domain"
)

// Store loads user records from a JSON array on disk.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// LoadUsers reads and decodes the backing file. Any read or decode failure is
// reported as domain.ErrStoreUnavailable; an unreadable store is never
// presented as an empty user set.
func (s *Store) LoadUsers(_ context.Context) ([]domain.User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return users, nil
}

// Ping reports whether the backing file is reachable.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: stat %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}
