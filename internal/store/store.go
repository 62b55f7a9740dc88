// Package store persists the member Profile between CLI invocations.
//
// One JSON file holds the serialized profile. A missing or malformed file is
// treated as "no session", never as a fatal error. Admin tokens are never
// written here: the store only accepts member Profiles by construction.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/applytrack/internal/types"
)

// profileFile is the fixed name of the serialized profile.
const profileFile = "profile.json"

// appDirName is the per-user state directory under os.UserConfigDir.
const appDirName = "applytrack"

// Store reads and writes the durable Profile.
type Store struct {
	dir string
}

// New returns a Store rooted at the user's config directory.
func New() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return NewAt(filepath.Join(base, appDirName)), nil
}

// NewAt returns a Store rooted at dir. Used by tests and by the state_dir
// config override.
func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, profileFile)
}

// Load reads the stored profile. It returns (nil, nil) when no usable
// session exists: missing file, unreadable content, or a profile without a
// token all read as absence.
func (s *Store) Load() (*types.Profile, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		// Malformed durable content reads as no session.
		return nil, nil
	}
	if !profile.Authenticated() {
		return nil, nil
	}
	return &profile, nil
}

// Save writes the profile, replacing any previous one.
func (s *Store) Save(profile *types.Profile) error {
	if !profile.Authenticated() {
		return fmt.Errorf("refusing to persist an unauthenticated profile")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// Clear removes the stored profile. Clearing an absent profile is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove profile: %w", err)
	}
	return nil
}
