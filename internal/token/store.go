package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Profile names one operator workflow; each profile owns its own token file.
type Profile string

const (
	ProfilePrimary Profile = "primary"
	ProfileSupport Profile = "support"
	ProfileOne     Profile = "one"
)

// ParseProfile validates a profile name from a CLI flag.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfilePrimary:
		return ProfilePrimary, nil
	case ProfileSupport:
		return ProfileSupport, nil
	case ProfileOne:
		return ProfileOne, nil
	}
	return "", fmt.Errorf("unknown token profile %q (want primary, support or one)", s)
}

func (p Profile) filename() string {
	switch p {
	case ProfileSupport:
		return "fusus_support_token.txt"
	case ProfileOne:
		return "fusus_one_token.txt"
	default:
		return "fusus_token.txt"
	}
}

// Store reads and writes token files under a single directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the file backing a profile.
func (s *Store) Path(p Profile) string {
	return filepath.Join(s.Dir, p.filename())
}

// Load returns the stored token unchanged. A missing file surfaces as a
// wrapped fs.ErrNotExist.
func (s *Store) Load(p Profile) (string, error) {
	data, err := os.ReadFile(s.Path(p))
	if err != nil {
		return "", fmt.Errorf("load %s token: %w", p, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save overwrites the profile's token file. Last writer wins; callers are
// expected to pass an already-normalized token.
func (s *Store) Save(p Profile, tok string) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("save %s token: %w", p, err)
	}
	if err := os.WriteFile(s.Path(p), []byte(tok), 0o600); err != nil {
		return fmt.Errorf("save %s token: %w", p, err)
	}
	return nil
}
