// Package auth manages the shared credential file: registration, login
// verification, and password changes.
//
// Passwords are stored XOR-obfuscated with a fixed single-byte key for
// byte compatibility with existing users.csv files. This is reversible by
// construction and offers no real protection; it is a documented weakness,
// not a pattern to copy.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/storage"
)

// obfuscationKey matches the key used by existing credential files.
const obfuscationKey = 0x5A

// Store reads and writes the credential file and provisions per-user data
// files on registration.
type Store struct {
	files *storage.FileStore
}

// NewStore creates a credential store over the given file store.
func NewStore(files *storage.FileStore) *Store {
	return &Store{files: files}
}

// credential is one parsed users.csv line: id,username,obfuscatedPassword.
type credential struct {
	id       int
	username string
	password string // obfuscated form
}

// obfuscate applies the reversible XOR transformation. Calling it twice
// returns the input.
func obfuscate(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] ^= obfuscationKey
	}
	return string(b)
}

// ValidUsername reports whether a username is acceptable: non-empty, and
// limited to letters, digits, underscore, and hyphen so it embeds safely in
// file names and the comma-separated credential file.
func ValidUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// Exists reports whether a username is registered.
func (s *Store) Exists(username string) (bool, error) {
	creds, err := s.load()
	if err != nil {
		return false, err
	}
	for _, c := range creds {
		if c.username == username {
			return true, nil
		}
	}
	return false, nil
}

// Register adds a new user and provisions their empty transaction and
// settings files.
func (s *Store) Register(username, password string) error {
	if !ValidUsername(username) {
		return common.ErrInvalidUsername
	}

	creds, err := s.load()
	if err != nil {
		return err
	}

	nextID := 1
	for _, c := range creds {
		if c.username == username {
			return common.ErrUserExists
		}
		if c.id >= nextID {
			nextID = c.id + 1
		}
	}

	f, err := os.OpenFile(s.files.UsersPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open credential file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "%d,%s,%s\n", nextID, username, obfuscate(password)); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}

	if err := s.files.SaveTransactions(username, nil); err != nil {
		return err
	}
	return s.files.SaveBudgetLimit(username, 0)
}

// Verify checks a username/password pair against the credential file.
func (s *Store) Verify(username, password string) (bool, error) {
	creds, err := s.load()
	if err != nil {
		return false, err
	}
	for _, c := range creds {
		if c.username == username {
			return obfuscate(c.password) == password, nil
		}
	}
	return false, nil
}

// ChangePassword verifies the old password and rewrites the credential file
// with the new one, via a temp file swap so a failure keeps the old file.
func (s *Store) ChangePassword(username, oldPassword, newPassword string) error {
	ok, err := s.Verify(username, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrBadCredentials
	}

	creds, err := s.load()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, c := range creds {
		pw := c.password
		if c.username == username {
			pw = obfuscate(newPassword)
		}
		fmt.Fprintf(&b, "%d,%s,%s\n", c.id, c.username, pw)
	}

	if err := s.rewrite(b.String()); err != nil {
		return fmt.Errorf("failed to update credential file: %w", err)
	}
	return nil
}

// load parses the credential file. A missing file means no users yet.
// Unparseable lines are skipped, mirroring the transaction loader.
func (s *Store) load() ([]credential, error) {
	f, err := os.Open(s.files.UsersPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open credential file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var creds []credential
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// The obfuscated password may itself contain commas, so only the
		// first two separators delimit fields.
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		creds = append(creds, credential{id: id, username: parts[1], password: parts[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}
	return creds, nil
}

func (s *Store) rewrite(content string) error {
	tmp := s.files.UsersPath() + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.files.UsersPath()); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
