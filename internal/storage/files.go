// Package storage persists users, transactions, and settings as flat files
// under a single data directory, keeping the textual line formats of the
// original data files so existing ones keep working.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spendwise/spendwise/internal/model"
)

// FileStore resolves and manages the per-user files in one data directory.
// There is no cross-process locking: two processes writing the same
// directory race, last writer wins.
type FileStore struct {
	dir string
}

// New creates the data directory if needed and returns a store rooted there.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory path.
func (f *FileStore) Dir() string {
	return f.dir
}

// UsersPath is the shared credential file.
func (f *FileStore) UsersPath() string {
	return filepath.Join(f.dir, "users.csv")
}

// TransactionsPath is the transaction file for one user.
func (f *FileStore) TransactionsPath(username string) string {
	return filepath.Join(f.dir, fmt.Sprintf("user_%s.csv", username))
}

// SettingsPath is the settings file for one user.
func (f *FileStore) SettingsPath(username string) string {
	return filepath.Join(f.dir, fmt.Sprintf("user_%s_settings.txt", username))
}

// ReportPath is the export destination for a user's report, optionally
// scoped to a period.
func (f *FileStore) ReportPath(username string, period *model.Period) string {
	if period != nil {
		return filepath.Join(f.dir, fmt.Sprintf("report_%s_%02d_%04d.txt", username, period.Month, period.Year))
	}
	return filepath.Join(f.dir, fmt.Sprintf("report_%s.txt", username))
}

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it into place, so a failed write never clobbers the previous
// content.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
