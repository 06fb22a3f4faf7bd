package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// budgetKey is the key written to the settings file. Loading also accepts
// the older "budget" spelling found in files from earlier versions.
const budgetKey = "budget_limit"

// LoadBudgetLimit reads a user's budget limit. A missing or unreadable
// setting defaults to 0, which disables budget checking.
func (f *FileStore) LoadBudgetLimit(username string) (float64, error) {
	data, err := os.ReadFile(f.SettingsPath(username))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read settings file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case budgetKey, "budget":
			limit, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || limit < 0 {
				return 0, nil
			}
			return limit, nil
		}
	}
	return 0, nil
}

// SaveBudgetLimit writes a user's budget limit to the settings file.
func (f *FileStore) SaveBudgetLimit(username string, limit float64) error {
	line := fmt.Sprintf("%s:%.2f\n", budgetKey, limit)
	if err := writeFileAtomic(f.SettingsPath(username), []byte(line)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// WriteReport writes rendered report content to path atomically.
func (f *FileStore) WriteReport(path, content string) error {
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	return nil
}
