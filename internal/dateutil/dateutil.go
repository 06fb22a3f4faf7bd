// Package dateutil validates and parses calendar dates in day/month/year form.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/model"
)

// Validate reports whether the components form an acceptable date: month 1-12,
// day 1-31, year 1900-9999. Month length and leap years are not cross-checked,
// so 31/02/2024 passes. Existing data files rely on this leniency.
func Validate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	if year < 1900 || year > 9999 {
		return false
	}
	return true
}

// Parse reads a D/M/Y date from text. It requires exactly three integer
// components separated by slashes; it does not range-check them, mirroring
// the split between parsing and validation in the data files.
func Parse(text string) (model.Date, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return model.Date{}, fmt.Errorf("%w: expected D/M/Y, got %q", common.ErrInvalidDate, text)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return model.Date{}, fmt.Errorf("%w: expected D/M/Y, got %q", common.ErrInvalidDate, text)
		}
		nums[i] = n
	}

	return model.Date{Day: nums[0], Month: nums[1], Year: nums[2]}, nil
}

// ParseValid parses text and additionally range-checks the result.
func ParseValid(text string) (model.Date, error) {
	d, err := Parse(text)
	if err != nil {
		return model.Date{}, err
	}
	if !Validate(d.Day, d.Month, d.Year) {
		return model.Date{}, fmt.Errorf("%w: %s is out of range", common.ErrInvalidDate, d)
	}
	return d, nil
}

// Today returns the current date from the system clock.
func Today() model.Date {
	now := time.Now()
	return model.Date{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
}
