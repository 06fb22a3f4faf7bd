// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"strings"
)

// Kind tags a transaction as money coming in or going out.
type Kind string

// Transaction kinds. The string values double as the on-disk representation.
const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// ParseKind converts user or file input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.TrimSpace(s) {
	case string(Income):
		return Income, nil
	case string(Expense):
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Date is a calendar date in day/month/year form. Validation is range-only:
// month 1-12, day 1-31, year 1900-9999. There is deliberately no
// month-length or leap-year cross-check, to stay compatible with existing
// data files that may contain dates like 31/02/2024.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Period returns the (month, year) pair the date falls in.
func (d Date) Period() Period {
	return Period{Month: d.Month, Year: d.Year}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// String renders the date zero-padded as DD/MM/YYYY, the persisted format.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Period is a (month, year) pair used for aggregation.
type Period struct {
	Month int
	Year  int
}

// String renders the period as MM/YYYY.
func (p Period) String() string {
	return fmt.Sprintf("%02d/%04d", p.Month, p.Year)
}

// Transaction is a single financial event in a user's ledger.
type Transaction struct {
	ID       int
	Kind     Kind
	Category string
	Amount   float64
	Date     Date
	Note     string
}
