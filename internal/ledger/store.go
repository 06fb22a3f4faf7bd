// Package ledger owns the in-memory transaction store for one user session
// and enforces its business rules: unique monotonic ids, one salary income
// per month, and income-before-expense ordering.
package ledger

import (
	"fmt"
	"strings"

	"github.com/spendwise/spendwise/internal/budget"
	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/dateutil"
	"github.com/spendwise/spendwise/internal/model"
)

// salaryCategory is the income category that may appear at most once per
// (month, year) pair.
const salaryCategory = "Salary"

// Store holds the ordered transactions of a single authenticated user.
// Entries keep insertion order; ids are never reused after deletion.
type Store struct {
	txns        []model.Transaction
	maxID       int
	budgetLimit float64
}

// NewStore creates a store seeded with previously persisted transactions.
func NewStore(txns []model.Transaction) *Store {
	s := &Store{}
	for _, t := range txns {
		s.txns = append(s.txns, t)
		if t.ID > s.maxID {
			s.maxID = t.ID
		}
	}
	return s
}

// SetBudgetLimit sets the active budget limit used for add-time advisories.
// Zero disables budget checking.
func (s *Store) SetBudgetLimit(limit float64) {
	s.budgetLimit = limit
}

// BudgetLimit returns the active budget limit.
func (s *Store) BudgetLimit() float64 {
	return s.budgetLimit
}

// NextID returns 1 + the highest id ever issued in this store's lifetime,
// or 1 for a fresh store. Deletions do not lower it, so removed ids are
// never handed out again.
func (s *Store) NextID() int {
	return s.maxID + 1
}

// AddInput carries the fields of a transaction to be added. A zero Date means
// "today".
type AddInput struct {
	Kind     model.Kind
	Category string
	Amount   float64
	Date     model.Date
	Note     string
}

// Add validates input, applies the business rules, and appends a new
// transaction with a freshly assigned id. The returned advisories are
// informational; the transaction is committed regardless.
func (s *Store) Add(in AddInput) (*model.Transaction, []Advisory, error) {
	tx, err := s.prepare(in)
	if err != nil {
		return nil, nil, err
	}

	advisories := s.advise(tx)

	s.txns = append(s.txns, tx)
	s.maxID = tx.ID
	return &tx, advisories, nil
}

// Advise reports the advisories that adding in would produce, without
// committing anything. The menu layer uses this to let the user abort an
// expense that would push the month past its income.
func (s *Store) Advise(in AddInput) ([]Advisory, error) {
	tx, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	return s.advise(tx), nil
}

// prepare validates input and builds the transaction that Add would append.
func (s *Store) prepare(in AddInput) (model.Transaction, error) {
	if !in.Kind.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown transaction kind %q", in.Kind)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		return model.Transaction{}, common.ErrEmptyCategory
	}
	if in.Amount <= 0 {
		return model.Transaction{}, common.ErrInvalidAmount
	}

	date := in.Date
	if date.IsZero() {
		date = dateutil.Today()
	}
	if !dateutil.Validate(date.Day, date.Month, date.Year) {
		return model.Transaction{}, fmt.Errorf("%w: %s is out of range", common.ErrInvalidDate, date)
	}

	period := date.Period()
	if in.Kind == model.Income && category == salaryCategory && s.hasSalary(period) {
		return model.Transaction{}, common.ErrDuplicateSalary
	}
	if in.Kind == model.Expense && s.sumKindPeriod(model.Income, period) == 0 {
		return model.Transaction{}, common.ErrNoIncome
	}

	return model.Transaction{
		ID:       s.NextID(),
		Kind:     in.Kind,
		Category: category,
		Amount:   in.Amount,
		Date:     date,
		Note:     strings.TrimSpace(in.Note),
	}, nil
}

// Update carries a partial edit; nil fields keep their prior value.
type Update struct {
	Kind     *model.Kind
	Category *string
	Amount   *float64
	Date     *model.Date
	Note     *string
}

// Edit applies the supplied fields to the transaction with the given id.
// An invalid date update is dropped while the remaining fields still apply;
// any other invalid field rejects the whole edit.
func (s *Store) Edit(id int, u Update) (*model.Transaction, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, common.ErrNotFound
	}

	if u.Kind != nil && !u.Kind.Valid() {
		return nil, fmt.Errorf("unknown transaction kind %q", *u.Kind)
	}
	if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
		return nil, common.ErrEmptyCategory
	}
	if u.Amount != nil && *u.Amount <= 0 {
		return nil, common.ErrInvalidAmount
	}

	tx := &s.txns[idx]
	if u.Kind != nil {
		tx.Kind = *u.Kind
	}
	if u.Category != nil {
		tx.Category = strings.TrimSpace(*u.Category)
	}
	if u.Amount != nil {
		tx.Amount = *u.Amount
	}
	if u.Date != nil && dateutil.Validate(u.Date.Day, u.Date.Month, u.Date.Year) {
		tx.Date = *u.Date
	}
	if u.Note != nil {
		tx.Note = strings.TrimSpace(*u.Note)
	}

	updated := *tx
	return &updated, nil
}

// Delete removes the transaction with the given id, keeping the order of the
// remaining entries. It reports whether anything was removed. The id is
// never handed out again.
func (s *Store) Delete(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.txns = append(s.txns[:idx], s.txns[idx+1:]...)
	return true
}

// FindByID returns a copy of the matching transaction, or nil.
func (s *Store) FindByID(id int) *model.Transaction {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	tx := s.txns[idx]
	return &tx
}

// All returns the transactions in insertion order. The slice is a copy; the
// caller cannot mutate the store through it.
func (s *Store) All() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Len returns the number of transactions in the store.
func (s *Store) Len() int {
	return len(s.txns)
}

func (s *Store) indexOf(id int) int {
	for i := range s.txns {
		if s.txns[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) hasSalary(p model.Period) bool {
	for i := range s.txns {
		t := &s.txns[i]
		if t.Kind == model.Income && t.Category == salaryCategory && t.Date.Period() == p {
			return true
		}
	}
	return false
}

func (s *Store) sumKindPeriod(kind model.Kind, p model.Period) float64 {
	var sum float64
	for i := range s.txns {
		t := &s.txns[i]
		if t.Kind == kind && t.Date.Period() == p {
			sum += t.Amount
		}
	}
	return sum
}

// advise computes the non-fatal warnings for committing tx: the month's
// expenses overtaking its income, and the budget limit being approached or
// exceeded.
func (s *Store) advise(tx model.Transaction) []Advisory {
	if tx.Kind != model.Expense {
		return nil
	}

	period := tx.Date.Period()
	income := s.sumKindPeriod(model.Income, period)
	expense := s.sumKindPeriod(model.Expense, period) + tx.Amount

	var advisories []Advisory
	if expense > income {
		advisories = append(advisories, Advisory{
			Code:    AdviceOverIncome,
			Message: fmt.Sprintf("expenses for %s (%.2f) exceed income (%.2f)", period, expense, income),
		})
	}

	switch budget.Classify(expense, s.budgetLimit) {
	case model.BudgetApproaching:
		advisories = append(advisories, Advisory{
			Code:    AdviceBudgetApproaching,
			Message: fmt.Sprintf("spending for %s is approaching the budget limit of %.2f", period, s.budgetLimit),
		})
	case model.BudgetExceeded:
		advisories = append(advisories, Advisory{
			Code:    AdviceBudgetExceeded,
			Message: fmt.Sprintf("budget limit of %.2f exceeded for %s", s.budgetLimit, period),
		})
	case model.BudgetDisabled, model.BudgetWithin:
	}

	return advisories
}
