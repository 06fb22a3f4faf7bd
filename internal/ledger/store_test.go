package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/model"
)

func date(d, m, y int) model.Date {
	return model.Date{Day: d, Month: m, Year: y}
}

func mustAdd(t *testing.T, s *Store, in AddInput) *model.Transaction {
	t.Helper()
	tx, _, err := s.Add(in)
	require.NoError(t, err)
	return tx
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s := NewStore(nil)

	first := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})
	second := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Freelance", Amount: 200, Date: date(2, 5, 2024)})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, s.Len())
}

func TestAddValidation(t *testing.T) {
	s := NewStore(nil)

	_, _, err := s.Add(AddInput{Kind: model.Income, Category: "Salary", Amount: 0, Date: date(1, 5, 2024)})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, _, err = s.Add(AddInput{Kind: model.Income, Category: "Salary", Amount: -50, Date: date(1, 5, 2024)})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, _, err = s.Add(AddInput{Kind: model.Income, Category: "   ", Amount: 100, Date: date(1, 5, 2024)})
	assert.ErrorIs(t, err, common.ErrEmptyCategory)

	_, _, err = s.Add(AddInput{Kind: model.Income, Category: "Salary", Amount: 100, Date: date(1, 13, 2024)})
	assert.ErrorIs(t, err, common.ErrInvalidDate)

	_, _, err = s.Add(AddInput{Kind: model.Kind("Transfer"), Category: "Salary", Amount: 100, Date: date(1, 5, 2024)})
	assert.Error(t, err)

	assert.Equal(t, 0, s.Len(), "failed adds must not mutate the store")
}

func TestAddDefaultsToToday(t *testing.T) {
	s := NewStore(nil)
	tx := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 100})
	assert.False(t, tx.Date.IsZero())
}

func TestDuplicateSalaryRejected(t *testing.T) {
	s := NewStore(nil)

	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})

	// Same month, different day: rejected.
	_, _, err := s.Add(AddInput{Kind: model.Income, Category: "Salary", Amount: 500, Date: date(20, 5, 2024)})
	assert.ErrorIs(t, err, common.ErrDuplicateSalary)

	// Next month is fine.
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 6, 2024)})

	// Other income categories are not restricted.
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 300, Date: date(15, 5, 2024)})
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 300, Date: date(16, 5, 2024)})
}

func TestExpenseRequiresIncome(t *testing.T) {
	s := NewStore(nil)

	_, _, err := s.Add(AddInput{Kind: model.Expense, Category: "Grocery", Amount: 50, Date: date(3, 5, 2024)})
	assert.ErrorIs(t, err, common.ErrNoIncome)

	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})
	mustAdd(t, s, AddInput{Kind: model.Expense, Category: "Grocery", Amount: 50, Date: date(3, 5, 2024)})

	// Income in May does not unlock June.
	_, _, err = s.Add(AddInput{Kind: model.Expense, Category: "Grocery", Amount: 50, Date: date(3, 6, 2024)})
	assert.ErrorIs(t, err, common.ErrNoIncome)
}

func TestAdvisories(t *testing.T) {
	s := NewStore(nil)
	s.SetBudgetLimit(1000)

	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})

	// Income never triggers advisories.
	_, advisories, err := s.Add(AddInput{Kind: model.Income, Category: "Bonus", Amount: 10, Date: date(2, 5, 2024)})
	require.NoError(t, err)
	assert.Empty(t, advisories)

	// 850 of 1000: approaching the budget, still under income.
	_, advisories, err = s.Add(AddInput{Kind: model.Expense, Category: "Rent", Amount: 850, Date: date(3, 5, 2024)})
	require.NoError(t, err)
	assert.True(t, HasCode(advisories, AdviceBudgetApproaching))
	assert.False(t, HasCode(advisories, AdviceOverIncome))

	// Pushes the month to 1250: over income and over budget, but committed.
	tx, advisories, err := s.Add(AddInput{Kind: model.Expense, Category: "Shopping", Amount: 400, Date: date(4, 5, 2024)})
	require.NoError(t, err)
	assert.True(t, HasCode(advisories, AdviceOverIncome))
	assert.True(t, HasCode(advisories, AdviceBudgetExceeded))
	assert.NotNil(t, s.FindByID(tx.ID))
}

func TestAdviseDoesNotCommit(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 100, Date: date(1, 5, 2024)})

	advisories, err := s.Advise(AddInput{Kind: model.Expense, Category: "Shopping", Amount: 500, Date: date(2, 5, 2024)})
	require.NoError(t, err)
	assert.True(t, HasCode(advisories, AdviceOverIncome))
	assert.Equal(t, 1, s.Len())
}

func TestDeletedIDsAreNeverReused(t *testing.T) {
	s := NewStore(nil)
	for i := 0; i < 3; i++ {
		mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 100, Date: date(1, 5, 2024)})
	}

	require.True(t, s.Delete(3))
	tx := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 100, Date: date(2, 5, 2024)})
	assert.Equal(t, 4, tx.ID, "deleted id below the running max must not come back")
}

func TestNextIDAfterDeletingEverything(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 100, Date: date(1, 5, 2024)})
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 100, Date: date(2, 5, 2024)})

	require.True(t, s.Delete(1))
	require.True(t, s.Delete(2))
	require.Equal(t, 0, s.Len())

	// The high-water mark survives a full wipe within the session.
	tx := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Bonus", Amount: 100, Date: date(3, 5, 2024)})
	assert.Equal(t, 3, tx.ID)
}

func TestDeleteMissingIDLeavesStoreUntouched(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 100, Date: date(1, 5, 2024)})

	before := s.All()
	assert.False(t, s.Delete(42))
	assert.Equal(t, before, s.All())
}

func TestDeleteKeepsOrder(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})
	mustAdd(t, s, AddInput{Kind: model.Expense, Category: "Grocery", Amount: 50, Date: date(2, 5, 2024)})
	mustAdd(t, s, AddInput{Kind: model.Expense, Category: "Dining & Food", Amount: 75, Date: date(3, 5, 2024)})

	require.True(t, s.Delete(2))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[1].ID)
}

func TestEditPartialUpdate(t *testing.T) {
	s := NewStore(nil)
	tx := mustAdd(t, s, AddInput{
		Kind: model.Income, Category: "Salary", Amount: 1000,
		Date: date(1, 5, 2024), Note: "monthly pay",
	})

	amount := 1200.0
	updated, err := s.Edit(tx.ID, Update{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, 1200.0, updated.Amount)
	assert.Equal(t, "Salary", updated.Category, "unspecified fields keep their value")
	assert.Equal(t, "monthly pay", updated.Note)
	assert.Equal(t, date(1, 5, 2024), updated.Date)
}

func TestEditInvalidDateSkippedOtherFieldsApply(t *testing.T) {
	s := NewStore(nil)
	tx := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})

	bad := date(32, 13, 2024)
	note := "corrected"
	updated, err := s.Edit(tx.ID, Update{Date: &bad, Note: &note})
	require.NoError(t, err)

	assert.Equal(t, date(1, 5, 2024), updated.Date, "invalid date portion is dropped")
	assert.Equal(t, "corrected", updated.Note, "remaining fields still apply")
}

func TestEditRejections(t *testing.T) {
	s := NewStore(nil)
	tx := mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})

	_, err := s.Edit(999, Update{})
	assert.ErrorIs(t, err, common.ErrNotFound)

	zero := 0.0
	_, err = s.Edit(tx.ID, Update{Amount: &zero})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	blank := "  "
	_, err = s.Edit(tx.ID, Update{Category: &blank})
	assert.ErrorIs(t, err, common.ErrEmptyCategory)

	got := s.FindByID(tx.ID)
	require.NotNil(t, got)
	assert.Equal(t, 1000.0, got.Amount, "rejected edits must not mutate")
}

func TestAllReturnsACopy(t *testing.T) {
	s := NewStore(nil)
	mustAdd(t, s, AddInput{Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 5, 2024)})

	all := s.All()
	all[0].Amount = 9999

	assert.Equal(t, 1000.0, s.FindByID(1).Amount)
}

func TestNewStoreSeedsExistingTransactions(t *testing.T) {
	seed := []model.Transaction{
		{ID: 4, Kind: model.Income, Category: "Salary", Amount: 900, Date: date(1, 4, 2024)},
		{ID: 7, Kind: model.Expense, Category: "Grocery", Amount: 40, Date: date(2, 4, 2024)},
	}
	s := NewStore(seed)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 8, s.NextID())
}
