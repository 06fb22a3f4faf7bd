package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise/internal/model"
)

func date(d, m, y int) model.Date {
	return model.Date{Day: d, Month: m, Year: y}
}

func sampleMay() []model.Transaction {
	return []model.Transaction{
		{ID: 1, Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(2, 5, 2024)},
		{ID: 2, Kind: model.Expense, Category: "Grocery", Amount: 300, Date: date(10, 5, 2024)},
		{ID: 3, Kind: model.Expense, Category: "Grocery", Amount: 200, Date: date(15, 5, 2024)},
		{ID: 4, Kind: model.Income, Category: "Salary", Amount: 500, Date: date(1, 6, 2024)},
	}
}

func TestMonthlySummary(t *testing.T) {
	s := MonthlySummary(sampleMay(), model.Period{Month: 5, Year: 2024})

	assert.Equal(t, 1000.0, s.Income)
	assert.Equal(t, 500.0, s.Expense)
	assert.Equal(t, 500.0, s.Net())
}

func TestSumByKindAndPeriodMatchesExactPeriod(t *testing.T) {
	txns := sampleMay()

	assert.Equal(t, 500.0, SumByKindAndPeriod(txns, model.Income, model.Period{Month: 6, Year: 2024}))
	assert.Equal(t, 0.0, SumByKindAndPeriod(txns, model.Expense, model.Period{Month: 6, Year: 2024}))
	assert.Equal(t, 0.0, SumByKindAndPeriod(txns, model.Income, model.Period{Month: 5, Year: 2023}))
}

func TestTopExpenseCategories(t *testing.T) {
	got := TopExpenseCategories(sampleMay(), model.Period{Month: 5, Year: 2024}, 3)

	require.Len(t, got, 1)
	assert.Equal(t, "Grocery", got[0].Category)
	assert.Equal(t, 500.0, got[0].Total)
}

func TestTopExpenseCategoriesRankingAndLimit(t *testing.T) {
	p := model.Period{Month: 7, Year: 2024}
	txns := []model.Transaction{
		{ID: 1, Kind: model.Expense, Category: "Dining & Food", Amount: 120, Date: date(1, 7, 2024)},
		{ID: 2, Kind: model.Expense, Category: "Grocery", Amount: 80, Date: date(2, 7, 2024)},
		{ID: 3, Kind: model.Expense, Category: "Shopping", Amount: 200, Date: date(3, 7, 2024)},
		{ID: 4, Kind: model.Expense, Category: "Grocery", Amount: 40, Date: date(4, 7, 2024)},
		{ID: 5, Kind: model.Expense, Category: "Transportation", Amount: 30, Date: date(5, 7, 2024)},
		{ID: 6, Kind: model.Income, Category: "Salary", Amount: 900, Date: date(1, 7, 2024)},
	}

	got := TopExpenseCategories(txns, p, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Shopping", got[0].Category)
	assert.Equal(t, "Grocery", got[1].Category)
	assert.Equal(t, 120.0, got[1].Total)
	assert.Equal(t, "Dining & Food", got[2].Category)
}

func TestTopExpenseCategoriesStableTieBreak(t *testing.T) {
	p := model.Period{Month: 8, Year: 2024}
	txns := []model.Transaction{
		{ID: 1, Kind: model.Expense, Category: "Utilities", Amount: 100, Date: date(1, 8, 2024)},
		{ID: 2, Kind: model.Expense, Category: "Grocery", Amount: 100, Date: date(2, 8, 2024)},
		{ID: 3, Kind: model.Expense, Category: "Shopping", Amount: 100, Date: date(3, 8, 2024)},
	}

	got := TopExpenseCategories(txns, p, 3)
	require.Len(t, got, 3)
	// Equal totals keep first-seen category order.
	assert.Equal(t, "Utilities", got[0].Category)
	assert.Equal(t, "Grocery", got[1].Category)
	assert.Equal(t, "Shopping", got[2].Category)
}

func TestYearlySummary(t *testing.T) {
	txns := []model.Transaction{
		{ID: 1, Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 1, 2024)},
		{ID: 2, Kind: model.Expense, Category: "Grocery", Amount: 400, Date: date(5, 1, 2024)},
		{ID: 3, Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 3, 2024)},
		{ID: 4, Kind: model.Income, Category: "Salary", Amount: 1000, Date: date(1, 1, 2023)},
	}

	ys := YearlySummary(txns, 2024)
	assert.Equal(t, 2024, ys.Year)
	assert.Equal(t, 2000.0, ys.Income)
	assert.Equal(t, 400.0, ys.Expense)
	assert.Equal(t, 1600.0, ys.Net())
	assert.Equal(t, 2, ys.MonthsWithData)
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name    string
		income  float64
		expense float64
		want    model.Health
	}{
		{name: "expenses exceed income", income: 1000, expense: 1001, want: model.HealthDanger},
		{name: "85 percent is risk", income: 1000, expense: 850, want: model.HealthRisk},
		{name: "60 percent is caution", income: 1000, expense: 600, want: model.HealthCaution},
		{name: "40 percent is healthy", income: 1000, expense: 400, want: model.HealthHealthy},
		{name: "exactly 80 percent stays caution", income: 1000, expense: 800, want: model.HealthCaution},
		{name: "exactly 50 percent stays healthy", income: 1000, expense: 500, want: model.HealthHealthy},
		{name: "no income no spend", income: 0, expense: 0, want: model.HealthHealthy},
		{name: "no income but spending", income: 0, expense: 10, want: model.HealthDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ClassifyHealth(tt.income, tt.expense)
			if got != tt.want {
				t.Errorf("ClassifyHealth(%.2f, %.2f) = %s, want %s", tt.income, tt.expense, got, tt.want)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	s := Totals(sampleMay())
	assert.Equal(t, 1500.0, s.Income)
	assert.Equal(t, 500.0, s.Expense)
	assert.Equal(t, 1000.0, s.Net())
}

func TestRender(t *testing.T) {
	out := Render("maria", sampleMay(), nil)

	assert.Contains(t, out, "SPENDWISE REPORT for maria")
	assert.Contains(t, out, "Total Income : 1500.00")
	assert.Contains(t, out, "Total Expense: 500.00")
	assert.Contains(t, out, "Net Savings  : 1000.00")
	assert.Contains(t, out, "Transactions : 4")
	assert.Contains(t, out, "Grocery")
	// Empty notes render as NA.
	assert.Contains(t, out, "NA")
}

func TestRenderScopedToPeriod(t *testing.T) {
	p := model.Period{Month: 6, Year: 2024}
	out := Render("maria", sampleMay(), &p)

	assert.Contains(t, out, "Period: 06/2024")
	assert.Contains(t, out, "Transactions : 1")
	assert.Contains(t, out, "Total Income : 500.00")
	assert.Equal(t, 1, strings.Count(out, "Salary"), "only the June salary line should appear")
}
