// Package report derives summaries, rankings, and health classifications
// from a ledger's transactions, and renders the exportable text report.
package report

import (
	"sort"

	"github.com/spendwise/spendwise/internal/model"
)

// SumByKindAndPeriod adds the amounts of transactions matching kind and the
// exact (month, year) pair.
func SumByKindAndPeriod(txns []model.Transaction, kind model.Kind, p model.Period) float64 {
	var sum float64
	for i := range txns {
		t := &txns[i]
		if t.Kind == kind && t.Date.Period() == p {
			sum += t.Amount
		}
	}
	return sum
}

// Totals sums income and expense across all transactions regardless of
// period.
func Totals(txns []model.Transaction) model.Summary {
	var s model.Summary
	for i := range txns {
		switch txns[i].Kind {
		case model.Income:
			s.Income += txns[i].Amount
		case model.Expense:
			s.Expense += txns[i].Amount
		}
	}
	return s
}

// MonthlySummary computes the income/expense totals for one period.
func MonthlySummary(txns []model.Transaction, p model.Period) model.Summary {
	return model.Summary{
		Income:  SumByKindAndPeriod(txns, model.Income, p),
		Expense: SumByKindAndPeriod(txns, model.Expense, p),
	}
}

// YearlySummary aggregates months 1-12 of the given year and counts how many
// distinct months carry data.
func YearlySummary(txns []model.Transaction, year int) model.YearlySummary {
	ys := model.YearlySummary{Year: year}
	var hasData [13]bool

	for i := range txns {
		t := &txns[i]
		if t.Date.Year != year || t.Date.Month < 1 || t.Date.Month > 12 {
			continue
		}
		hasData[t.Date.Month] = true
		switch t.Kind {
		case model.Income:
			ys.Income += t.Amount
		case model.Expense:
			ys.Expense += t.Amount
		}
	}

	for m := 1; m <= 12; m++ {
		if hasData[m] {
			ys.MonthsWithData++
		}
	}
	return ys
}

// TopExpenseCategories groups the period's expenses by category, sums each
// group, and returns at most limit entries ordered by total descending.
// Equal totals keep the order in which their category first appeared.
func TopExpenseCategories(txns []model.Transaction, p model.Period, limit int) []model.CategoryTotal {
	index := make(map[string]int)
	var ranked []model.CategoryTotal

	for i := range txns {
		t := &txns[i]
		if t.Kind != model.Expense || t.Date.Period() != p {
			continue
		}
		if at, ok := index[t.Category]; ok {
			ranked[at].Total += t.Amount
		} else {
			index[t.Category] = len(ranked)
			ranked = append(ranked, model.CategoryTotal{Category: t.Category, Total: t.Amount})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ClassifyHealth grades a period's spending. It returns the status and the
// expense/income percentage it was derived from (0 when income is zero,
// unless expenses already exceed it).
func ClassifyHealth(income, expense float64) (model.Health, float64) {
	if expense > income {
		ratio := 0.0
		if income > 0 {
			ratio = expense / income * 100
		}
		return model.HealthDanger, ratio
	}

	ratio := 0.0
	if income > 0 {
		ratio = expense / income * 100
	}
	switch {
	case ratio > 80:
		return model.HealthRisk, ratio
	case ratio > 50:
		return model.HealthCaution, ratio
	default:
		return model.HealthHealthy, ratio
	}
}
