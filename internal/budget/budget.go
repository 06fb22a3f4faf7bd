// Package budget classifies expense totals against a per-user spending limit.
package budget

import "github.com/spendwise/spendwise/internal/model"

// ApproachingRatio is the fraction of the limit at which spending starts to
// be flagged as approaching it.
const ApproachingRatio = 0.8

// Classify grades an expense total against a budget limit. A limit of zero
// disables checking. Both comparisons are strict, so a total exactly at the
// limit is still Within.
func Classify(expenseTotal, limit float64) model.BudgetStatus {
	if limit == 0 {
		return model.BudgetDisabled
	}
	if expenseTotal > limit {
		return model.BudgetExceeded
	}
	if expenseTotal > ApproachingRatio*limit {
		return model.BudgetApproaching
	}
	return model.BudgetWithin
}
