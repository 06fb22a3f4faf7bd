package model

// Summary holds income and expense totals for a period.
type Summary struct {
	Income  float64
	Expense float64
}

// Net returns income minus expense.
func (s Summary) Net() float64 {
	return s.Income - s.Expense
}

// YearlySummary aggregates a full calendar year. MonthsWithData counts the
// distinct months that have at least one transaction, so callers can flag
// partial years.
type YearlySummary struct {
	Summary
	Year           int
	MonthsWithData int
}

// CategoryTotal is one entry of a spending ranking.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Health classifies a period's spending relative to its income.
type Health int

// Health statuses, from worst to best.
const (
	HealthDanger Health = iota
	HealthRisk
	HealthCaution
	HealthHealthy
)

// String returns the display name of the status.
func (h Health) String() string {
	switch h {
	case HealthDanger:
		return "Danger"
	case HealthRisk:
		return "Risk"
	case HealthCaution:
		return "Caution"
	case HealthHealthy:
		return "Healthy"
	default:
		return "Unknown"
	}
}

// Tip returns the fixed advisory message attached to the status.
func (h Health) Tip() string {
	switch h {
	case HealthDanger:
		return "Reduce discretionary spending, prioritize essential bills."
	case HealthRisk:
		return "Cut shopping/dining, track subscriptions."
	case HealthCaution:
		return "Review recurring expenses."
	case HealthHealthy:
		return "Maintain savings and consider goals."
	default:
		return ""
	}
}

// BudgetStatus classifies an expense total against a budget limit.
type BudgetStatus int

// Budget statuses. Disabled means no limit is configured.
const (
	BudgetDisabled BudgetStatus = iota
	BudgetWithin
	BudgetApproaching
	BudgetExceeded
)

// String returns the display name of the status.
func (b BudgetStatus) String() string {
	switch b {
	case BudgetDisabled:
		return "Disabled"
	case BudgetWithin:
		return "Within"
	case BudgetApproaching:
		return "Approaching"
	case BudgetExceeded:
		return "Exceeded"
	default:
		return "Unknown"
	}
}
