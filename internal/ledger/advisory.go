package ledger

// AdvisoryCode identifies the kind of warning attached to a successful add.
type AdvisoryCode int

// Advisory codes.
const (
	// AdviceOverIncome flags the month's cumulative expenses exceeding its
	// income. The user may choose to abort the add on this one.
	AdviceOverIncome AdvisoryCode = iota
	// AdviceBudgetApproaching flags spending above 80% of the budget limit.
	AdviceBudgetApproaching
	// AdviceBudgetExceeded flags spending above the budget limit.
	AdviceBudgetExceeded
)

// Advisory is a non-blocking warning returned alongside a successful
// operation. It informs; it never prevents the operation.
type Advisory struct {
	Message string
	Code    AdvisoryCode
}

// HasCode reports whether any advisory in the list carries the given code.
func HasCode(advisories []Advisory, code AdvisoryCode) bool {
	for _, a := range advisories {
		if a.Code == code {
			return true
		}
	}
	return false
}
