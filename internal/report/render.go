package report

import (
	"fmt"
	"strings"

	"github.com/spendwise/spendwise/internal/model"
)

const reportRule = "----------------------------------------------------------------------"

// Render builds the exportable text report for a user: header, one
// fixed-width line per transaction, and trailing totals. A non-nil period
// restricts the report to that month.
func Render(username string, txns []model.Transaction, period *model.Period) string {
	scoped := txns
	if period != nil {
		scoped = nil
		for i := range txns {
			if txns[i].Date.Period() == *period {
				scoped = append(scoped, txns[i])
			}
		}
	}

	totals := Totals(scoped)

	var b strings.Builder
	fmt.Fprintf(&b, "SPENDWISE REPORT for %s\n", username)
	if period != nil {
		fmt.Fprintf(&b, "Period: %s\n", period)
	}
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "%4s  %-10s  %-8s  %-20s  %12s  %s\n", "ID", "DATE", "KIND", "CATEGORY", "AMOUNT", "NOTE")
	b.WriteString(reportRule + "\n")

	for i := range scoped {
		t := &scoped[i]
		note := t.Note
		if note == "" {
			note = "NA"
		}
		fmt.Fprintf(&b, "%4d  %-10s  %-8s  %-20s  %12.2f  %s\n",
			t.ID, t.Date, t.Kind, t.Category, t.Amount, note)
	}

	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Total Income : %.2f\n", totals.Income)
	fmt.Fprintf(&b, "Total Expense: %.2f\n", totals.Expense)
	fmt.Fprintf(&b, "Net Savings  : %.2f\n", totals.Net())
	fmt.Fprintf(&b, "Transactions : %d\n", len(scoped))
	return b.String()
}
