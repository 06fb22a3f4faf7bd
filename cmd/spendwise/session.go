package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/ledger"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/report"
	"github.com/spendwise/spendwise/internal/session"
	"github.com/spendwise/spendwise/internal/storage"
)

const sessionMenuText = ` 1. Add transaction
 2. View transactions
 3. Manage categories
 4. View summary
 5. Edit transaction
 6. Delete transaction
 7. Set budget
 8. Generate & export report
 9. Settings
10. Save & logout
 0. Exit`

// sessionMenu drives the logged-in menu loop until logout or exit.
func sessionMenu(ctx context.Context, p *cli.Prompter, creds *auth.Store, files *storage.FileStore, username string) error {
	sess, err := session.Open(files, username)
	if err != nil {
		return err
	}
	w := p.Writer()

	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.RenderBox(fmt.Sprintf("Hello, %s", sess.Username), sessionMenuText))

		choice, err := p.Choice(ctx, "Choice", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "0"})
		if err != nil {
			return err
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = addTransaction(ctx, p, sess)
		case "2":
			viewTransactions(w, sess)
		case "3":
			actionErr = manageCategories(ctx, p, sess)
		case "4":
			actionErr = viewSummary(ctx, p, sess)
		case "5":
			actionErr = editTransaction(ctx, p, sess)
		case "6":
			actionErr = deleteTransaction(ctx, p, sess)
		case "7":
			actionErr = setBudget(ctx, p, sess)
		case "8":
			actionErr = exportReport(ctx, p, sess, nil)
		case "9":
			actionErr = settingsMenu(ctx, p, creds, sess)
		case "10":
			if err := sess.Save(); err != nil {
				fmt.Fprintln(w, cli.FormatError(common.Message(err)))
				continue
			}
			fmt.Fprintln(w, cli.FormatSuccess("Saved. Logged out."))
			return nil
		case "0":
			if err := sess.Save(); err != nil {
				fmt.Fprintln(w, cli.FormatError(common.Message(err)))
				continue
			}
			fmt.Fprintln(w, cli.FormatSuccess("Saved."))
			return errQuit
		}

		if actionErr != nil {
			return actionErr
		}
	}
}

// addTransaction runs the income/expense entry flow. Validation failures are
// shown and the menu resumes; only I/O and cancellation bubble up.
func addTransaction(ctx context.Context, p *cli.Prompter, sess *session.Session) error {
	w := p.Writer()

	fmt.Fprintln(w, "1. Income\n2. Expense\n3. Back")
	choice, err := p.Choice(ctx, "Add", []string{"1", "2", "3"})
	if err != nil || choice == "3" {
		return err
	}

	in := ledger.AddInput{Kind: model.Income}
	if choice == "2" {
		in.Kind = model.Expense
		in.Category, err = pickExpenseCategory(ctx, p, sess)
		if err != nil {
			return err
		}
	} else {
		category, err := p.Line(ctx, `Income category (blank for "Salary")`)
		if err != nil {
			return err
		}
		if category == "" {
			category = "Salary"
		}
		in.Category = category
	}

	if in.Amount, err = p.Float(ctx, "Amount"); err != nil {
		return err
	}
	if in.Date, err = p.Date(ctx, "Date (D/M/Y, blank for today)"); err != nil {
		if ctx.Err() != nil {
			return err
		}
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	if in.Note, err = p.Line(ctx, "Note (optional)"); err != nil {
		return err
	}

	// Let the user back out of an expense that pushes the month past its
	// income. Budget advisories are informational only.
	advisories, err := sess.Ledger.Advise(in)
	if err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	if ledger.HasCode(advisories, ledger.AdviceOverIncome) {
		for _, a := range advisories {
			if a.Code == ledger.AdviceOverIncome {
				fmt.Fprintln(w, cli.FormatWarning(a.Message))
			}
		}
		ok, err := p.Confirm(ctx, "Add it anyway?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, cli.FormatInfo("Cancelled."))
			return nil
		}
	}

	tx, advisories, err := sess.Ledger.Add(in)
	if err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	for _, a := range advisories {
		if a.Code != ledger.AdviceOverIncome {
			fmt.Fprintln(w, cli.FormatWarning(a.Message))
		}
	}

	if err := sess.Save(); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("%s added (ID %d).", tx.Kind, tx.ID)))
	return nil
}

func pickExpenseCategory(ctx context.Context, p *cli.Prompter, sess *session.Session) (string, error) {
	w := p.Writer()

	for i, name := range sess.Categories.Names() {
		fmt.Fprintf(w, " %d. %s\n", i+1, name)
	}
	fmt.Fprintln(w, " 0. Custom")

	choice, err := p.Int(ctx, "Category")
	if err != nil {
		return "", err
	}
	if choice == 0 {
		custom, err := p.Line(ctx, `Custom category (blank for "Others")`)
		if err != nil {
			return "", err
		}
		if custom == "" {
			return "Others", nil
		}
		sess.Categories.Add(custom)
		return custom, nil
	}
	if name, ok := sess.Categories.At(choice); ok {
		return name, nil
	}
	return "", nil // empty category fails validation downstream
}

func viewTransactions(w io.Writer, sess *session.Session) {
	txns := sess.Ledger.All()
	if len(txns) == 0 {
		fmt.Fprintln(w, cli.FormatInfo("No transactions yet."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("ID"),
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Kind"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("Note"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 4), strings.Repeat("-", 10), strings.Repeat("-", 7),
		strings.Repeat("-", 16), strings.Repeat("-", 10), strings.Repeat("-", 12))
	for i := range txns {
		t := &txns[i]
		note := t.Note
		if note == "" {
			note = cli.SubtleStyle.Render("NA")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\n", t.ID, t.Date, t.Kind, t.Category, t.Amount, note)
	}
	_ = tw.Flush()

	totals := report.Totals(txns)
	fmt.Fprintf(w, "\nTotal Income : %.2f\nTotal Expense: %.2f\nSavings      : %.2f\n",
		totals.Income, totals.Expense, totals.Net())
}

func manageCategories(ctx context.Context, p *cli.Prompter, sess *session.Session) error {
	w := p.Writer()
	for {
		fmt.Fprintln(w, "\n1. View categories\n2. Add category\n3. Back")
		choice, err := p.Choice(ctx, "Choice", []string{"1", "2", "3"})
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			for i, name := range sess.Categories.Names() {
				fmt.Fprintf(w, " %d. %s\n", i+1, name)
			}
		case "2":
			name, err := p.Line(ctx, "New category name")
			if err != nil {
				return err
			}
			if sess.Categories.Add(name) {
				fmt.Fprintln(w, cli.FormatSuccess("Category added."))
			} else {
				fmt.Fprintln(w, cli.FormatError("Category already exists or is empty."))
			}
		case "3":
			return nil
		}
	}
}

func viewSummary(ctx context.Context, p *cli.Prompter, sess *session.Session) error {
	w := p.Writer()

	fmt.Fprintln(w, "1. Monthly\n2. Yearly\n3. Back")
	choice, err := p.Choice(ctx, "Summary", []string{"1", "2", "3"})
	if err != nil || choice == "3" {
		return err
	}

	txns := sess.Ledger.All()
	if choice == "2" {
		year, err := p.Int(ctx, "Year (YYYY)")
		if err != nil {
			return err
		}
		ys := report.YearlySummary(txns, year)
		if ys.MonthsWithData < 12 {
			fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf(
				"Data present for %d month(s). Add other months for a full yearly picture.", ys.MonthsWithData)))
		}
		fmt.Fprintf(w, "\n===== Yearly Summary %04d =====\n", year)
		printSummary(w, ys.Summary)
		return nil
	}

	month, err := p.Int(ctx, "Month (1-12)")
	if err != nil {
		return err
	}
	year, err := p.Int(ctx, "Year (YYYY)")
	if err != nil {
		return err
	}
	period := model.Period{Month: month, Year: year}

	summary := report.MonthlySummary(txns, period)
	fmt.Fprintf(w, "\n===== Monthly Summary %s =====\n", period)
	printSummary(w, summary)
	printHealth(w, summary)

	if top := report.TopExpenseCategories(txns, period, 3); len(top) > 0 {
		fmt.Fprintln(w, "\nTop spending categories:")
		for i, ct := range top {
			fmt.Fprintf(w, " %d) %s - %.2f\n", i+1, ct.Category, ct.Total)
		}
	}
	return nil
}

func printSummary(w io.Writer, s model.Summary) {
	fmt.Fprintf(w, "Total Income : %.2f\nTotal Expense: %.2f\nSavings      : %.2f\n",
		s.Income, s.Expense, s.Net())
}

func printHealth(w io.Writer, s model.Summary) {
	health, ratio := report.ClassifyHealth(s.Income, s.Expense)

	label := fmt.Sprintf("%s (%.1f%% of income spent)", health, ratio)
	switch health {
	case model.HealthDanger, model.HealthRisk:
		fmt.Fprintln(w, "Health:", cli.ErrorStyle.Render(label))
	case model.HealthCaution:
		fmt.Fprintln(w, "Health:", cli.WarningStyle.Render(label))
	case model.HealthHealthy:
		fmt.Fprintln(w, "Health:", cli.SuccessStyle.Render(label))
	}
	fmt.Fprintln(w, "Tip:", health.Tip())
}

func editTransaction(ctx context.Context, p *cli.Prompter, sess *session.Session) error {
	w := p.Writer()
	viewTransactions(w, sess)
	if sess.Ledger.Len() == 0 {
		return nil
	}

	id, err := p.Int(ctx, "Transaction ID to edit")
	if err != nil {
		return err
	}
	if tx := sess.Ledger.FindByID(id); tx == nil {
		fmt.Fprintln(w, cli.FormatError(common.ErrNotFound.Error()))
		return nil
	}

	fmt.Fprintln(w, "1. Kind\n2. Category\n3. Amount\n4. Date\n5. Note\n0. Cancel")
	field, err := p.Choice(ctx, "Field", []string{"1", "2", "3", "4", "5", "0"})
	if err != nil || field == "0" {
		return err
	}

	var update ledger.Update
	switch field {
	case "1":
		line, err := p.Choice(ctx, "New kind (Income/Expense)", []string{"income", "expense"})
		if err != nil {
			return err
		}
		kind := model.Income
		if line == "expense" {
			kind = model.Expense
		}
		update.Kind = &kind
	case "2":
		line, err := p.Line(ctx, "New category")
		if err != nil {
			return err
		}
		update.Category = &line
	case "3":
		amount, err := p.Float(ctx, "New amount")
		if err != nil {
			return err
		}
		update.Amount = &amount
	case "4":
		date, err := p.Date(ctx, "New date (D/M/Y)")
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintln(w, cli.FormatError(common.Message(err)))
			return nil
		}
		update.Date = &date
	case "5":
		line, err := p.Line(ctx, "New note")
		if err != nil {
			return err
		}
		update.Note = &line
	}

	if _, err := sess.Ledger.Edit(id, update); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	if err := sess.Save(); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	fmt.Fprintln(w, cli.FormatSuccess("Updated."))
	return nil
}

func deleteTransaction(ctx context.Context, p *cli.Prompter, sess *session.Session) error {
	w := p.Writer()
	viewTransactions(w, sess)
	if sess.Ledger.Len() == 0 {
		return nil
	}

	id, err := p.Int(ctx, "Transaction ID to delete")
	if err != nil {
		return err
	}
	if !sess.Ledger.Delete(id) {
		fmt.Fprintln(w, cli.FormatError(common.ErrNotFound.Error()))
		return nil
	}
	if err := sess.Save(); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	fmt.Fprintln(w, cli.FormatSuccess("Deleted."))
	return nil
}

func setBudget(ctx context.Context, p *cli.Prompter, sess *session.Session) error {
	w := p.Writer()

	limit, err := p.Float(ctx, "Monthly budget limit (0 to disable)")
	if err != nil {
		return err
	}
	if err := sess.SetBudget(limit); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	if limit == 0 {
		fmt.Fprintln(w, cli.FormatSuccess("Budget checking disabled."))
	} else {
		fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Budget saved (%.2f).", limit)))
	}
	return nil
}

func settingsMenu(ctx context.Context, p *cli.Prompter, creds *auth.Store, sess *session.Session) error {
	w := p.Writer()

	fmt.Fprintln(w, "1. Change password\n2. About\n3. Back")
	choice, err := p.Choice(ctx, "Settings", []string{"1", "2", "3"})
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		oldPass, err := p.Password(ctx, "Current password")
		if err != nil {
			return err
		}
		newPass, err := p.Password(ctx, "New password")
		if err != nil {
			return err
		}
		if err := creds.ChangePassword(sess.Username, oldPass, newPass); err != nil {
			fmt.Fprintln(w, cli.FormatError(common.Message(err)))
			return nil
		}
		fmt.Fprintln(w, cli.FormatSuccess("Password changed."))
	case "2":
		fmt.Fprintln(w, "spendwise: a single-user console budget tracker.")
		fmt.Fprintln(w, "Data lives in", dataDir())
	}
	return nil
}
