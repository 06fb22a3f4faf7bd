package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/report"
	"github.com/spendwise/spendwise/internal/session"
	"github.com/spendwise/spendwise/internal/storage"
)

// exportReport renders the session's ledger and writes it next to the data
// files. The progress bar is cosmetic; the write itself is a single atomic
// replace.
func exportReport(ctx context.Context, p *cli.Prompter, sess *session.Session, period *model.Period) error {
	w := p.Writer()
	txns := sess.Ledger.All()

	if period == nil {
		fmt.Fprintln(w, "1. Full ledger\n2. Single month")
		choice, err := p.Choice(ctx, "Report scope", []string{"1", "2"})
		if err != nil {
			return err
		}
		if choice == "2" {
			month, err := p.Int(ctx, "Month (1-12)")
			if err != nil {
				return err
			}
			year, err := p.Int(ctx, "Year (YYYY)")
			if err != nil {
				return err
			}
			period = &model.Period{Month: month, Year: year}
		}
	}

	content := report.Render(sess.Username, txns, period)
	fmt.Fprintln(w, content)

	bar := progressbar.NewOptions(len(strings.Split(content, "\n")),
		progressbar.OptionSetDescription("Exporting"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionClearOnFinish(),
	)
	for range strings.Split(content, "\n") {
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	path := sess.Files().ReportPath(sess.Username, period)
	if err := sess.Files().WriteReport(path, content); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}
	fmt.Fprintln(w, cli.FormatSuccess("Report exported to "+path))
	return nil
}

// reportCmd exports a user's report without entering the interactive menu.
func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a transaction report for a user",
		Long: `Render a user's transaction report and write it to the data directory.
With --month and --year the report covers a single month; otherwise it
covers the full ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("user")
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")

			var period *model.Period
			switch {
			case month != 0 && year != 0:
				if month < 1 || month > 12 {
					return fmt.Errorf("invalid month %d", month)
				}
				period = &model.Period{Month: month, Year: year}
			case month != 0 || year != 0:
				return fmt.Errorf("--month and --year must be used together")
			}

			files, err := storage.New(dataDir())
			if err != nil {
				return err
			}

			txns, err := files.LoadTransactions(username)
			if err != nil {
				return err
			}

			content := report.Render(username, txns, period)
			path := files.ReportPath(username, period)
			if err := files.WriteReport(path, content); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Report exported to "+path))
			return nil
		},
	}

	cmd.Flags().String("user", "", "username whose ledger to report on")
	cmd.Flags().Int("month", 0, "restrict the report to this month (1-12)")
	cmd.Flags().Int("year", 0, "restrict the report to this year")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
