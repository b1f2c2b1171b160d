package cli

import (
	"fmt"

	"monofocus-cli/internal/stats"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var period, series string
	var report bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Productivity statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stats.KnownPeriod(period) {
				return writeErr(cmd, fmt.Errorf("unknown period %q (today|week|month|year|all)", period))
			}
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			now := h.Now()
			tasks := h.State().Tasks

			if report {
				md := stats.Report(tasks, stats.Period(period), now)
				out, err := renderMarkdown(md)
				if err != nil {
					// Fall back to raw markdown rather than failing the
					// report over a terminal quirk.
					out = md
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			if series != "" {
				if !stats.KnownUnit(series) {
					return writeErr(cmd, fmt.Errorf("unknown series %q (daily|weekly|monthly|yearly)", series))
				}
				buckets := stats.Series(tasks, stats.Unit(series), now)
				return writeOut(cmd, app, map[string]any{"data": buckets})
			}

			sum := stats.ForPeriod(tasks, stats.Period(period), now)
			return writeOut(cmd, app, map[string]any{"data": sum})
		},
	}
	cmd.Flags().StringVar(&period, "period", "today", "Period (today|week|month|year|all)")
	cmd.Flags().StringVar(&series, "series", "", "Bucketed completed-task series instead of a summary (daily|weekly|monthly|yearly)")
	cmd.Flags().BoolVar(&report, "report", false, "Render a human-readable report")
	return cmd
}

func renderMarkdown(md string) (string, error) {
	style := styles()
	// Avoid WithAutoStyle(): it can block waiting on terminal queries in
	// some setups.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func styles() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
