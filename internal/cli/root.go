package cli

import (
	"fmt"
	"os"
	"strings"

	"monofocus-cli/internal/format"
	"monofocus-cli/internal/planner"
	"monofocus-cli/internal/store"
	"monofocus-cli/internal/tui"

	"github.com/spf13/cobra"
)

// App carries the persistent flags shared by every command.
type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "monofocus",
		Short:        "MonoFocus (local-first) planner CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI (today view + focus timer)
  monofocus

  # Capture an idea into the inbox
  monofocus inbox add "call the dentist"

  # Plan a task for today and focus on it
  monofocus tasks add "write report" --day today
  monofocus focus start <task-id>

  # Review the week
  monofocus stats --period week --report
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("MONOFOCUS_DIR", ""), "Path to data dir (default: ~/.monofocus, or dataDir from config.json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("MONOFOCUS_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newInboxCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newFocusCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newBackupCmd(app))
	cmd.AddCommand(newHistoryCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	h, err := openHolder(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(h)
}

// openHolder resolves the data dir, loads + migrates the snapshot and wraps
// it in a state holder.
func openHolder(cmd *cobra.Command, app *App) (*planner.Holder, error) {
	dir, err := store.ResolveDataDir(app.Dir)
	if err != nil {
		return nil, err
	}
	return planner.Open(cmd.Context(), store.Store{Dir: dir})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
