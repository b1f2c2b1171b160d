package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"monofocus-cli/internal/migrate"
	"monofocus-cli/internal/model"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full state as a JSON backup (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Export is the live snapshot verbatim, so a re-import is a
			// no-op modulo carry-over.
			b, err := json.MarshalIndent(h.State(), "", "  ")
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			path := args[0]
			if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"exported": path}})
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup, replacing the current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			// Minimal shape check up front; everything deeper is absorbed
			// by migration.
			raw, err := migrate.CheckImportShape(b)
			if err != nil {
				return writeErr(cmd, err)
			}
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := h.Dispatch(cmd.Context(), model.ImportData{Raw: raw})
			summary := map[string]any{
				"captures": len(st.Captures),
				"tasks":    len(st.Tasks),
				"events":   len(st.Events),
			}
			return writeOut(cmd, app, map[string]any{"data": summary})
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and start from an empty state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errors.New("refusing to erase data without --yes"))
			}
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			h.Dispatch(cmd.Context(), model.ResetData{})
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"reset": true}})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing all data")
	return cmd
}

func newBackupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write a timestamped JSON backup into the data dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			path, err := h.Store().Backup(cmd.Context(), h.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"backup": path}})
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent actions from the audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			entries, err := h.Store().ReadHistory(limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": entries})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Max entries to show (0 = all)")
	return cmd
}
