package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"meshman/internal/ledger"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded manifest generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(func(store *ledger.Store) error {
				runs, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, historyViews(runs))
				}

				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						shortRunID(run.RunID),
						run.StartedAt.Local().Format("2006-01-02 15:04:05"),
						run.AssetsRoot,
						strconv.Itoa(run.FolderCount),
						strconv.Itoa(run.AgentCount),
						strconv.Itoa(run.FileCount),
						run.Duration.Round(time.Millisecond).String(),
					})
				}

				if isTerminal(out) {
					fmt.Fprintln(out, renderTable(
						[]string{"Run", "Started", "Root", "Folders", "Agents", "Files", "Duration"},
						rows,
						[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
					))
				} else {
					for _, row := range rows {
						fmt.Fprintln(out, strings.Join(row, "\t"))
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print runs as JSON")
	return cmd
}

type historyView struct {
	RunID        string `json:"run_id"`
	StartedAt    string `json:"started_at"`
	FinishedAt   string `json:"finished_at"`
	AssetsRoot   string `json:"assets_root"`
	ManifestPath string `json:"manifest_path"`
	Folders      int    `json:"folders"`
	Agents       int    `json:"agents"`
	Files        int    `json:"files"`
	DurationMS   int64  `json:"duration_ms"`
}

func historyViews(runs []ledger.Run) []historyView {
	views := make([]historyView, 0, len(runs))
	for _, run := range runs {
		views = append(views, historyView{
			RunID:        run.RunID,
			StartedAt:    run.StartedAt.UTC().Format(time.RFC3339),
			FinishedAt:   run.FinishedAt.UTC().Format(time.RFC3339),
			AssetsRoot:   run.AssetsRoot,
			ManifestPath: run.ManifestPath,
			Folders:      run.FolderCount,
			Agents:       run.AgentCount,
			Files:        run.FileCount,
			DurationMS:   run.Duration.Milliseconds(),
		})
	}
	return views
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
