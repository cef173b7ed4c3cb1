package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"meshman/internal/manifest"
	"meshman/internal/ordering"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show [manifest-path]",
		Short: "Display the contents of a generated manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.ManifestPath
			if len(args) == 1 {
				path = args[0]
			}

			m, err := manifest.ReadFile(path)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, m)
			}

			out := cmd.OutOrStdout()
			if len(m) == 0 {
				fmt.Fprintln(out, "Manifest is empty")
				return nil
			}

			rows := manifestRows(m)
			if isTerminal(out) {
				fmt.Fprintln(out, renderTable(
					[]string{"Folder", "Agent", "Meshes", "Indexes"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
				))
			} else {
				for _, row := range rows {
					fmt.Fprintln(out, strings.Join(row, "\t"))
				}
			}

			stats := m.Stats()
			fmt.Fprintf(out, "%d folders, %d agents, %d meshes\n",
				stats.Folders, stats.Agents, stats.Files)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the manifest as JSON")
	return cmd
}

// manifestRows flattens the manifest into one row per folder/agent pair,
// folders and agents in numeric order. Folders without agents keep a
// placeholder row so they stay visible.
func manifestRows(m manifest.Manifest) [][]string {
	var rows [][]string
	for _, folder := range ordering.SortedKeys(m) {
		agents := m[folder]
		if len(agents) == 0 {
			rows = append(rows, []string{folder, "-", "0", ""})
			continue
		}
		for _, agent := range ordering.SortedKeys(agents) {
			files := agents[agent]
			rows = append(rows, []string{
				folder,
				agent,
				strconv.Itoa(len(files)),
				indexRange(files),
			})
		}
	}
	return rows
}

func indexRange(files []string) string {
	if len(files) == 0 {
		return ""
	}
	first, ok := manifest.ParsePlacement(files[0])
	if !ok {
		return ""
	}
	last, ok := manifest.ParsePlacement(files[len(files)-1])
	if !ok {
		return ""
	}
	if first.Index == last.Index {
		return strconv.Itoa(first.Index)
	}
	return fmt.Sprintf("%d-%d", first.Index, last.Index)
}
