package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"bitext/internal/tmstore"
)

func newTMCommand(cmdCtx *commandContext) *cobra.Command {
	tmCmd := &cobra.Command{
		Use:   "tm",
		Short: "Translation memory utilities",
	}

	tmCmd.AddCommand(newTMRunsCommand(cmdCtx))
	tmCmd.AddCommand(newTMStatsCommand(cmdCtx))
	tmCmd.AddCommand(newTMExportCommand(cmdCtx))

	return tmCmd
}

func openTM(cmdCtx *commandContext) (*tmstore.Store, error) {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.TM.Path == "" {
		return nil, fmt.Errorf("no translation memory path configured")
	}
	store, err := tmstore.Open(cfg.TM.Path)
	if err != nil {
		return nil, fmt.Errorf("open translation memory: %w", err)
	}
	return store, nil
}

func newTMRunsCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded alignment runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openTM(cmdCtx)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No alignment runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				langs := "-"
				if run.SourceLang != "" && run.TargetLang != "" {
					langs = run.SourceLang + "-" + run.TargetLang
				}
				rows = append(rows, []string{
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					shortID(run.ID),
					filepath.Base(run.SourcePath),
					filepath.Base(run.TargetPath),
					langs,
					strconv.Itoa(run.Beads),
					strconv.Itoa(run.NewPairs),
					strconv.Itoa(run.TotalCost),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Created", "Run", "Source", "Target", "Pair", "Beads", "New", "Cost"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}))
			return nil
		},
	}
}

func newTMStatsCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show translation memory counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openTM(cmdCtx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.ReadStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Runs:  %d\n", stats.Runs)
			fmt.Fprintf(out, "Pairs: %d\n", stats.Pairs)
			if len(stats.ByKind) == 0 {
				return nil
			}

			kinds := make([]string, 0, len(stats.ByKind))
			for kind := range stats.ByKind {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			rows := make([][]string, 0, len(kinds))
			for _, kind := range kinds {
				rows = append(rows, []string{kind, strconv.FormatInt(stats.ByKind[kind], 10)})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Kind", "Pairs"},
				rows,
				[]columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newTMExportCommand(cmdCtx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored pairs as tab-separated text",
		Long: `Export writes every stored pair as tab-separated source, target, kind
and cost columns, ordered by creation time. An output path ending in .xz
is compressed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openTM(cmdCtx)
			if err != nil {
				return err
			}
			defer store.Close()

			exported, err := store.ExportFile(cmd.Context(), output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pairs to %s\n", exported, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "bitext-pairs.tsv", "Destination file (an .xz extension compresses)")

	return cmd
}
