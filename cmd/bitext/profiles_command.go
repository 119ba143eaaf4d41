package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitext/internal/language"
)

func newProfilesCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List language-pair calibration profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			all := catalog.All()
			rows := make([][]string, 0, len(all))
			for _, p := range all {
				langs := ""
				if p.Source != "" {
					langs = language.DisplayName(p.Source) + " to " + language.DisplayName(p.Target)
				}
				rows = append(rows, []string{
					p.Key(),
					langs,
					formatFloat(p.Ratio),
					formatFloat(p.Variance),
					p.Note,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Pair", "Languages", "Ratio", "Variance", "Note"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}))
			return nil
		},
	}
}
