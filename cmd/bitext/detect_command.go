package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitext/internal/langid"
	"bitext/internal/language"
	"bitext/internal/textio"
)

func newDetectCommand(cmdCtx *commandContext) *cobra.Command {
	var encodingFlag string

	cmd := &cobra.Command{
		Use:   "detect SOURCE TARGET",
		Short: "Detect document languages and show the matching profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("encoding") {
				encodingFlag = cfg.Input.Encoding
			}

			sourceLines, err := textio.ReadLines(args[0], encodingFlag)
			if err != nil {
				return err
			}
			targetLines, err := textio.ReadLines(args[1], encodingFlag)
			if err != nil {
				return err
			}

			detector, err := langid.New()
			if err != nil {
				return err
			}
			srcLang, srcOK := detector.Detect(sourceLines)
			tgtLang, tgtOK := detector.Detect(targetLines)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source: %s\n", describeLanguage(srcLang, srcOK))
			fmt.Fprintf(out, "Target: %s\n", describeLanguage(tgtLang, tgtOK))

			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			profile, found := catalog.Resolve(srcLang, tgtLang)
			if found {
				fmt.Fprintf(out, "Profile: %s (ratio %s, variance %s)\n",
					profile.Key(), formatFloat(profile.Ratio), formatFloat(profile.Variance))
			} else {
				fmt.Fprintf(out, "Profile: default (ratio %s, variance %s); no calibration for this pair\n",
					formatFloat(profile.Ratio), formatFloat(profile.Variance))
			}
			if profile.Note != "" {
				fmt.Fprintf(out, "Note: %s\n", profile.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&encodingFlag, "encoding", "", "Input encoding by IANA label (default from config)")

	return cmd
}

func describeLanguage(code string, ok bool) string {
	if !ok {
		return "undetermined"
	}
	return fmt.Sprintf("%s (%s)", language.DisplayName(code), code)
}
