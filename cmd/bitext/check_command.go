package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"bitext/internal/aligner"
	"bitext/internal/region"
	"bitext/internal/textio"
)

func newCheckCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		hardDelimiter string
		softDelimiter string
		countingFlag  string
		encodingFlag  string
	)

	cmd := &cobra.Command{
		Use:   "check SOURCE TARGET",
		Short: "Inspect region structure before aligning",
		Long: `Check splits both documents the way align would and reports the region
accounting: hard-region counts, segments and lengths per region, and any
text that alignment would drop. It fails with the same error align would
produce when the hard-region counts differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("hard") {
				hardDelimiter = cfg.Segmentation.HardDelimiter
			}
			if !flags.Changed("soft") {
				softDelimiter = cfg.Segmentation.SoftDelimiter
			}
			if !flags.Changed("counting") {
				countingFlag = cfg.Lengths.Counting
			}
			if !flags.Changed("encoding") {
				encodingFlag = cfg.Input.Encoding
			}

			counting, err := region.ParseCounting(countingFlag)
			if err != nil {
				return err
			}

			sourceLines, err := textio.ReadLines(args[0], encodingFlag)
			if err != nil {
				return err
			}
			targetLines, err := textio.ReadLines(args[1], encodingFlag)
			if err != nil {
				return err
			}

			sourceHard := region.Split(sourceLines, hardDelimiter)
			targetHard := region.Split(targetLines, hardDelimiter)

			out := cmd.OutOrStdout()
			colorize := writerIsTerminal(out)

			for _, line := range renderSectionHeader("Structure", colorize) {
				fmt.Fprintln(out, line)
			}
			printStatusLine(out, "Hard delimiter", statusInfo, strconv.Quote(hardDelimiter))
			printStatusLine(out, "Soft delimiter", statusInfo, strconv.Quote(softDelimiter))
			if len(sourceHard) == len(targetHard) {
				printStatusLine(out, "Hard regions", statusOK, fmt.Sprintf("%d on each side", len(sourceHard)))
			} else {
				printStatusLine(out, "Hard regions", statusError,
					fmt.Sprintf("source %d, target %d", len(sourceHard), len(targetHard)))
			}
			reportSide(out, "Source", sourceLines, sourceHard, hardDelimiter, softDelimiter)
			reportSide(out, "Target", targetLines, targetHard, hardDelimiter, softDelimiter)

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Regions", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Region", "Source segments", "Source length", "Target segments", "Target length"},
				regionRows(sourceHard, targetHard, softDelimiter, counting),
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight}))

			if len(sourceHard) != len(targetHard) {
				return &aligner.MismatchError{
					Delimiter:   hardDelimiter,
					SourceCount: len(sourceHard),
					TargetCount: len(targetHard),
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&hardDelimiter, "hard", "D", "", "Hard delimiter line (default from config)")
	cmd.Flags().StringVarP(&softDelimiter, "soft", "d", "", "Soft delimiter line (default from config)")
	cmd.Flags().StringVar(&countingFlag, "counting", "", "Length measure, runes or bytes (default from config)")
	cmd.Flags().StringVar(&encodingFlag, "encoding", "", "Input encoding by IANA label (default from config)")

	return cmd
}

func reportSide(out io.Writer, side string, lines []string, hard [][]string, hardDelim, softDelim string) {
	segments := 0
	unterminated := 0
	for _, regionLines := range hard {
		segments += len(region.Split(regionLines, softDelim))
		unterminated += len(region.Trailing(regionLines, softDelim))
	}
	printStatusLine(out, side+" segments", statusInfo, fmt.Sprintf("%d in %d regions", segments, len(hard)))
	if trailing := len(region.Trailing(lines, hardDelim)); trailing > 0 {
		printStatusLine(out, side+" trailing", statusWarn,
			fmt.Sprintf("%d lines after the final hard delimiter", trailing))
	}
	if unterminated > 0 {
		printStatusLine(out, side+" dropped", statusWarn,
			fmt.Sprintf("%d lines not terminated by a soft delimiter", unterminated))
	}
}

func regionRows(sourceHard, targetHard [][]string, softDelim string, counting region.Counting) [][]string {
	count := len(sourceHard)
	if len(targetHard) > count {
		count = len(targetHard)
	}
	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		row := []string{strconv.Itoa(i + 1), "-", "-", "-", "-"}
		if i < len(sourceHard) {
			segments, length := measureRegion(sourceHard[i], softDelim, counting)
			row[1], row[2] = strconv.Itoa(segments), strconv.Itoa(length)
		}
		if i < len(targetHard) {
			segments, length := measureRegion(targetHard[i], softDelim, counting)
			row[3], row[4] = strconv.Itoa(segments), strconv.Itoa(length)
		}
		rows = append(rows, row)
	}
	return rows
}

func measureRegion(lines []string, softDelim string, counting region.Counting) (segments, total int) {
	soft := region.Split(lines, softDelim)
	for _, length := range region.Lengths(soft, counting) {
		total += length
	}
	return len(soft), total
}
