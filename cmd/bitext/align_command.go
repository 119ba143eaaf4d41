package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bitext/internal/align"
	"bitext/internal/aligner"
	"bitext/internal/config"
	"bitext/internal/langid"
	"bitext/internal/logging"
	"bitext/internal/profiles"
	"bitext/internal/region"
	"bitext/internal/textio"
	"bitext/internal/tmstore"
)

func newAlignCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		hardDelimiter string
		softDelimiter string
		scores        bool
		ratio         float64
		variance      float64
		countingFlag  string
		encodingFlag  string
		profilePair   string
		detect        bool
		suffix        string
		showStats     bool
		recordTM      bool
	)

	cmd := &cobra.Command{
		Use:   "align SOURCE TARGET",
		Short: "Align two parallel documents region by region",
		Long: `Align splits both documents into hard regions (anchors that must pair
one to one) and soft regions within them, then pairs the soft regions
using the Gale-Church character-length model. The aligned documents are
written next to the inputs with the output suffix appended; afterwards
the n-th soft region of the source output corresponds to the n-th soft
region of the target output.

The model is taken from, in order of precedence: the --ratio/--variance
flags, the --profile pair, language detection (--detect), or the
configured defaults.

Examples:
  bitext align chapter1.en chapter1.fr
  bitext align -D "<p>" -d "<s>" --scores report.en report.de
  bitext align --detect --tm --stats corpus.en corpus.fr`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			log := logging.NewComponentLogger(logger, "cli")

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
			if !flags.Changed("suffix") {
				suffix = cfg.Output.Suffix
			}
			if !flags.Changed("scores") {
				scores = cfg.Output.Scores
			}
			if !flags.Changed("detect") {
				detect = cfg.Profiles.AutoDetect
			}
			if !flags.Changed("tm") {
				recordTM = cfg.TM.Enabled
			}

			counting, err := region.ParseCounting(countingFlag)
			if err != nil {
				return err
			}
			if suffix == "" {
				return fmt.Errorf("output suffix must not be empty")
			}

			sourcePath, targetPath := args[0], args[1]
			sourceLines, err := textio.ReadLines(sourcePath, encodingFlag)
			if err != nil {
				return err
			}
			targetLines, err := textio.ReadLines(targetPath, encodingFlag)
			if err != nil {
				return err
			}

			warnTrailing(log, sourcePath, sourceLines, hardDelimiter)
			warnTrailing(log, targetPath, targetLines, hardDelimiter)

			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			sel, err := resolveModel(cfg, catalog, modelOptions{
				ratio:       ratio,
				variance:    variance,
				ratioSet:    flags.Changed("ratio"),
				varianceSet: flags.Changed("variance"),
				profilePair: profilePair,
				detect:      detect,
				sourceLines: sourceLines,
				targetLines: targetLines,
				logger:      log,
			})
			if err != nil {
				return err
			}
			log.Debug("model selected",
				logging.String("origin", sel.how),
				logging.Float64("ratio", sel.model.Ratio),
				logging.Float64("variance", sel.model.Variance))

			a, err := aligner.New(aligner.Options{
				HardDelimiter: hardDelimiter,
				SoftDelimiter: softDelimiter,
				Counting:      counting,
				Model:         sel.model,
				Logger:        logger,
			})
			if err != nil {
				return err
			}

			res, err := a.Run(cmd.Context(), sourceLines, targetLines)
			if err != nil {
				return err
			}

			srcOutPath := sourcePath + suffix
			tgtOutPath := targetPath + suffix
			if err := writeAligned(srcOutPath, tgtOutPath, res, aligner.WriteOptions{
				HardDelimiter: hardDelimiter,
				SoftDelimiter: softDelimiter,
				Scores:        scores,
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Aligned %d hard regions into %d beads (total cost %d)\n",
				res.Stats.HardRegions, res.Stats.Beads, res.Stats.TotalCost)
			fmt.Fprintf(out, "Wrote %s and %s\n", srcOutPath, tgtOutPath)

			if showStats {
				fmt.Fprintln(out, renderTable(out,
					[]string{"Metric", "Value"},
					statsRows(res),
					[]columnAlignment{alignLeft, alignRight}))
			}

			if recordTM {
				run := tmstore.Run{
					SourcePath:  sourcePath,
					TargetPath:  targetPath,
					SourceLang:  sel.sourceLang,
					TargetLang:  sel.targetLang,
					Ratio:       sel.model.Ratio,
					Variance:    sel.model.Variance,
					HardRegions: res.Stats.HardRegions,
					Beads:       res.Stats.Beads,
					TotalCost:   res.Stats.TotalCost,
				}
				inserted, err := recordRun(cmd.Context(), cfg.TM.Path, &run, res)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Recorded %d new pairs in the translation memory (run %s)\n",
					inserted, shortID(run.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&hardDelimiter, "hard", "D", "", "Hard delimiter line (default from config)")
	cmd.Flags().StringVarP(&softDelimiter, "soft", "d", "", "Soft delimiter line (default from config)")
	cmd.Flags().BoolVar(&scores, "scores", false, "Write a .Score line before each bead in both outputs")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "Expected target characters per source character")
	cmd.Flags().Float64Var(&variance, "variance", 0, "Variance of characters generated per source character")
	cmd.Flags().StringVar(&countingFlag, "counting", "", "Length measure, runes or bytes (default from config)")
	cmd.Flags().StringVar(&encodingFlag, "encoding", "", "Input encoding by IANA label (default from config)")
	cmd.Flags().StringVar(&profilePair, "profile", "", "Language-pair profile, e.g. en-fr")
	cmd.Flags().BoolVar(&detect, "detect", false, "Detect document languages and pick a matching profile")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Suffix appended to input paths for output files (default from config)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print an operation summary table")
	cmd.Flags().BoolVar(&recordTM, "tm", false, "Record aligned pairs into the translation memory")

	return cmd
}

type modelOptions struct {
	ratio       float64
	variance    float64
	ratioSet    bool
	varianceSet bool
	profilePair string
	detect      bool
	sourceLines []string
	targetLines []string
	logger      *slog.Logger
}

type modelSelection struct {
	model      align.Model
	sourceLang string
	targetLang string
	how        string
}

// resolveModel picks the distance model for a run. Flags beat an explicit
// profile, which beats detection, which beats the configured defaults.
// The penalty costs always come from the config.
func resolveModel(cfg *config.Config, catalog *profiles.Catalog, opts modelOptions) (modelSelection, error) {
	sel := modelSelection{
		model: align.Model{
			Ratio:         cfg.Model.Ratio,
			Variance:      cfg.Model.Variance,
			GapPenalty:    cfg.Model.GapPenalty,
			PairPenalty:   cfg.Model.PairPenalty,
			DoublePenalty: cfg.Model.DoublePenalty,
		},
		how: "config",
	}

	switch {
	case opts.ratioSet || opts.varianceSet:
		if opts.ratioSet {
			sel.model.Ratio = opts.ratio
		}
		if opts.varianceSet {
			sel.model.Variance = opts.variance
		}
		sel.how = "flags"

	case opts.profilePair != "":
		if opts.profilePair == "default" {
			p := profiles.Default()
			sel.model.Ratio = p.Ratio
			sel.model.Variance = p.Variance
			sel.how = "profile"
			return sel, nil
		}
		src, tgt, err := splitPair(opts.profilePair)
		if err != nil {
			return sel, err
		}
		profile, ok := catalog.Resolve(src, tgt)
		if !ok {
			return sel, fmt.Errorf("no profile for language pair %q (see \"bitext profiles\")", opts.profilePair)
		}
		sel.model.Ratio = profile.Ratio
		sel.model.Variance = profile.Variance
		sel.sourceLang = profile.Source
		sel.targetLang = profile.Target
		sel.how = "profile"

	case opts.detect:
		detector, err := langid.New()
		if err != nil {
			return sel, err
		}
		srcLang, srcOK := detector.Detect(opts.sourceLines)
		tgtLang, tgtOK := detector.Detect(opts.targetLines)
		if !srcOK || !tgtOK {
			opts.logger.Warn("language detection inconclusive, keeping configured model",
				logging.Bool("source_detected", srcOK),
				logging.Bool("target_detected", tgtOK))
			return sel, nil
		}
		sel.sourceLang = srcLang
		sel.targetLang = tgtLang
		profile, ok := catalog.Resolve(srcLang, tgtLang)
		if !ok {
			opts.logger.Warn("no profile for detected language pair, using default calibration",
				logging.String("source", srcLang),
				logging.String("target", tgtLang))
		}
		sel.model.Ratio = profile.Ratio
		sel.model.Variance = profile.Variance
		sel.how = "detected"
	}

	return sel, nil
}

func splitPair(pair string) (string, string, error) {
	parts := strings.SplitN(pair, "-", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("language pair must look like \"en-fr\", got %q", pair)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func warnTrailing(logger *slog.Logger, path string, lines []string, delimiter string) {
	trailing := region.Trailing(lines, delimiter)
	if len(trailing) == 0 {
		return
	}
	logger.Warn("lines after the final hard delimiter are not aligned",
		logging.String("file", path),
		logging.Int("lines", len(trailing)))
}

func writeAligned(srcPath, tgtPath string, res *aligner.Result, opts aligner.WriteOptions) error {
	srcFile, err := os.Create(srcPath)
	if err != nil {
		return fmt.Errorf("create aligned source %s: %w", srcPath, err)
	}
	tgtFile, err := os.Create(tgtPath)
	if err != nil {
		srcFile.Close()
		return fmt.Errorf("create aligned target %s: %w", tgtPath, err)
	}

	writeErr := aligner.Write(srcFile, tgtFile, res, opts)
	if err := srcFile.Close(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("close aligned source: %w", err)
	}
	if err := tgtFile.Close(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("close aligned target: %w", err)
	}
	return writeErr
}

func statsRows(res *aligner.Result) [][]string {
	rows := [][]string{
		{"Hard regions", strconv.Itoa(res.Stats.HardRegions)},
		{"Source segments", strconv.Itoa(res.Stats.SourceSoftRegions)},
		{"Target segments", strconv.Itoa(res.Stats.TargetSoftRegions)},
		{"Beads", strconv.Itoa(res.Stats.Beads)},
	}
	for kind := align.Substitution; kind <= align.Melding; kind++ {
		if n := res.Stats.ByKind[kind]; n > 0 {
			rows = append(rows, []string{"  " + kind.String(), strconv.Itoa(n)})
		}
	}
	return append(rows, []string{"Total cost", strconv.Itoa(res.Stats.TotalCost)})
}

func recordRun(ctx context.Context, tmPath string, run *tmstore.Run, res *aligner.Result) (int, error) {
	store, err := tmstore.Open(tmPath)
	if err != nil {
		return 0, fmt.Errorf("open translation memory: %w", err)
	}
	defer store.Close()

	inserted, err := store.RecordRun(ctx, run, tmPairs(res))
	if err != nil {
		return 0, fmt.Errorf("record alignment run: %w", err)
	}
	return inserted, nil
}

// tmPairs keeps only beads with text on both sides; deletions and
// insertions carry no translation relation.
func tmPairs(res *aligner.Result) []tmstore.Pair {
	pairs := make([]tmstore.Pair, 0, res.Stats.Beads)
	for _, bead := range res.Beads() {
		source := bead.SourceText()
		target := bead.TargetText()
		if source == "" || target == "" {
			continue
		}
		pairs = append(pairs, tmstore.Pair{
			SourceText: source,
			TargetText: target,
			Kind:       bead.Op.Kind.String(),
			Cost:       bead.Op.Cost,
		})
	}
	return pairs
}
