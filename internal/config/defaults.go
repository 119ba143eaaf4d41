package config

import "bitext/internal/align"

const (
	defaultHardDelimiter = ".PARA"
	defaultSoftDelimiter = ".End of Sentence"
	defaultCounting      = "runes"
	defaultOutputSuffix  = ".al"
	defaultTMPath        = "~/.local/share/bitext/tm.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Segmentation: Segmentation{
			HardDelimiter: defaultHardDelimiter,
			SoftDelimiter: defaultSoftDelimiter,
		},
		Lengths: Lengths{
			Counting: defaultCounting,
		},
		Output: Output{
			Suffix: defaultOutputSuffix,
		},
		Model: Model{
			Ratio:         align.DefaultRatio,
			Variance:      align.DefaultVariance,
			GapPenalty:    align.DefaultGapPenalty,
			PairPenalty:   align.DefaultPairPenalty,
			DoublePenalty: align.DefaultDoublePenalty,
		},
		TM: TM{
			Enabled: false,
			Path:    defaultTMPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
