package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Segmentation controls how documents split into hard and soft regions.
// Delimiters are complete lines compared by exact equality, so they are
// never trimmed or case folded.
type Segmentation struct {
	HardDelimiter string `toml:"hard_delimiter"`
	SoftDelimiter string `toml:"soft_delimiter"`
}

// Lengths controls how soft regions are measured.
type Lengths struct {
	Counting string `toml:"counting"`
}

// Input controls how documents are read.
type Input struct {
	Encoding string `toml:"encoding"`
}

// Output controls aligned-file serialization.
type Output struct {
	Suffix string `toml:"suffix"`
	Scores bool   `toml:"scores"`
}

// Model carries the distance-model parameters used when no language
// profile overrides them. The penalties apply regardless of profile.
type Model struct {
	Ratio         float64 `toml:"ratio"`
	Variance      float64 `toml:"variance"`
	GapPenalty    int     `toml:"gap_penalty"`
	PairPenalty   int     `toml:"pair_penalty"`
	DoublePenalty int     `toml:"double_penalty"`
}

// Profiles controls language-pair calibration lookup.
type Profiles struct {
	Catalog    string `toml:"catalog"`
	AutoDetect bool   `toml:"auto_detect"`
}

// TM configures the translation-memory store.
type TM struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// Config is the root configuration shared by all commands.
type Config struct {
	Segmentation Segmentation `toml:"segmentation"`
	Lengths      Lengths      `toml:"lengths"`
	Input        Input        `toml:"input"`
	Output       Output       `toml:"output"`
	Model        Model        `toml:"model"`
	Profiles     Profiles     `toml:"profiles"`
	TM           TM           `toml:"tm"`
	Logging      Logging      `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/bitext/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("bitext.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
