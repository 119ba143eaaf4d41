package config

import (
	"fmt"

	"bitext/internal/region"
	"bitext/internal/textio"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegmentation(); err != nil {
		return err
	}
	if err := c.validateLengths(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateTM(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSegmentation() error {
	if c.Segmentation.HardDelimiter == "" {
		return fmt.Errorf("segmentation: hard_delimiter must not be empty")
	}
	if c.Segmentation.SoftDelimiter == "" {
		return fmt.Errorf("segmentation: soft_delimiter must not be empty")
	}
	if c.Segmentation.HardDelimiter == c.Segmentation.SoftDelimiter {
		return fmt.Errorf("segmentation: hard_delimiter and soft_delimiter must differ, both are %q", c.Segmentation.HardDelimiter)
	}
	return nil
}

func (c *Config) validateLengths() error {
	if _, err := region.ParseCounting(c.Lengths.Counting); err != nil {
		return fmt.Errorf("lengths: %w", err)
	}
	return nil
}

func (c *Config) validateInput() error {
	if err := textio.ValidateEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Suffix == "" {
		return fmt.Errorf("output: suffix must not be empty")
	}
	return nil
}

func (c *Config) validateModel() error {
	if c.Model.Ratio <= 0 {
		return fmt.Errorf("model: ratio must be positive, got %v", c.Model.Ratio)
	}
	if c.Model.Variance <= 0 {
		return fmt.Errorf("model: variance must be positive, got %v", c.Model.Variance)
	}
	if c.Model.GapPenalty < 0 || c.Model.PairPenalty < 0 || c.Model.DoublePenalty < 0 {
		return fmt.Errorf("model: penalties must not be negative")
	}
	return nil
}

func (c *Config) validateTM() error {
	if c.TM.Enabled && c.TM.Path == "" {
		return fmt.Errorf("tm: path must be set when the translation memory is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging: unsupported format %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unsupported level %q", c.Logging.Level)
	}
	return nil
}
