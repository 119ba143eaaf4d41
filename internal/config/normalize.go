package config

import "strings"

// normalize cleans loaded values before validation. Delimiters are left
// untouched: they match input lines by exact equality, whitespace and all.
func (c *Config) normalize() error {
	c.Lengths.Counting = strings.ToLower(strings.TrimSpace(c.Lengths.Counting))
	if c.Lengths.Counting == "" {
		c.Lengths.Counting = defaultCounting
	}

	c.Input.Encoding = strings.TrimSpace(c.Input.Encoding)

	if strings.TrimSpace(c.Output.Suffix) == "" {
		c.Output.Suffix = defaultOutputSuffix
	}

	if err := c.normalizeProfiles(); err != nil {
		return err
	}
	if err := c.normalizeTM(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeProfiles() error {
	catalog := strings.TrimSpace(c.Profiles.Catalog)
	if catalog == "" {
		c.Profiles.Catalog = ""
		return nil
	}
	expanded, err := expandPath(catalog)
	if err != nil {
		return err
	}
	c.Profiles.Catalog = expanded
	return nil
}

func (c *Config) normalizeTM() error {
	path := strings.TrimSpace(c.TM.Path)
	if path == "" {
		c.TM.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	c.TM.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	path := strings.TrimSpace(c.Logging.Path)
	if path == "" {
		c.Logging.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	c.Logging.Path = expanded
	return nil
}
