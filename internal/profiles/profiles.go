package profiles

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bitext/internal/align"
	"bitext/internal/language"
)

// Profile carries the calibrated model parameters for one directed
// language pair. An empty Source and Target marks the pair-independent
// default.
type Profile struct {
	Source   string  `yaml:"source"`
	Target   string  `yaml:"target"`
	Ratio    float64 `yaml:"ratio"`
	Variance float64 `yaml:"variance"`
	Note     string  `yaml:"note,omitempty"`
}

// Key returns the canonical "source-target" identifier, or "default" for
// the pair-independent profile.
func (p Profile) Key() string {
	if p.Source == "" && p.Target == "" {
		return "default"
	}
	return p.Source + "-" + p.Target
}

// Model builds the distance model the profile describes.
func (p Profile) Model() align.Model {
	return align.NewModel(p.Ratio, p.Variance)
}

func (p Profile) validate() error {
	if (p.Source == "") != (p.Target == "") {
		return fmt.Errorf("profile %q: source and target must both be set or both be empty", p.Key())
	}
	if p.Ratio <= 0 {
		return fmt.Errorf("profile %q: ratio must be positive, got %v", p.Key(), p.Ratio)
	}
	if p.Variance <= 0 {
		return fmt.Errorf("profile %q: variance must be positive, got %v", p.Key(), p.Variance)
	}
	return nil
}

// normalized returns a copy with both codes mapped to ISO 639-1.
func (p Profile) normalized() Profile {
	p.Source = language.ToISO2(p.Source)
	p.Target = language.ToISO2(p.Target)
	return p
}

// Default is the language-independent calibration of Gale & Church:
// one target character per source character with variance 6.8.
func Default() Profile {
	return Profile{
		Ratio:    align.DefaultRatio,
		Variance: align.DefaultVariance,
		Note:     "language-independent default",
	}
}

// builtin holds the published calibrations. The French and German ratios
// are the estimates from the economic-report corpus of Gale & Church;
// the reverse directions invert them.
var builtin = []Profile{
	{Source: "en", Target: "fr", Ratio: 1.06, Variance: 6.8, Note: "economic-report corpus"},
	{Source: "fr", Target: "en", Ratio: 0.94, Variance: 6.8, Note: "economic-report corpus, reversed"},
	{Source: "en", Target: "de", Ratio: 1.10, Variance: 6.8, Note: "economic-report corpus"},
	{Source: "de", Target: "en", Ratio: 0.91, Variance: 6.8, Note: "economic-report corpus, reversed"},
}

// Catalog resolves profiles by language pair, overlaying user-supplied
// entries on the builtin table.
type Catalog struct {
	byKey map[string]Profile
}

// NewCatalog returns a catalog holding the builtin profiles.
func NewCatalog() *Catalog {
	c := &Catalog{byKey: make(map[string]Profile, len(builtin)+1)}
	c.put(Default())
	for _, p := range builtin {
		c.put(p)
	}
	return c
}

func (c *Catalog) put(p Profile) {
	c.byKey[p.Key()] = p
}

type catalogFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadFile overlays the profiles of a YAML catalog file. Entries replace
// builtin or previously loaded profiles for the same pair; an entry with
// empty source and target replaces the default.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile catalog: %w", err)
	}
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse profile catalog %s: %w", path, err)
	}
	for i, p := range doc.Profiles {
		p = p.normalized()
		if err := p.validate(); err != nil {
			return fmt.Errorf("profile catalog %s entry %d: %w", path, i+1, err)
		}
		c.put(p)
	}
	return nil
}

// Resolve returns the profile for the directed pair, falling back to the
// default calibration. The second return reports whether a pair-specific
// profile was found.
func (c *Catalog) Resolve(source, target string) (Profile, bool) {
	src := language.ToISO2(source)
	tgt := language.ToISO2(target)
	if src != "" && tgt != "" {
		if p, ok := c.byKey[src+"-"+tgt]; ok {
			return p, true
		}
	}
	return c.byKey["default"], false
}

// All returns every profile in the catalog, the default first and the
// rest sorted by pair key.
func (c *Catalog) All() []Profile {
	out := make([]Profile, 0, len(c.byKey))
	for key, p := range c.byKey {
		if key == "default" {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Key(), out[j].Key()) < 0
	})
	return append([]Profile{c.byKey["default"]}, out...)
}
