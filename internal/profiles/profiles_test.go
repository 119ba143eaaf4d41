package profiles_test

import (
	"os"
	"path/filepath"
	"testing"

	"bitext/internal/align"
	"bitext/internal/profiles"
)

func TestDefaultProfile(t *testing.T) {
	p := profiles.Default()
	if p.Ratio != align.DefaultRatio || p.Variance != align.DefaultVariance {
		t.Errorf("Default() = %+v, want ratio %v variance %v", p, align.DefaultRatio, align.DefaultVariance)
	}
	if p.Key() != "default" {
		t.Errorf("Default().Key() = %q, want \"default\"", p.Key())
	}
}

func TestResolveBuiltinPair(t *testing.T) {
	c := profiles.NewCatalog()
	p, ok := c.Resolve("en", "fr")
	if !ok {
		t.Fatal("Resolve(en, fr) found no pair-specific profile")
	}
	if p.Ratio != 1.06 {
		t.Errorf("en-fr ratio = %v, want 1.06", p.Ratio)
	}
}

func TestResolveNormalizesCodes(t *testing.T) {
	c := profiles.NewCatalog()
	for _, tt := range []struct{ source, target string }{
		{"eng", "fra"},
		{"English", "French"},
		{"EN", "FR"},
	} {
		p, ok := c.Resolve(tt.source, tt.target)
		if !ok || p.Key() != "en-fr" {
			t.Errorf("Resolve(%q, %q) = %q, %v; want en-fr profile", tt.source, tt.target, p.Key(), ok)
		}
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	c := profiles.NewCatalog()
	p, ok := c.Resolve("ja", "fi")
	if ok {
		t.Error("Resolve(ja, fi) claimed a pair-specific profile")
	}
	if p.Ratio != align.DefaultRatio || p.Variance != align.DefaultVariance {
		t.Errorf("fallback profile = %+v, want default calibration", p)
	}
}

func TestResolveDirectionMatters(t *testing.T) {
	c := profiles.NewCatalog()
	fwd, _ := c.Resolve("en", "fr")
	rev, _ := c.Resolve("fr", "en")
	if fwd.Ratio == rev.Ratio {
		t.Errorf("en-fr and fr-en resolved to the same ratio %v", fwd.Ratio)
	}
}

func TestLoadFileOverlaysCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	doc := `profiles:
  - source: en
    target: fr
    ratio: 1.2
    variance: 7.5
    note: recalibrated
  - source: sv
    target: fi
    ratio: 0.97
    variance: 6.1
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c := profiles.NewCatalog()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	p, ok := c.Resolve("en", "fr")
	if !ok || p.Ratio != 1.2 || p.Variance != 7.5 {
		t.Errorf("en-fr after overlay = %+v, want recalibrated entry", p)
	}
	p, ok = c.Resolve("sv", "fi")
	if !ok || p.Ratio != 0.97 {
		t.Errorf("sv-fi after overlay = %+v, want loaded entry", p)
	}
}

func TestLoadFileReplacesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	doc := `profiles:
  - ratio: 1.05
    variance: 7.0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c := profiles.NewCatalog()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	p, ok := c.Resolve("ja", "fi")
	if ok {
		t.Error("Resolve(ja, fi) claimed a pair-specific profile")
	}
	if p.Ratio != 1.05 || p.Variance != 7.0 {
		t.Errorf("replaced default = %+v, want ratio 1.05 variance 7.0", p)
	}
}

func TestLoadFileRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "zero ratio",
			doc:  "profiles:\n  - source: en\n    target: fr\n    ratio: 0\n    variance: 6.8\n",
		},
		{
			name: "negative variance",
			doc:  "profiles:\n  - source: en\n    target: fr\n    ratio: 1.0\n    variance: -1\n",
		},
		{
			name: "half-empty pair",
			doc:  "profiles:\n  - source: en\n    ratio: 1.0\n    variance: 6.8\n",
		},
		{
			name: "not yaml",
			doc:  "profiles: [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profiles.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := profiles.NewCatalog().LoadFile(path); err == nil {
				t.Error("LoadFile succeeded, want error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := profiles.NewCatalog().LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("LoadFile on a missing file succeeded, want error")
	}
}

func TestAllListsDefaultFirst(t *testing.T) {
	all := profiles.NewCatalog().All()
	if len(all) < 5 {
		t.Fatalf("All() returned %d profiles, want the default plus builtins", len(all))
	}
	if all[0].Key() != "default" {
		t.Errorf("All()[0].Key() = %q, want \"default\"", all[0].Key())
	}
	for i := 2; i < len(all); i++ {
		if all[i-1].Key() >= all[i].Key() {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Key(), all[i].Key())
		}
	}
}
