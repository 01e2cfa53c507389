package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := defaultCatalog()

	if len(catalog.Sources) == 0 {
		t.Fatalf("Built-in catalog should not be empty")
	}

	preset, ok := catalog.Lookup("PKS 2155-304")
	if !ok {
		t.Fatalf("PKS 2155-304 should be in the built-in catalog")
	}
	if preset.Z != 0.116 {
		t.Errorf("Expected z 0.116, got %g", preset.Z)
	}

	if _, ok := catalog.Lookup("no such source"); ok {
		t.Errorf("Lookup of an unknown source should fail")
	}
}

func TestLoadCatalogFromFileMissing(t *testing.T) {
	catalog, err := LoadCatalogFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Missing catalog file should fall back to defaults: %v", err)
	}

	if !reflect.DeepEqual(catalog, defaultCatalog()) {
		t.Errorf("Expected built-in catalog, got %+v", catalog)
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	content := `sources:
  - name: 1ES 1011+496
    z: 0.212
    ra: 153.767317
    dec: 49.433517
    scenario: [Jet, IGM, GMF]
`
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	catalog, err := LoadCatalogFromFile(path)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	preset, ok := catalog.Lookup("1ES 1011+496")
	if !ok {
		t.Fatalf("Expected 1ES 1011+496 in catalog")
	}

	want := []Region{RegionJet, RegionIGM, RegionGMF}
	if !reflect.DeepEqual(preset.Scenario, want) {
		t.Errorf("Expected scenario %v, got %v", want, preset.Scenario)
	}
}

func TestPresetApply(t *testing.T) {
	cfg := DefaultConfig()

	preset := SourcePreset{
		Name:     "NGC 1275",
		Z:        0.017559,
		RA:       49.950667,
		Dec:      41.511696,
		Scenario: []Region{RegionICM, RegionIGM, RegionGMF},
	}
	preset.Apply(cfg)

	if cfg.Source.Z != 0.017559 {
		t.Errorf("Expected z 0.017559, got %g", cfg.Source.Z)
	}
	if cfg.Active(RegionJet) {
		t.Errorf("Jet should no longer be active")
	}

	// The ICM parameters of the baseline still validate under the
	// narrowed scenario.
	if err := cfg.Validate(); err != nil {
		t.Errorf("Preset config should validate: %v", err)
	}
}
