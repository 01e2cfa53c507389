package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config validation failed: %v", err)
	}

	if cfg.Source.Z != 0.116 {
		t.Errorf("Expected default redshift 0.116, got %g", cfg.Source.Z)
	}
	if cfg.Mixing.G != 5.0 {
		t.Errorf("Expected default coupling 5.0, got %g", cfg.Mixing.G)
	}
	if cfg.Mixing.NSim != 100 {
		t.Errorf("Expected default nsim 100, got %d", cfg.Mixing.NSim)
	}

	want := []Region{RegionJet, RegionICM, RegionIGM, RegionGMF}
	if !reflect.DeepEqual(cfg.Mixing.Scenario, want) {
		t.Errorf("Expected default scenario %v, got %v", want, cfg.Mixing.Scenario)
	}
}

func TestRawRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	reloaded, _, err := Load(cfg.Raw())
	if err != nil {
		t.Fatalf("Failed to reload flattened config: %v", err)
	}

	if !reflect.DeepEqual(cfg, reloaded) {
		t.Errorf("Raw round trip changed the config:\ngot  %+v\nwant %+v", reloaded, cfg)
	}
}

func TestValidateAfterOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mixing.NSim = 0

	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected validation error for nsim 0")
	}

	cfg.Mixing.NSim = 50
	if err := cfg.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestActive(t *testing.T) {
	cfg := &Config{Mixing: Mixing{Scenario: []Region{RegionICM, RegionGMF}}}

	if cfg.Active(RegionJet) {
		t.Errorf("Jet should not be active")
	}
	if !cfg.Active(RegionICM) || !cfg.Active(RegionGMF) {
		t.Errorf("ICM and GMF should be active")
	}
}

func TestStringOmitsInactiveRegions(t *testing.T) {
	raw := map[string]interface{}{
		"scenario": []interface{}{"IGM"},
		"B0":       1.0,
		"L0":       1.0,
		"n0":       1.0,
	}
	cfg, _, err := Load(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	summary := cfg.String()
	if !strings.Contains(summary, "IGM:") {
		t.Errorf("Summary should describe the IGM section:\n%s", summary)
	}
	if strings.Contains(summary, "Jet:") || strings.Contains(summary, "GMF:") {
		t.Errorf("Summary should omit inactive regions:\n%s", summary)
	}
}

func TestLookupParameter(t *testing.T) {
	param, ok := LookupParameter("Bjet")
	if !ok {
		t.Fatalf("Bjet should be a recognized parameter")
	}
	if param.Region != RegionJet {
		t.Errorf("Bjet should be gated on the Jet region")
	}
	if param.Default != nil {
		t.Errorf("Bjet should be required when the Jet region is active")
	}

	if _, ok := LookupParameter("no_such_key"); ok {
		t.Errorf("no_such_key should not be recognized")
	}
}

func TestSchemaCoversAllConfigKeys(t *testing.T) {
	raw := DefaultConfig().Raw()
	if len(raw) != len(Schema) {
		t.Fatalf("Raw mapping has %d keys, schema has %d", len(raw), len(Schema))
	}
	for _, param := range Schema {
		if _, ok := raw[param.Name]; !ok {
			t.Errorf("Schema key %s has no flattened value", param.Name)
		}
	}
}
