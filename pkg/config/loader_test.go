package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleParams = `# PKS 2155-304 benchmark
z: 0.116
ra: 329.71696
dec: -30.22558

scenario: [Jet, ICM, IGM, GMF]
g: 5.
m: 15.
nsim: 100

pol_t: 0.5
pol_u: 0.5
pol_a: 0.

R_BLR: 0.3
njet: 1.e+8
Rmax: 1000.
Bjet: 0.01
sjet: 2.
pjet: 1.
Psi: 0.

B: 1.
n: 1.
Lcoh: 10.
r_abell: 500.
r_core: 200.
Bn_const: True
beta: 0.6666666666666666
eta: 1.

B0: 1.
L0: 1.
n0: 1.
ebl: gilmore
ebl_norm: 1.

nGMF: 10.
NE2001: False
model: jansson
model_sym: ASS
`

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write parameter file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeParams(t, sampleParams)

	cfg, warnings, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Failed to load parameter file: %v", err)
	}

	// model_sym with the jansson model is flagged, not rejected.
	if !hasWarning(warnings, "model_sym") {
		t.Errorf("Expected model_sym warning, got %v", warnings)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Parameter file does not reproduce the default config:\ngot  %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := writeParams(t, "z: -0.5\n")

	if _, _, err := LoadFile(path); err == nil {
		t.Errorf("Expected validation error for negative redshift")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	path := filepath.Join(t.TempDir(), "saved", "params.yaml")

	if err := SaveFile(cfg, path); err != nil {
		t.Fatalf("Failed to save parameter file: %v", err)
	}

	reloaded, _, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Failed to reload parameter file: %v", err)
	}

	if !reflect.DeepEqual(cfg, reloaded) {
		t.Errorf("Save/load round trip changed the config:\ngot  %+v\nwant %+v", reloaded, cfg)
	}
}

func TestSaveFileRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mixing.NSim = 0

	if err := SaveFile(cfg, filepath.Join(t.TempDir(), "params.yaml")); err == nil {
		t.Errorf("Expected error saving invalid configuration")
	}
}

func TestLoadFileOrDefault(t *testing.T) {
	cfg, err := LoadFileOrDefault("")
	if err != nil {
		t.Fatalf("Failed to load default configuration: %v", err)
	}

	if cfg.Source.Z != 0.116 {
		t.Errorf("Expected baseline redshift, got %g", cfg.Source.Z)
	}
}

func TestMergeWithEnvironment(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("ALPSIM_NSIM", "500")
	t.Setenv("ALPSIM_G", "2.5")
	t.Setenv("ALPSIM_EBL", "dominguez")
	t.Setenv("ALPSIM_NE2001", "true")

	MergeWithEnvironment(cfg)

	if cfg.Mixing.NSim != 500 {
		t.Errorf("Environment override for ALPSIM_NSIM failed, got %d", cfg.Mixing.NSim)
	}
	if cfg.Mixing.G != 2.5 {
		t.Errorf("Environment override for ALPSIM_G failed, got %g", cfg.Mixing.G)
	}
	if cfg.IGM.EBL != EBLDominguez {
		t.Errorf("Environment override for ALPSIM_EBL failed, got %s", cfg.IGM.EBL)
	}
	if !cfg.GMF.NE2001 {
		t.Errorf("Environment override for ALPSIM_NE2001 failed")
	}
}

func TestMergeWithEnvironmentIgnoresInvalid(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("ALPSIM_NSIM", "0")
	t.Setenv("ALPSIM_EBL", "not_a_model")

	MergeWithEnvironment(cfg)

	if cfg.Mixing.NSim != 100 {
		t.Errorf("Invalid ALPSIM_NSIM should be ignored, got %d", cfg.Mixing.NSim)
	}
	if cfg.IGM.EBL != EBLGilmore {
		t.Errorf("Invalid ALPSIM_EBL should be ignored, got %s", cfg.IGM.EBL)
	}
}

func TestMergeWithOverrides(t *testing.T) {
	cfg := DefaultConfig()

	MergeWithOverrides(cfg, map[string]interface{}{
		"nsim":     250,
		"g":        1.5,
		"ebl":      "franceschini",
		"model":    "pshirkov",
		"scenario": []string{"ICM", "GMF"},
	})

	if cfg.Mixing.NSim != 250 {
		t.Errorf("Expected nsim 250, got %d", cfg.Mixing.NSim)
	}
	if cfg.Mixing.G != 1.5 {
		t.Errorf("Expected coupling 1.5, got %g", cfg.Mixing.G)
	}
	if cfg.IGM.EBL != EBLFranceschini {
		t.Errorf("Expected ebl franceschini, got %s", cfg.IGM.EBL)
	}
	if cfg.GMF.Model != GMFPshirkov {
		t.Errorf("Expected model pshirkov, got %s", cfg.GMF.Model)
	}

	want := []Region{RegionICM, RegionGMF}
	if !reflect.DeepEqual(cfg.Mixing.Scenario, want) {
		t.Errorf("Expected scenario %v, got %v", want, cfg.Mixing.Scenario)
	}
}
