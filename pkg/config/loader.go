package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and validates a configuration from a flat YAML
// parameter file. Warnings are returned for the caller to surface.
func LoadFile(path string) (*Config, []Warning, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("parameter file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading parameter file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("error parsing parameter file: %w", err)
	}

	cfg, warnings, err := Load(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, warnings, nil
}

// LoadFileOrDefault loads a parameter file, falling back to the
// conventional search paths and finally the built-in baseline.
// Environment overrides are applied in every case.
func LoadFileOrDefault(path string) (*Config, error) {
	var cfg *Config

	if path != "" {
		loaded, _, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cfg == nil {
		defaultPaths := []string{
			"alpsim.yaml",
			filepath.Join("configs", "alpsim.yaml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				loaded, _, err := LoadFile(p)
				if err == nil {
					cfg = loaded
					break
				}
			}
		}
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}

	MergeWithEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration invalid after environment overrides: %w", err)
	}

	return cfg, nil
}

// SaveFile writes the configuration as a flat YAML parameter file.
func SaveFile(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing parameter file: %w", err)
	}

	return nil
}

// MergeWithOverrides applies CLI parameter overrides. Invalid values
// are ignored; the caller re-validates afterwards.
func MergeWithOverrides(cfg *Config, overrides map[string]interface{}) {
	for key, value := range overrides {
		switch key {
		case "nsim":
			if n, ok := value.(int); ok && n >= 1 {
				cfg.Mixing.NSim = n
			}
		case "g":
			if g, ok := value.(float64); ok && g > 0 {
				cfg.Mixing.G = g
			}
		case "m":
			if m, ok := value.(float64); ok && m >= 0 {
				cfg.Mixing.M = m
			}
		case "ebl":
			if name, ok := value.(string); ok {
				for _, model := range EBLModels {
					if name == string(model) {
						cfg.IGM.EBL = model
						break
					}
				}
			}
		case "model":
			if name, ok := value.(string); ok {
				for _, model := range GMFModels {
					if name == string(model) {
						cfg.GMF.Model = model
						break
					}
				}
			}
		case "scenario":
			if tags, ok := value.([]string); ok {
				if scenario, err := coerceScenario(tags); err == nil {
					cfg.Mixing.Scenario = scenario
				}
			}
		}
	}
}

// MergeWithEnvironment merges the configuration with ALPSIM_* variables.
func MergeWithEnvironment(cfg *Config) {
	if v := os.Getenv("ALPSIM_NSIM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Mixing.NSim = n
		}
	}

	if v := os.Getenv("ALPSIM_G"); v != "" {
		if g, err := strconv.ParseFloat(v, 64); err == nil && g > 0 {
			cfg.Mixing.G = g
		}
	}

	if v := os.Getenv("ALPSIM_M"); v != "" {
		if m, err := strconv.ParseFloat(v, 64); err == nil && m >= 0 {
			cfg.Mixing.M = m
		}
	}

	if v := os.Getenv("ALPSIM_SCENARIO"); v != "" {
		if scenario, err := coerceScenario(strings.Split(v, ",")); err == nil {
			cfg.Mixing.Scenario = scenario
		}
	}

	if v := os.Getenv("ALPSIM_EBL"); v != "" {
		name := strings.ToLower(v)
		for _, model := range EBLModels {
			if name == string(model) {
				cfg.IGM.EBL = model
				break
			}
		}
	}

	if v := os.Getenv("ALPSIM_GMF_MODEL"); v != "" {
		name := strings.ToLower(v)
		for _, model := range GMFModels {
			if name == string(model) {
				cfg.GMF.Model = model
				break
			}
		}
	}

	if v := os.Getenv("ALPSIM_NE2001"); v != "" {
		if enable, err := strconv.ParseBool(v); err == nil {
			cfg.GMF.NE2001 = enable
		}
	}
}
