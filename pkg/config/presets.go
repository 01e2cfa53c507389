package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourcePreset is a cataloged gamma-ray source with its position and
// the propagation chain appropriate for its environment.
type SourcePreset struct {
	Name     string   `yaml:"name"`
	Z        float64  `yaml:"z"`
	RA       float64  `yaml:"ra"`
	Dec      float64  `yaml:"dec"`
	Scenario []Region `yaml:"scenario"`
}

// Catalog holds the source preset catalog.
type Catalog struct {
	Sources  []SourcePreset `yaml:"sources"`
	Selected string         `yaml:"selected,omitempty"`
}

// Lookup returns the preset with the given name.
func (c *Catalog) Lookup(name string) (SourcePreset, bool) {
	for _, s := range c.Sources {
		if s.Name == name {
			return s, true
		}
	}
	return SourcePreset{}, false
}

// LoadCatalog loads the source catalog from the default location,
// ~/.alpsim/sources.yaml.
func LoadCatalog() (*Catalog, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadCatalogFromFile(filepath.Join(homeDir, ".alpsim", "sources.yaml"))
}

// LoadCatalogFromFile loads a source catalog from a specific file. A
// missing file yields the built-in catalog.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse source catalog: %w", err)
	}

	return &catalog, nil
}

// SaveCatalog saves the source catalog to the default location.
func SaveCatalog(catalog *Catalog) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	catalogDir := filepath.Join(homeDir, ".alpsim")
	if err := os.MkdirAll(catalogDir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal source catalog: %w", err)
	}

	path := filepath.Join(catalogDir, "sources.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write source catalog: %w", err)
	}

	return nil
}

// Apply copies the preset's position and scenario onto the config.
// Region parameters are left untouched and must still validate against
// the new scenario.
func (p SourcePreset) Apply(cfg *Config) {
	cfg.Source.Z = p.Z
	cfg.Source.RA = p.RA
	cfg.Source.Dec = p.Dec
	cfg.Mixing.Scenario = append([]Region(nil), p.Scenario...)
}

// defaultCatalog returns the built-in source catalog.
func defaultCatalog() *Catalog {
	return &Catalog{
		Sources: []SourcePreset{
			{
				Name:     "PKS 2155-304",
				Z:        0.116,
				RA:       329.71696,
				Dec:      -30.22558,
				Scenario: []Region{RegionJet, RegionICM, RegionIGM, RegionGMF},
			},
			{
				Name:     "NGC 1275",
				Z:        0.017559,
				RA:       49.950667,
				Dec:      41.511696,
				Scenario: []Region{RegionICM, RegionIGM, RegionGMF},
			},
			{
				Name:     "Mrk 421",
				Z:        0.031,
				RA:       166.113808,
				Dec:      38.208833,
				Scenario: []Region{RegionJet, RegionIGM, RegionGMF},
			},
		},
	}
}
