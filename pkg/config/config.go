package config

import (
	"fmt"
	"strings"
)

// Region identifies one of the magnetized environments a photon beam
// traverses between the source and the observer.
type Region string

// Supported propagation regions
const (
	RegionJet Region = "Jet" // AGN jet, from the broad-line region outwards
	RegionICM Region = "ICM" // intracluster medium
	RegionIGM Region = "IGM" // intergalactic medium
	RegionGMF Region = "GMF" // Galactic magnetic field
)

// Regions lists all valid scenario tags in canonical validation order.
var Regions = []Region{RegionJet, RegionICM, RegionIGM, RegionGMF}

// EBLModel selects the extragalactic background light model used for
// optical-depth attenuation in the IGM.
type EBLModel string

// Supported EBL models
const (
	EBLGilmore      EBLModel = "gilmore"
	EBLKneiske      EBLModel = "kneiske"
	EBLFranceschini EBLModel = "franceschini"
	EBLDominguez    EBLModel = "dominguez"
	EBLInoue        EBLModel = "inoue"
)

// EBLModels lists all valid EBL model names.
var EBLModels = []EBLModel{EBLGilmore, EBLKneiske, EBLFranceschini, EBLDominguez, EBLInoue}

// GMFModel selects the large-scale Galactic magnetic field model.
type GMFModel string

// Supported Galactic field models
const (
	GMFJansson  GMFModel = "jansson"
	GMFPshirkov GMFModel = "pshirkov"
)

// GMFModels lists all valid Galactic field model names.
var GMFModels = []GMFModel{GMFJansson, GMFPshirkov}

// GMFSymmetry selects the disk field symmetry of the pshirkov model.
// It is ignored when the jansson model is selected.
type GMFSymmetry string

// Supported pshirkov disk symmetries
const (
	SymmetryASS GMFSymmetry = "ASS" // axisymmetric spiral
	SymmetryBSS GMFSymmetry = "BSS" // bisymmetric spiral
)

// GMFSymmetries lists all valid pshirkov symmetry modes.
var GMFSymmetries = []GMFSymmetry{SymmetryASS, SymmetryBSS}

// Source holds the sky position and distance of the gamma-ray source.
type Source struct {
	Z   float64 `yaml:"z"`   // redshift
	RA  float64 `yaml:"ra"`  // right ascension, degrees [0,360)
	Dec float64 `yaml:"dec"` // declination, degrees [-90,90]
}

// Mixing holds the ALP parameters and simulation control settings.
type Mixing struct {
	Scenario []Region `yaml:"scenario"` // propagation order, source to observer
	G        float64  `yaml:"g"`        // photon-ALP coupling, 1e-11 GeV^-1
	M        float64  `yaml:"m"`        // ALP mass, neV
	NSim     int      `yaml:"nsim"`     // number of random field realizations
}

// Polarization holds the initial polarization state of the beam as a
// Stokes-like decomposition. The three components are expected to sum
// to one for a normalized beam; deviations are flagged, not rejected.
type Polarization struct {
	PolT float64 `yaml:"pol_t"`
	PolU float64 `yaml:"pol_u"`
	PolA float64 `yaml:"pol_a"` // initial ALP content
}

// Jet describes the magnetized AGN jet, parameterized at the radius of
// the broad-line region. Field and density fall off as power laws,
// B(r) = Bjet (r/R_BLR)^-pjet and n(r) = njet (r/R_BLR)^-sjet.
type Jet struct {
	RBLR float64 `yaml:"R_BLR"` // radius of the broad-line region, pc
	NJet float64 `yaml:"njet"`  // electron density at R_BLR, cm^-3
	RMax float64 `yaml:"Rmax"`  // extent of the jet, pc
	BJet float64 `yaml:"Bjet"`  // field strength at R_BLR, Gauss
	SJet float64 `yaml:"sjet"`  // electron density power-law index
	PJet float64 `yaml:"pjet"`  // field power-law index (1 toroidal, 2 poloidal)
	Psi  float64 `yaml:"Psi"`   // angle between B and transversal polarization, radians
}

// ICM describes the intracluster medium with a cell-like turbulent
// field of coherence length Lcoh inside the Abell radius.
type ICM struct {
	B       float64 `yaml:"B"`        // central field strength, µG
	N       float64 `yaml:"n"`        // central electron density, 1e-3 cm^-3
	LCoh    float64 `yaml:"Lcoh"`     // field coherence length, kpc
	RAbell  float64 `yaml:"r_abell"`  // cluster extent, kpc
	RCore   float64 `yaml:"r_core"`   // beta-profile core radius, kpc
	BnConst bool    `yaml:"Bn_const"` // freeze B and n to their central values
	Beta    float64 `yaml:"beta"`     // electron density profile index
	Eta     float64 `yaml:"eta"`      // B(r) vs n(r) scaling index
}

// IGM describes the intergalactic medium between the cluster and the
// Milky Way as domains of length L0 with randomly oriented fields.
type IGM struct {
	B0      float64  `yaml:"B0"`       // field strength today, nG
	L0      float64  `yaml:"L0"`       // domain coherence length, Mpc
	N0      float64  `yaml:"n0"`       // electron density today, 1e-7 cm^-3
	EBL     EBLModel `yaml:"ebl"`      // EBL attenuation model
	EBLNorm float64  `yaml:"ebl_norm"` // optical depth normalization
}

// GMF describes the Galactic magnetic field traversed last.
type GMF struct {
	NGMF     float64     `yaml:"nGMF"`      // electron density, 1e-3 cm^-3
	NE2001   bool        `yaml:"NE2001"`    // use the NE2001 density model instead of nGMF
	Model    GMFModel    `yaml:"model"`     // large-scale field model
	ModelSym GMFSymmetry `yaml:"model_sym"` // pshirkov disk symmetry, ignored for jansson
}

// Config is the validated, fully defaulted configuration handed to the
// mixing engine. It is constructed once by Load and never mutated
// mid-run; sharing it read-only across workers is safe.
//
// The persisted layout is a single flat mapping, which the inline tags
// reproduce when a Config is marshaled back to YAML.
type Config struct {
	Source       Source       `yaml:",inline"`
	Mixing       Mixing       `yaml:",inline"`
	Polarization Polarization `yaml:",inline"`
	Jet          Jet          `yaml:",inline"`
	ICM          ICM          `yaml:",inline"`
	IGM          IGM          `yaml:",inline"`
	GMF          GMF          `yaml:",inline"`
}

// Active reports whether the given region appears in the scenario.
func (c *Config) Active(r Region) bool {
	for _, tag := range c.Mixing.Scenario {
		if tag == r {
			return true
		}
	}
	return false
}

// Raw flattens the configuration back into the raw key-value mapping
// accepted by Load. Scenario tags are rendered as plain strings.
func (c *Config) Raw() map[string]interface{} {
	scenario := make([]interface{}, len(c.Mixing.Scenario))
	for i, r := range c.Mixing.Scenario {
		scenario[i] = string(r)
	}

	return map[string]interface{}{
		"z":         c.Source.Z,
		"ra":        c.Source.RA,
		"dec":       c.Source.Dec,
		"scenario":  scenario,
		"g":         c.Mixing.G,
		"m":         c.Mixing.M,
		"nsim":      c.Mixing.NSim,
		"pol_t":     c.Polarization.PolT,
		"pol_u":     c.Polarization.PolU,
		"pol_a":     c.Polarization.PolA,
		"R_BLR":     c.Jet.RBLR,
		"njet":      c.Jet.NJet,
		"Rmax":      c.Jet.RMax,
		"Bjet":      c.Jet.BJet,
		"sjet":      c.Jet.SJet,
		"pjet":      c.Jet.PJet,
		"Psi":       c.Jet.Psi,
		"B":         c.ICM.B,
		"n":         c.ICM.N,
		"Lcoh":      c.ICM.LCoh,
		"r_abell":   c.ICM.RAbell,
		"r_core":    c.ICM.RCore,
		"Bn_const":  c.ICM.BnConst,
		"beta":      c.ICM.Beta,
		"eta":       c.ICM.Eta,
		"B0":        c.IGM.B0,
		"L0":        c.IGM.L0,
		"n0":        c.IGM.N0,
		"ebl":       string(c.IGM.EBL),
		"ebl_norm":  c.IGM.EBLNorm,
		"nGMF":      c.GMF.NGMF,
		"NE2001":    c.GMF.NE2001,
		"model":     string(c.GMF.Model),
		"model_sym": string(c.GMF.ModelSym),
	}
}

// Validate re-runs the full schema validation against the current
// values. It is used after override merging; warnings are discarded.
func (c *Config) Validate() error {
	_, _, err := Load(c.Raw())
	return err
}

// String returns a human-readable summary of the configuration.
func (c *Config) String() string {
	tags := make([]string, len(c.Mixing.Scenario))
	for i, r := range c.Mixing.Scenario {
		tags[i] = string(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Photon-ALP Mixing Configuration:
  Source: z=%g ra=%g dec=%g
  Scenario: %s
  Coupling: %g x 1e-11 GeV^-1
  ALP Mass: %g neV
  Realizations: %d
  Polarization: t=%g u=%g a=%g`,
		c.Source.Z, c.Source.RA, c.Source.Dec,
		strings.Join(tags, " -> "),
		c.Mixing.G, c.Mixing.M, c.Mixing.NSim,
		c.Polarization.PolT, c.Polarization.PolU, c.Polarization.PolA)

	if c.Active(RegionJet) {
		fmt.Fprintf(&b, `

Jet:
  R_BLR: %g pc
  Extent: %g pc
  B(R_BLR): %g G  (index %g)
  n(R_BLR): %g cm^-3  (index %g)
  Psi: %g rad`,
			c.Jet.RBLR, c.Jet.RMax, c.Jet.BJet, c.Jet.PJet, c.Jet.NJet, c.Jet.SJet, c.Jet.Psi)
	}

	if c.Active(RegionICM) {
		fmt.Fprintf(&b, `

ICM:
  B: %g µG
  n: %g x 1e-3 cm^-3
  Coherence Length: %g kpc
  Abell Radius: %g kpc
  Core Radius: %g kpc
  Constant B,n: %t  (beta %g, eta %g)`,
			c.ICM.B, c.ICM.N, c.ICM.LCoh, c.ICM.RAbell, c.ICM.RCore, c.ICM.BnConst, c.ICM.Beta, c.ICM.Eta)
	}

	if c.Active(RegionIGM) {
		fmt.Fprintf(&b, `

IGM:
  B0: %g nG
  L0: %g Mpc
  n0: %g x 1e-7 cm^-3
  EBL Model: %s  (norm %g)`,
			c.IGM.B0, c.IGM.L0, c.IGM.N0, c.IGM.EBL, c.IGM.EBLNorm)
	}

	if c.Active(RegionGMF) {
		fmt.Fprintf(&b, `

GMF:
  Model: %s (%s)
  n: %g x 1e-3 cm^-3
  NE2001: %t`,
			c.GMF.Model, c.GMF.ModelSym, c.GMF.NGMF, c.GMF.NE2001)
	}

	return b.String()
}

// DefaultConfig returns the canonical baseline configuration, the
// PKS 2155-304 four-region benchmark.
func DefaultConfig() *Config {
	return &Config{
		Source: Source{
			Z:   0.116,
			RA:  329.71696,
			Dec: -30.22558,
		},

		Mixing: Mixing{
			Scenario: []Region{RegionJet, RegionICM, RegionIGM, RegionGMF},
			G:        5.0,
			M:        15.0,
			NSim:     100,
		},

		Polarization: Polarization{
			PolT: 0.5,
			PolU: 0.5,
			PolA: 0.0,
		},

		Jet: Jet{
			RBLR: 0.3,
			NJet: 1e8,
			RMax: 1000.0,
			BJet: 0.01,
			SJet: 2.0,
			PJet: 1.0,
			Psi:  0.0,
		},

		ICM: ICM{
			B:       1.0,
			N:       1.0,
			LCoh:    10.0,
			RAbell:  500.0,
			RCore:   200.0,
			BnConst: true,
			Beta:    2.0 / 3.0,
			Eta:     1.0,
		},

		IGM: IGM{
			B0:      1.0,
			L0:      1.0,
			N0:      1.0,
			EBL:     EBLGilmore,
			EBLNorm: 1.0,
		},

		GMF: GMF{
			NGMF:     10.0,
			NE2001:   false,
			Model:    GMFJansson,
			ModelSym: SymmetryASS,
		},
	}
}
