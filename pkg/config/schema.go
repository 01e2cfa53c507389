package config

// Parameter describes a single recognized configuration key: its type,
// unit, default, bounds, and the region whose presence in the scenario
// makes it relevant.
type Parameter struct {
	Name        string
	Type        string // "float", "integer", "boolean", "string", "list"
	Unit        string
	Description string

	// Default applies when the key is absent. A region-gated parameter
	// with a nil Default is required whenever its region is active.
	Default interface{}

	// Region gates validation; the empty value means the parameter is
	// global and always validated.
	Region Region

	// Bounds for numeric parameters. Constraint carries the canonical
	// spelling used in error messages, e.g. ">=0" or "[0,360)".
	Min          *float64
	MinExclusive bool
	Max          *float64
	MaxExclusive bool
	Constraint   string

	// Options restricts string parameters to a fixed set.
	Options []string
}

func bound(v float64) *float64 { return &v }

func optionsOf[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// Schema lists every recognized configuration key in validation order:
// source position, mixing control, initial polarization, then each
// region in the fixed order Jet, ICM, IGM, GMF. Region parameters are
// only validated when their tag appears in the scenario, but the order
// of checks never depends on the scenario ordering, so the first error
// reported for a given malformed input is always the same.
var Schema = []Parameter{
	// Source
	{Name: "z", Type: "float", Description: "source redshift",
		Default: 0.116, Min: bound(0), Constraint: ">=0"},
	{Name: "ra", Type: "float", Unit: "deg", Description: "right ascension",
		Default: 329.71696, Min: bound(0), Max: bound(360), MaxExclusive: true, Constraint: "[0,360)"},
	{Name: "dec", Type: "float", Unit: "deg", Description: "declination",
		Default: -30.22558, Min: bound(-90), Max: bound(90), Constraint: "[-90,90]"},

	// ALP and simulation control
	{Name: "scenario", Type: "list", Description: "propagation regions, source to observer",
		Default: []string{"Jet", "ICM", "IGM", "GMF"}, Options: optionsOf(Regions)},
	{Name: "g", Type: "float", Unit: "1e-11 GeV^-1", Description: "photon-ALP coupling",
		Default: 5.0, Min: bound(0), MinExclusive: true, Constraint: ">0"},
	{Name: "m", Type: "float", Unit: "neV", Description: "ALP mass",
		Default: 15.0, Min: bound(0), Constraint: ">=0"},
	{Name: "nsim", Type: "integer", Description: "number of random field realizations",
		Default: 100, Min: bound(1), Constraint: ">=1"},

	// Initial polarization
	{Name: "pol_t", Type: "float", Description: "initial polarization along t", Default: 0.5},
	{Name: "pol_u", Type: "float", Description: "initial polarization along u", Default: 0.5},
	{Name: "pol_a", Type: "float", Description: "initial ALP content", Default: 0.0},

	// Jet region
	{Name: "R_BLR", Type: "float", Unit: "pc", Description: "broad-line region radius",
		Region: RegionJet, Min: bound(0), MinExclusive: true, Constraint: ">0"},
	{Name: "njet", Type: "float", Unit: "cm^-3", Description: "jet electron density at R_BLR",
		Region: RegionJet, Min: bound(0), Constraint: ">=0"},
	{Name: "Rmax", Type: "float", Unit: "pc", Description: "jet extent",
		Region: RegionJet, Min: bound(0), MinExclusive: true, Constraint: ">0"},
	{Name: "Bjet", Type: "float", Unit: "G", Description: "jet field strength at R_BLR",
		Region: RegionJet, Min: bound(0), Constraint: ">=0"},
	{Name: "sjet", Type: "float", Description: "jet electron density power-law index",
		Region: RegionJet, Default: 2.0},
	{Name: "pjet", Type: "float", Description: "jet field power-law index",
		Region: RegionJet, Default: 1.0},
	{Name: "Psi", Type: "float", Unit: "rad", Description: "angle between jet field and transversal polarization",
		Region: RegionJet, Default: 0.0, Min: bound(0), Constraint: ">=0"},

	// ICM region
	{Name: "B", Type: "float", Unit: "µG", Description: "cluster central field strength",
		Region: RegionICM, Min: bound(0), Constraint: ">=0"},
	{Name: "n", Type: "float", Unit: "1e-3 cm^-3", Description: "cluster central electron density",
		Region: RegionICM, Min: bound(0), Constraint: ">=0"},
	{Name: "Lcoh", Type: "float", Unit: "kpc", Description: "cluster field coherence length",
		Region: RegionICM, Min: bound(0), MinExclusive: true, Constraint: ">0"},
	{Name: "r_abell", Type: "float", Unit: "kpc", Description: "cluster extent",
		Region: RegionICM, Min: bound(0), Constraint: ">=0"},
	{Name: "r_core", Type: "float", Unit: "kpc", Description: "cluster core radius",
		Region: RegionICM, Min: bound(0), Constraint: ">=0"},
	{Name: "Bn_const", Type: "boolean", Description: "freeze cluster B and n to central values",
		Region: RegionICM, Default: true},
	{Name: "beta", Type: "float", Description: "cluster density profile index",
		Region: RegionICM, Default: 2.0 / 3.0},
	{Name: "eta", Type: "float", Description: "cluster B vs n scaling index",
		Region: RegionICM, Default: 1.0},

	// IGM region
	{Name: "B0", Type: "float", Unit: "nG", Description: "intergalactic field strength today",
		Region: RegionIGM, Min: bound(0), Constraint: ">=0"},
	{Name: "L0", Type: "float", Unit: "Mpc", Description: "intergalactic coherence length",
		Region: RegionIGM, Min: bound(0), MinExclusive: true, Constraint: ">0"},
	{Name: "n0", Type: "float", Unit: "1e-7 cm^-3", Description: "intergalactic electron density today",
		Region: RegionIGM, Min: bound(0), Constraint: ">=0"},
	{Name: "ebl", Type: "string", Description: "EBL attenuation model",
		Region: RegionIGM, Default: string(EBLGilmore), Options: optionsOf(EBLModels)},
	{Name: "ebl_norm", Type: "float", Description: "EBL optical depth normalization",
		Region: RegionIGM, Default: 1.0, Min: bound(0), MinExclusive: true, Constraint: ">0"},

	// GMF region
	{Name: "nGMF", Type: "float", Unit: "1e-3 cm^-3", Description: "Galactic electron density",
		Region: RegionGMF, Min: bound(0), Constraint: ">=0"},
	{Name: "NE2001", Type: "boolean", Description: "use the NE2001 electron density model",
		Region: RegionGMF, Default: false},
	{Name: "model", Type: "string", Description: "Galactic field model",
		Region: RegionGMF, Default: string(GMFJansson), Options: optionsOf(GMFModels)},
	{Name: "model_sym", Type: "string", Description: "pshirkov disk field symmetry",
		Region: RegionGMF, Default: string(SymmetryASS), Options: optionsOf(GMFSymmetries)},
}

// LookupParameter returns the schema entry for a key, if it exists.
func LookupParameter(name string) (Parameter, bool) {
	for _, p := range Schema {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
