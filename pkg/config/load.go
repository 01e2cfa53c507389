package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// polarizationTolerance bounds how far pol_t+pol_u+pol_a may drift from
// one before the decomposition is flagged as unnormalized.
const polarizationTolerance = 1e-9

// Load validates a raw key-value mapping against the schema and builds
// the typed configuration. It is a pure single-pass transform: no I/O,
// no shared state, and a deterministic first error for any given input.
//
// Keys are optional wherever a default exists; region-gated keys
// without defaults are required exactly when their region appears in
// the scenario. Unknown keys, an unnormalized polarization state, and
// an ignored model_sym are reported as warnings alongside the Config.
func Load(raw map[string]interface{}) (*Config, []Warning, error) {
	var warnings []Warning

	for _, key := range unknownKeys(raw) {
		warnings = append(warnings, Warning{Field: key, Message: "unknown key ignored"})
	}

	cfg := &Config{}
	active := map[Region]bool{}

	for _, param := range Schema {
		value, present := raw[param.Name]

		if param.Name == "scenario" {
			if !present {
				value = param.Default
			}
			scenario, err := coerceScenario(value)
			if err != nil {
				return nil, nil, err
			}
			cfg.Mixing.Scenario = scenario
			for _, r := range scenario {
				active[r] = true
			}
			continue
		}

		// Region parameters are only validated when their region is
		// part of the scenario; a supplied value for an inactive
		// region is left untouched at its default.
		if param.Region != "" && !active[param.Region] {
			if param.Default != nil {
				if err := assign(cfg, param, param.Default); err != nil {
					return nil, nil, err
				}
			}
			continue
		}

		if !present {
			if param.Default == nil {
				return nil, nil, &MissingFieldError{Field: param.Name}
			}
			value = param.Default
		}

		if err := checkAndAssign(cfg, param, value); err != nil {
			return nil, nil, err
		}
	}

	if active[RegionJet] && cfg.Jet.RMax < cfg.Jet.RBLR {
		return nil, nil, &RangeError{Field: "Rmax", Value: cfg.Jet.RMax, Constraint: ">=R_BLR"}
	}

	sum := cfg.Polarization.PolT + cfg.Polarization.PolU + cfg.Polarization.PolA
	if math.Abs(sum-1.0) > polarizationTolerance {
		warnings = append(warnings, Warning{
			Field:   "pol_t",
			Message: fmt.Sprintf("polarization components sum to %g, expected 1", sum),
		})
	}

	if _, given := raw["model_sym"]; given && active[RegionGMF] && cfg.GMF.Model != GMFPshirkov {
		warnings = append(warnings, Warning{
			Field:   "model_sym",
			Message: fmt.Sprintf("ignored: only meaningful for the %s model", GMFPshirkov),
		})
	}

	return cfg, warnings, nil
}

func unknownKeys(raw map[string]interface{}) []string {
	var keys []string
	for key := range raw {
		if _, ok := LookupParameter(key); !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// checkAndAssign coerces a value to the parameter's declared type,
// enforces its bounds and enum set, and stores it on the Config.
func checkAndAssign(cfg *Config, param Parameter, value interface{}) error {
	switch param.Type {
	case "float":
		f, err := coerceFloat(param.Name, value)
		if err != nil {
			return err
		}
		if err := checkBounds(param, f); err != nil {
			return err
		}
		return assign(cfg, param, f)

	case "integer":
		i, err := coerceInt(param.Name, value)
		if err != nil {
			return err
		}
		if err := checkBounds(param, float64(i)); err != nil {
			return err
		}
		return assign(cfg, param, i)

	case "boolean":
		b, err := coerceBool(param.Name, value)
		if err != nil {
			return err
		}
		return assign(cfg, param, b)

	case "string":
		s, err := coerceString(param.Name, value)
		if err != nil {
			return err
		}
		if len(param.Options) > 0 && !contains(param.Options, s) {
			return &EnumError{Field: param.Name, Value: s, Allowed: param.Options}
		}
		return assign(cfg, param, s)

	default:
		return fmt.Errorf("schema defines unsupported type %q for %s", param.Type, param.Name)
	}
}

func checkBounds(param Parameter, v float64) error {
	if param.Min != nil {
		if v < *param.Min || (param.MinExclusive && v == *param.Min) {
			return &RangeError{Field: param.Name, Value: trim(v), Constraint: param.Constraint}
		}
	}
	if param.Max != nil {
		if v > *param.Max || (param.MaxExclusive && v == *param.Max) {
			return &RangeError{Field: param.Name, Value: trim(v), Constraint: param.Constraint}
		}
	}
	return nil
}

// trim renders an integral float as an int so error messages read
// "nsim: value 0" rather than "value 0.000000".
func trim(v float64) interface{} {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return int(v)
	}
	return v
}

func coerceFloat(field string, v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, &TypeError{Field: field, Expected: "float", Actual: v}
	}
}

func coerceInt(field string, v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		// Tolerate the source convention of trailing dots (100.) but
		// never round: a fractional count is a type error.
		if val == math.Trunc(val) {
			return int(val), nil
		}
		return 0, &TypeError{Field: field, Expected: "integer", Actual: v}
	default:
		return 0, &TypeError{Field: field, Expected: "integer", Actual: v}
	}
}

func coerceBool(field string, v interface{}) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		// Capitalized True/False survives quoting in the source format.
		if b, err := strconv.ParseBool(val); err == nil {
			return b, nil
		}
		return false, &TypeError{Field: field, Expected: "boolean", Actual: v}
	default:
		return false, &TypeError{Field: field, Expected: "boolean", Actual: v}
	}
}

func coerceString(field string, v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", &TypeError{Field: field, Expected: "string", Actual: v}
}

func coerceScenario(v interface{}) ([]Region, error) {
	var tags []string
	switch val := v.(type) {
	case []string:
		tags = val
	case []Region:
		for _, r := range val {
			tags = append(tags, string(r))
		}
	case []interface{}:
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Field: "scenario", Expected: "list of region tags", Actual: item}
			}
			tags = append(tags, s)
		}
	default:
		return nil, &TypeError{Field: "scenario", Expected: "list of region tags", Actual: v}
	}

	if len(tags) == 0 {
		return nil, &RangeError{Field: "scenario", Value: tags, Constraint: "non-empty"}
	}

	allowed, _ := LookupParameter("scenario")
	scenario := make([]Region, len(tags))
	for i, tag := range tags {
		if !contains(allowed.Options, tag) {
			return nil, &EnumError{Field: "scenario", Value: tag, Allowed: allowed.Options}
		}
		scenario[i] = Region(tag)
	}
	return scenario, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// assign stores a coerced value on its Config field.
func assign(cfg *Config, param Parameter, value interface{}) error {
	switch param.Name {
	case "z":
		cfg.Source.Z = value.(float64)
	case "ra":
		cfg.Source.RA = value.(float64)
	case "dec":
		cfg.Source.Dec = value.(float64)
	case "g":
		cfg.Mixing.G = value.(float64)
	case "m":
		cfg.Mixing.M = value.(float64)
	case "nsim":
		cfg.Mixing.NSim = value.(int)
	case "pol_t":
		cfg.Polarization.PolT = value.(float64)
	case "pol_u":
		cfg.Polarization.PolU = value.(float64)
	case "pol_a":
		cfg.Polarization.PolA = value.(float64)
	case "R_BLR":
		cfg.Jet.RBLR = value.(float64)
	case "njet":
		cfg.Jet.NJet = value.(float64)
	case "Rmax":
		cfg.Jet.RMax = value.(float64)
	case "Bjet":
		cfg.Jet.BJet = value.(float64)
	case "sjet":
		cfg.Jet.SJet = value.(float64)
	case "pjet":
		cfg.Jet.PJet = value.(float64)
	case "Psi":
		cfg.Jet.Psi = value.(float64)
	case "B":
		cfg.ICM.B = value.(float64)
	case "n":
		cfg.ICM.N = value.(float64)
	case "Lcoh":
		cfg.ICM.LCoh = value.(float64)
	case "r_abell":
		cfg.ICM.RAbell = value.(float64)
	case "r_core":
		cfg.ICM.RCore = value.(float64)
	case "Bn_const":
		cfg.ICM.BnConst = value.(bool)
	case "beta":
		cfg.ICM.Beta = value.(float64)
	case "eta":
		cfg.ICM.Eta = value.(float64)
	case "B0":
		cfg.IGM.B0 = value.(float64)
	case "L0":
		cfg.IGM.L0 = value.(float64)
	case "n0":
		cfg.IGM.N0 = value.(float64)
	case "ebl":
		cfg.IGM.EBL = EBLModel(value.(string))
	case "ebl_norm":
		cfg.IGM.EBLNorm = value.(float64)
	case "nGMF":
		cfg.GMF.NGMF = value.(float64)
	case "NE2001":
		cfg.GMF.NE2001 = value.(bool)
	case "model":
		cfg.GMF.Model = GMFModel(value.(string))
	case "model_sym":
		cfg.GMF.ModelSym = GMFSymmetry(value.(string))
	default:
		return fmt.Errorf("schema key %s has no config field", param.Name)
	}
	return nil
}
