package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/astroparticle/alpsim/pkg/config"
)

// PromptForRawConfig walks the configuration schema and prompts for
// every parameter relevant to the chosen scenario, returning the raw
// mapping to hand to config.Load. Environment variables of the form
// ALPSIM_<KEY> pre-seed the prompt defaults; with ALPSIM_SKIP_PROMPTS
// set, they replace the prompts entirely.
func PromptForRawConfig() (map[string]interface{}, error) {
	raw := make(map[string]interface{})

	scenario, err := promptScenario()
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}
	raw["scenario"] = scenario

	active := make(map[config.Region]bool)
	for _, tag := range scenario {
		active[config.Region(tag)] = true
	}

	for _, param := range config.Schema {
		if param.Name == "scenario" {
			continue
		}
		if param.Region != "" && !active[param.Region] {
			continue
		}

		value, err := promptForParameter(param)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", param.Name, err)
		}
		raw[param.Name] = value
	}

	return raw, nil
}

func promptScenario() ([]string, error) {
	param, _ := config.LookupParameter("scenario")

	defaultTags := strings.Join(param.Default.([]string), ",")
	if envValue := os.Getenv("ALPSIM_SCENARIO"); envValue != "" {
		defaultTags = envValue
	}

	if os.Getenv("ALPSIM_SKIP_PROMPTS") == "true" {
		return splitTags(defaultTags), nil
	}

	prompt := &survey.Input{
		Message: "Propagation regions, source to observer (comma-separated)",
		Default: defaultTags,
		Help:    "Valid tags: " + strings.Join(param.Options, ", "),
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	return splitTags(result), nil
}

func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// promptForParameter prompts for a single parameter
func promptForParameter(param config.Parameter) (interface{}, error) {
	envKey := "ALPSIM_" + strings.ToUpper(param.Name)
	if envValue := os.Getenv(envKey); envValue != "" {
		parsed, err := parseEnvValue(envValue, param)
		if err == nil {
			param.Default = parsed
		}
	}

	if os.Getenv("ALPSIM_SKIP_PROMPTS") == "true" {
		if param.Default != nil {
			return param.Default, nil
		}
		return nil, fmt.Errorf("required parameter %s not provided and no default available", param.Name)
	}

	switch param.Type {
	case "integer":
		return promptInteger(param)
	case "float":
		return promptFloat(param)
	case "string":
		return promptString(param)
	case "boolean":
		return promptBoolean(param)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", param.Type)
	}
}

// parseEnvValue parses an environment variable value according to the parameter type
func parseEnvValue(value string, param config.Parameter) (interface{}, error) {
	switch param.Type {
	case "integer":
		return strconv.Atoi(value)
	case "float":
		return strconv.ParseFloat(value, 64)
	case "string":
		return value, nil
	case "boolean":
		return strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", param.Type)
	}
}

func message(param config.Parameter) string {
	if param.Unit != "" {
		return fmt.Sprintf("%s (%s)", param.Description, param.Unit)
	}
	return param.Description
}

func promptInteger(param config.Parameter) (int, error) {
	defaultStr := ""
	if param.Default != nil {
		switch v := param.Default.(type) {
		case int:
			defaultStr = strconv.Itoa(v)
		case float64:
			defaultStr = strconv.Itoa(int(v))
		}
	}

	prompt := &survey.Input{
		Message: message(param),
		Default: defaultStr,
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(result)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return value, nil
}

func promptFloat(param config.Parameter) (float64, error) {
	defaultStr := ""
	if param.Default != nil {
		defaultStr = fmt.Sprintf("%v", param.Default)
	}

	prompt := &survey.Input{
		Message: message(param),
		Default: defaultStr,
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	return value, nil
}

func promptString(param config.Parameter) (string, error) {
	defaultStr := ""
	if param.Default != nil {
		defaultStr = fmt.Sprintf("%v", param.Default)
	}

	// Enum parameters get a select prompt
	if len(param.Options) > 0 {
		prompt := &survey.Select{
			Message: message(param),
			Options: param.Options,
			Default: defaultStr,
		}

		var result string
		if err := survey.AskOne(prompt, &result); err != nil {
			return "", err
		}
		return result, nil
	}

	prompt := &survey.Input{
		Message: message(param),
		Default: defaultStr,
	}

	var result string
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}

	return result, nil
}

func promptBoolean(param config.Parameter) (bool, error) {
	defaultBool := false
	if param.Default != nil {
		if v, ok := param.Default.(bool); ok {
			defaultBool = v
		}
	}

	prompt := &survey.Confirm{
		Message: message(param),
		Default: defaultBool,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}

	return result, nil
}
