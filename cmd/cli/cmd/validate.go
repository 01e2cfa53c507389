package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astroparticle/alpsim/pkg/config"
	"github.com/astroparticle/alpsim/pkg/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate <parameter-file>",
	Short: "Validate a parameter file",
	Long: `Validate a flat YAML parameter file against the configuration
schema, reporting the first error or any non-fatal findings.`,
	Args: cobra.ExactArgs(1),
	RunE: validateConfig,
}

var validateQuiet bool

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "suppress the configuration summary")
}

func validateConfig(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, warnings, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	for _, w := range warnings {
		logger.Warnf("%s", w)
	}

	if !validateQuiet {
		fmt.Println(cfg)
		fmt.Println()
	}

	logger.Successf("%s is a valid configuration (%d warnings)", path, len(warnings))
	return nil
}
