package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astroparticle/alpsim/pkg/config"
	"github.com/astroparticle/alpsim/pkg/logger"
	"github.com/astroparticle/alpsim/pkg/utils"
)

var initCmd = &cobra.Command{
	Use:   "init [output-file]",
	Short: "Interactively author a parameter file",
	Long: `Walk through the configuration schema, prompting for every
parameter relevant to the chosen scenario, and write the result as a
flat YAML parameter file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: initParams,
}

func initParams(cmd *cobra.Command, args []string) error {
	output := "alpsim.yaml"
	if len(args) == 1 {
		output = args[0]
	}

	raw, err := utils.PromptForRawConfig()
	if err != nil {
		return fmt.Errorf("failed to collect parameters: %w", err)
	}

	cfg, warnings, err := config.Load(raw)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, w := range warnings {
		logger.Warnf("%s", w)
	}

	if err := config.SaveFile(cfg, output); err != nil {
		return fmt.Errorf("failed to write parameter file: %w", err)
	}

	logger.Successf("Wrote %s", output)
	return nil
}
