package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/astroparticle/alpsim/pkg/config"
	"github.com/astroparticle/alpsim/pkg/engine"
	"github.com/astroparticle/alpsim/pkg/logger"

	// Import engines to register them
	_ "github.com/astroparticle/alpsim/cmd/plan"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a mixing engine",
	Long:  `Load and validate a configuration, then hand it to a mixing engine`,
	RunE:  runEngine,
}

var (
	runParams   string
	runEngineID string
	runPreset   string
	runNSim     int
	runCoupling float64
	runMass     float64
	runEBL      string
)

func init() {
	runCmd.Flags().StringVarP(&runParams, "params", "p", "", "parameter file (flat YAML)")
	runCmd.Flags().StringVarP(&runEngineID, "engine", "e", "", "engine to run")
	runCmd.Flags().StringVar(&runPreset, "source", "", "source preset to apply (see 'alpsim sources')")
	runCmd.Flags().IntVar(&runNSim, "nsim", 0, "override the number of realizations")
	runCmd.Flags().Float64Var(&runCoupling, "coupling", 0, "override the photon-ALP coupling (1e-11 GeV^-1)")
	runCmd.Flags().Float64Var(&runMass, "mass", -1, "override the ALP mass (neV)")
	runCmd.Flags().StringVar(&runEBL, "ebl", "", "override the EBL model")
}

func runEngine(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFileOrDefault(runParams)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if runPreset != "" {
		catalog, err := config.LoadCatalog()
		if err != nil {
			return fmt.Errorf("failed to load source catalog: %w", err)
		}
		preset, ok := catalog.Lookup(runPreset)
		if !ok {
			return fmt.Errorf("source preset %q not found", runPreset)
		}
		preset.Apply(cfg)
		logger.Infof("Applied source preset %s (z=%g)", preset.Name, preset.Z)
	}

	overrides := map[string]interface{}{}
	if runNSim > 0 {
		overrides["nsim"] = runNSim
	}
	if runCoupling > 0 {
		overrides["g"] = runCoupling
	}
	if runMass >= 0 {
		overrides["m"] = runMass
	}
	if runEBL != "" {
		overrides["ebl"] = runEBL
	}
	config.MergeWithOverrides(cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid after overrides: %w", err)
	}

	name, err := selectEngine()
	if err != nil {
		return fmt.Errorf("failed to select engine: %w", err)
	}

	eng, err := engine.DefaultRegistry.Get(name)
	if err != nil {
		return fmt.Errorf("failed to get engine: %w", err)
	}

	if err := eng.Configure(cfg); err != nil {
		return fmt.Errorf("failed to configure engine: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Warn("\nReceived interrupt signal, stopping engine...")
		if err := eng.Stop(); err != nil {
			logger.Errorf("Failed to stop engine: %v", err)
			return
		}
		cancel()
	}()

	logger.Section(fmt.Sprintf("Starting %s", eng.Name()))
	if err := eng.Run(ctx); err != nil {
		return fmt.Errorf("engine failed: %w", err)
	}

	logger.Success("Engine completed successfully")
	return nil
}

func selectEngine() (string, error) {
	if runEngineID != "" {
		return runEngineID, nil
	}

	names := engine.DefaultRegistry.List()
	switch len(names) {
	case 0:
		return "", fmt.Errorf("no engines registered")
	case 1:
		return names[0], nil
	}

	var name string
	prompt := &survey.Select{
		Message: "Select an engine:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		return "", err
	}
	return name, nil
}
