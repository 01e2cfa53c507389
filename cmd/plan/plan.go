// Package plan provides the propagation-plan engine: it echoes the
// validated traversal a mixing engine would perform, realization by
// realization, without computing any physics. It doubles as a smoke
// test for the configuration handoff.
package plan

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/astroparticle/alpsim/pkg/config"
	"github.com/astroparticle/alpsim/pkg/engine"
	"github.com/astroparticle/alpsim/pkg/logger"
)

// Engine implements engine.Engine by reporting the propagation plan.
type Engine struct {
	cfg      *config.Config
	mu       sync.Mutex
	stopOnce sync.Once
	stopChan chan struct{}
}

// New creates a new plan engine instance
func New() engine.Engine {
	return &Engine{
		stopChan: make(chan struct{}),
	}
}

// Name returns the engine name
func (e *Engine) Name() string {
	return "Propagation Plan"
}

// Describe returns the engine description
func (e *Engine) Describe() string {
	return "Echoes the region traversal and realization schedule without running any physics"
}

// Configure stores the validated configuration
func (e *Engine) Configure(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("no configuration provided")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	e.mu.Lock()
	e.cfg = cfg
	e.mu.Unlock()
	return nil
}

// Run reports the propagation plan and enumerates the realizations
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	cfg := e.cfg
	e.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("engine not configured")
	}

	runID := uuid.New()
	log := logger.WithField("run", runID.String()[:8])

	logger.Section(fmt.Sprintf("Propagation plan for z=%g (ra=%g, dec=%g)", cfg.Source.Z, cfg.Source.RA, cfg.Source.Dec))
	log.Infof("Coupling g=%g x 1e-11 GeV^-1, mass m=%g neV", cfg.Mixing.G, cfg.Mixing.M)
	log.Infof("Initial polarization: t=%g u=%g a=%g", cfg.Polarization.PolT, cfg.Polarization.PolU, cfg.Polarization.PolA)

	printTraversal(cfg)

	log.Infof("Scheduling %d random field realizations", cfg.Mixing.NSim)
	bar := logger.NewProgressBar(cfg.Mixing.NSim, "Realizations")
	for i := 0; i < cfg.Mixing.NSim; i++ {
		select {
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		case <-e.stopChan:
			fmt.Println()
			log.Info("Plan stopped by user")
			return nil
		default:
		}

		realization := uuid.New()
		log.Debugf("Realization %d/%d: %s", i+1, cfg.Mixing.NSim, realization)
		bar.Increment()
	}
	bar.Finish()

	logger.Successf("Plan complete: %d regions, %d realizations", len(cfg.Mixing.Scenario), cfg.Mixing.NSim)
	return nil
}

// Stop gracefully shuts down the engine
func (e *Engine) Stop() error {
	e.stopOnce.Do(func() {
		close(e.stopChan)
	})
	return nil
}

func init() {
	if err := engine.DefaultRegistry.Register("plan", New); err != nil {
		logger.Errorf("Failed to register plan engine: %v", err)
	}
}
