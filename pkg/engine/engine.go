package engine

import (
	"context"

	"github.com/astroparticle/alpsim/pkg/config"
)

// Engine is the seam to a photon-ALP mixing engine. The validated
// configuration is handed over once via Configure and treated as
// read-only for the lifetime of the run.
type Engine interface {
	// Name returns the name of the engine
	Name() string

	// Describe returns a brief description of what the engine computes
	Describe() string

	// Configure hands the validated configuration to the engine
	Configure(cfg *config.Config) error

	// Run executes the engine until completion or cancellation
	Run(ctx context.Context) error

	// Stop gracefully shuts down the engine
	Stop() error
}
