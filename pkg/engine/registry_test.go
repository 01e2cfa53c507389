package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/astroparticle/alpsim/pkg/config"
)

type fakeEngine struct {
	name string
}

func (f *fakeEngine) Name() string                       { return f.name }
func (f *fakeEngine) Describe() string                   { return "fake engine for registry tests" }
func (f *fakeEngine) Configure(cfg *config.Config) error { return nil }
func (f *fakeEngine) Run(ctx context.Context) error      { return nil }
func (f *fakeEngine) Stop() error                        { return nil }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("fake", func() Engine { return &fakeEngine{name: "fake"} }); err != nil {
		t.Fatalf("Failed to register engine: %v", err)
	}

	if err := registry.Register("fake", func() Engine { return &fakeEngine{name: "fake"} }); err == nil {
		t.Errorf("Expected error registering duplicate engine")
	}

	eng, err := registry.Get("fake")
	if err != nil {
		t.Fatalf("Failed to get engine: %v", err)
	}
	if eng.Name() != "fake" {
		t.Errorf("Expected engine name fake, got %s", eng.Name())
	}

	if _, err := registry.Get("absent"); err == nil {
		t.Errorf("Expected error for unregistered engine")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		n := name
		if err := registry.Register(n, func() Engine { return &fakeEngine{name: n} }); err != nil {
			t.Fatalf("Failed to register %s: %v", n, err)
		}
	}

	want := []string{"alpha", "mid", "zeta"}
	if got := registry.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected sorted names %v, got %v", want, got)
	}
}
