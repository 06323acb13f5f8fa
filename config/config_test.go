package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestPathRespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	want := filepath.Join("/tmp/xdg-test", "foors", "config.yaml")
	if got := Path(); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Contexts) != 0 {
		t.Fatalf("expected empty contexts, got %v", cfg.Contexts)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Set("local", Context{Socket: "/tmp/foors.sock"})
	if err := cfg.Use("local"); err != nil {
		t.Fatalf("Use() error = %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	name, ctx, ok := reloaded.Current()
	if !ok || name != "local" {
		t.Fatalf("expected current context %q, got %q ok=%v", "local", name, ok)
	}
	if ctx.Target() != "/tmp/foors.sock" {
		t.Fatalf("Target() = %q, want %q", ctx.Target(), "/tmp/foors.sock")
	}
}

func TestUseUnknownContextErrors(t *testing.T) {
	cfg := &Config{Contexts: make(map[string]Context)}
	if err := cfg.Use("missing"); err == nil {
		t.Fatal("expected error using unknown context")
	}
}

func TestSimulationDefaultsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Simulation = &SimulationDefaults{
		ConnectionRadius:   12.5,
		MessageSpeed:       3,
		GenerationInterval: 5 * time.Second,
		AutoGenerate:       true,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	if reloaded.Simulation == nil {
		t.Fatal("expected Simulation defaults to survive round trip")
	}
	if reloaded.Simulation.ConnectionRadius != 12.5 || !reloaded.Simulation.AutoGenerate {
		t.Fatalf("Simulation defaults = %+v, want ConnectionRadius=12.5 AutoGenerate=true", reloaded.Simulation)
	}
}

func TestRemoveClearsCurrentContext(t *testing.T) {
	cfg := &Config{Contexts: map[string]Context{"local": {Socket: "/tmp/a.sock"}}}
	if err := cfg.Use("local"); err != nil {
		t.Fatalf("Use() error = %v", err)
	}
	if err := cfg.Remove("local"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if cfg.CurrentContext != "" {
		t.Fatalf("expected current-context cleared, got %q", cfg.CurrentContext)
	}
}
