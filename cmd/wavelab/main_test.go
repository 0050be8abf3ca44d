package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/plot"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestBeatsWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "beats", "--points", "500", "--out", dir); err != nil {
		t.Fatalf("beats failed: %v", err)
	}
	for _, name := range []string{"beats.html", "sweep_frequency.html", "sweep_amplitude.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestBeatsNoSweep(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "beats", "--no-sweep", "--points", "200", "--out", dir); err != nil {
		t.Fatalf("beats failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sweep_frequency.html")); !os.IsNotExist(err) {
		t.Errorf("expected no sweep output, got %v", err)
	}
}

func TestBeatsZeroPoints(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "beats", "--points", "0", "--no-sweep", "--out", dir); err != nil {
		t.Fatalf("expected an empty run to succeed, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "beats.html")); !os.IsNotExist(err) {
		t.Errorf("expected no chart for an empty waveform, got %v", err)
	}
}

func TestNonEmpty(t *testing.T) {
	series := []plot.Series{
		{Title: "empty"},
		{X: []float64{0, 1}, Y: []float64{1, 2}, Title: "kept"},
	}
	kept := nonEmpty(series)
	if len(kept) != 1 || kept[0].Title != "kept" {
		t.Errorf("expected only the populated series, got %v", kept)
	}
}

func TestRingsZeroWavelength(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "rings", "--lambda", "0", "--resolution", "16", "--out", dir); err != nil {
		t.Fatalf("expected zero wavelength to render, got %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "newton_rings.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"type":"heatmap"`) {
		t.Error("expected a complete heatmap option")
	}
}

func TestRingsWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "rings", "--resolution", "64", "--out", dir); err != nil {
		t.Fatalf("rings failed: %v", err)
	}
	for _, name := range []string{"newton_rings.png", "newton_rings.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("expected %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wavelab.yaml")

	cfg := config.DefaultConfig()
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.Output.HTML = false
	cfg.Output.SVG = true
	cfg.Output.Terminal = false
	if err := config.Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "beats", "--config", path, "--no-sweep", "--points", "100"); err != nil {
		t.Fatalf("beats failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "beats.svg")); err != nil {
		t.Errorf("expected svg in config output dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "beats.html")); !os.IsNotExist(err) {
		t.Errorf("expected html disabled by config, got %v", err)
	}
}

func TestUnknownPreset(t *testing.T) {
	if err := execute(t, "rings", "--preset", "nope", "--out", t.TempDir()); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestAnalyzeRejectsDegenerate(t *testing.T) {
	if err := execute(t, "analyze", "--points", "1"); err == nil {
		t.Error("expected error for a single sample")
	}
	if err := execute(t, "analyze", "--points", "2000"); err != nil {
		t.Errorf("analyze failed: %v", err)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := execute(t, "config", "init", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if cfg.Beats.F1 != 440 {
		t.Errorf("expected default f1 440, got %v", cfg.Beats.F1)
	}
	if err := execute(t, "config", "init", path); err == nil {
		t.Error("expected error when config already exists")
	}
}
