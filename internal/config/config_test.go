package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "Dispatch Schedule.xlsx" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.DPI != 288 {
		t.Errorf("DPI = %d, want 288", cfg.DPI)
	}
	if len(cfg.Engine.Families) == 0 {
		t.Error("default engine config has no product families")
	}
}

func TestLoad_OverlaysOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "dpi: 150\nlanguage: deu\nprep:\n  sharpen: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.DPI)
	}
	if cfg.Language != "deu" {
		t.Errorf("Language = %q, want deu", cfg.Language)
	}
	if !cfg.Prep.Sharpen {
		t.Error("prep.sharpen not applied")
	}
	if cfg.Output != "Dispatch Schedule.xlsx" {
		t.Errorf("Output = %q, want default preserved", cfg.Output)
	}
	if !cfg.Prep.Grayscale {
		t.Error("unset prep.grayscale should keep its default")
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero dpi", "dpi: 0\n"},
		{"negative workers", "workers: -1\n"},
		{"bad yaml", "dpi: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("Load accepted %q", tt.data)
			}
		})
	}
}
