package config

import (
	"testing"

	"github.com/nicholas-gates/book-recommendations/internal/recommender"
)

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %+v, want nil for a missing file", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved := &Config{
		Model:           "gemini-2.5-flash-lite",
		Temperature:     0.2,
		MaxOutputTokens: 1024,
		ArtifactDir:     "runs",
	}
	if err := saved.Save(); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned nil after Save()")
	}
	if *loaded != *saved {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestDefaultConfigParams(t *testing.T) {
	cfg := DefaultConfig()

	params := cfg.Params()
	if params.Temperature != recommender.DefaultTemperature {
		t.Errorf("Params().Temperature = %v, want %v", params.Temperature, recommender.DefaultTemperature)
	}
	if params.MaxOutputTokens != recommender.DefaultMaxOutputTokens {
		t.Errorf("Params().MaxOutputTokens = %v, want %v", params.MaxOutputTokens, recommender.DefaultMaxOutputTokens)
	}
	if cfg.Model != recommender.DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, recommender.DefaultModel)
	}
}
