package planner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigWeightsSumToOne(t *testing.T) {
	t.Parallel()

	w := DefaultConfig().Weights
	if sum := w.InterestMatch + w.Rating + w.Experience; sum != 1.0 {
		t.Errorf("weights sum=%.2f, want 1.0", sum)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "planner.json")
	data := `{
		"weights": {"interest_match": 0.5, "rating": 0.25, "experience": 0.25},
		"sites_per_day": 2,
		"interest_categories": {"surfing": "adventure"}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile: %v", err)
	}
	if cfg.Weights.InterestMatch != 0.5 {
		t.Errorf("interest_match weight=%.2f, want 0.5", cfg.Weights.InterestMatch)
	}
	if cfg.SitesPerDay != 2 {
		t.Errorf("sites_per_day=%d, want 2", cfg.SitesPerDay)
	}
	if cfg.InterestCategories["surfing"] != CategoryAdventure {
		t.Errorf("mapping=%v", cfg.InterestCategories)
	}
}

func TestLoadConfigFromFileMissingFallsBack(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("missing file should return an error")
	}
	if cfg.Weights != DefaultConfig().Weights {
		t.Error("missing file should still return default weights")
	}
}
