package planner

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Experience categories a destination is scored on.
const (
	CategoryCulture   = "culture"
	CategoryAdventure = "adventure"
	CategoryNature    = "nature"
)

// Weights defines the coefficients of the composite score. They are
// expected to sum to 1.
type Weights struct {
	InterestMatch float64 `json:"interest_match"`
	Rating        float64 `json:"rating"`
	Experience    float64 `json:"experience"`
}

// Config carries the tunable parts of the pipeline: score weights, the
// pacing rule, and the interest-label to experience-category mapping used
// to bias the experience component.
type Config struct {
	Weights            Weights           `json:"weights"`
	SitesPerDay        int               `json:"sites_per_day"`
	InterestCategories map[string]string `json:"interest_categories"`
}

// DefaultConfig returns the shipped baseline: 40/30/30 weights, one site
// per day, and the label mapping observed in the catalog vocabulary.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			InterestMatch: 0.40,
			Rating:        0.30,
			Experience:    0.30,
		},
		SitesPerDay: 1,
		InterestCategories: map[string]string{
			"art":          CategoryCulture,
			"history":      CategoryCulture,
			"architecture": CategoryCulture,
			"cultural":     CategoryCulture,
			"museums":      CategoryCulture,
			"food":         CategoryCulture,
			"adventure":    CategoryAdventure,
			"hiking":       CategoryAdventure,
			"sports":       CategoryAdventure,
			"nature":       CategoryNature,
			"beaches":      CategoryNature,
			"wildlife":     CategoryNature,
		},
	}
}

// LoadConfigFromFile loads pipeline configuration from a JSON file,
// returning defaults alongside the error when the file is unreadable.
func LoadConfigFromFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.SitesPerDay <= 0 {
		cfg.SitesPerDay = 1
	}
	return cfg, nil
}
