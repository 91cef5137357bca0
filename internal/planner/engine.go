package planner

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

// Engine runs the full pipeline: filter, score, select, assemble. Each
// call works on its own filtered and scored copies, so concurrent
// requests over the same read-only catalog need no coordination.
type Engine struct {
	cfg       Config
	filter    *Filter
	scorer    *Scorer
	assembler *Assembler
	logger    zerolog.Logger
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, logger zerolog.Logger) *Engine {
	if cfg.SitesPerDay <= 0 {
		cfg.SitesPerDay = 1
	}
	return &Engine{
		cfg:       cfg,
		filter:    NewFilter(),
		scorer:    NewScorer(cfg),
		assembler: NewAssembler(cfg.SitesPerDay),
		logger:    logger,
	}
}

// BuildItinerary produces an itinerary for the profile from the catalog.
// Zero matching destinations produce a valid empty itinerary. A malformed
// catalog record aborts with *domain.DataIntegrityError.
func (e *Engine) BuildItinerary(catalog []domain.Destination, profile domain.TouristProfile, startDate *time.Time) (domain.ItineraryResult, error) {
	scored, err := e.rank(catalog, profile)
	if err != nil {
		return domain.ItineraryResult{}, err
	}

	selected := Select(scored, profile.PreferredDuration, e.cfg.SitesPerDay)
	if len(selected) < profile.PreferredDuration*e.cfg.SitesPerDay {
		e.logger.Debug().
			Int("requested_days", profile.PreferredDuration).
			Int("selected", len(selected)).
			Msg("fewer candidates than requested days")
	}

	result := e.assembler.Assemble(selected, profile, startDate)
	e.logger.Info().
		Int("catalog", len(catalog)).
		Int("candidates", len(scored)).
		Int("days", result.TotalDays).
		Float64("total_cost_usd", result.TotalCostUSD).
		Msg("itinerary assembled")
	return result, nil
}

// Recommend returns the top n ranked destinations for the profile, with a
// short reason per entry. n defaults to 5.
func (e *Engine) Recommend(catalog []domain.Destination, profile domain.TouristProfile, n int) ([]domain.Recommendation, error) {
	scored, err := e.rank(catalog, profile)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 5
	}
	ranked := RankCandidates(scored)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]domain.Recommendation, 0, len(ranked))
	for _, sd := range ranked {
		out = append(out, domain.Recommendation{
			Name:       sd.SiteName,
			City:       sd.City,
			Country:    sd.Country,
			Score:      sd.CompositeScore,
			Reason:     recommendationReason(sd),
			UNESCOSite: sd.UNESCOSite,
			CostUSD:    sd.AvgCostUSD,
		})
	}
	return out, nil
}

// rank validates the catalog, applies the hard filters and scores the
// survivors. Ties are left for the selector to break.
func (e *Engine) rank(catalog []domain.Destination, profile domain.TouristProfile) ([]domain.ScoredDestination, error) {
	for _, d := range catalog {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	candidates := e.filter.Apply(catalog, profile)
	scored := make([]domain.ScoredDestination, 0, len(candidates))
	for _, d := range candidates {
		scored = append(scored, e.scorer.Score(d, profile))
	}
	return scored, nil
}

func recommendationReason(sd domain.ScoredDestination) string {
	switch {
	case sd.CompositeScore >= 80:
		return "excellent match for your interests"
	case sd.CompositeScore >= 60:
		return "good match for your interests"
	case sd.CompositeScore >= 40:
		return "mixed match for your interests"
	default:
		return "fair match for your interests"
	}
}
