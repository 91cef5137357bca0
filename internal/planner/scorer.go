package planner

import (
	"math"
	"strings"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

// ratingCeiling is the catalog's fixed rating scale.
const ratingCeiling = 5.0

// Scorer computes composite scores. Score is a pure function of its
// inputs: identical (destination, profile) pairs always produce identical
// results, so candidates can be scored in any order or in parallel.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultConfig().Weights
	}
	return &Scorer{cfg: cfg}
}

// Score computes the weighted composite score (0..100) for one candidate
// along with its component breakdown.
func (s *Scorer) Score(d domain.Destination, profile domain.TouristProfile) domain.ScoredDestination {
	breakdown := domain.ScoreBreakdown{
		InterestMatch:       interestMatch(profile.Interests, d.Tags),
		RatingComponent:     clamp(d.AvgRating/ratingCeiling*100, 0, 100),
		ExperienceComponent: s.experienceComponent(profile.Interests, d),
	}

	w := s.cfg.Weights
	composite := w.InterestMatch*breakdown.InterestMatch +
		w.Rating*breakdown.RatingComponent +
		w.Experience*breakdown.ExperienceComponent

	return domain.ScoredDestination{
		Destination:    d,
		CompositeScore: clamp(math.Round(composite*10)/10, 0, 100),
		Breakdown:      breakdown,
	}
}

// interestMatch is the overlap fraction between the profile's interests
// and the destination's tag set, scaled to 0..100. Either side being
// empty yields the neutral baseline 0.
func interestMatch(interests, tags []string) float64 {
	if len(interests) == 0 || len(tags) == 0 {
		return 0
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[normalize(t)] = struct{}{}
	}
	matched := 0
	seen := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		key := normalize(in)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := tagSet[key]; ok {
			matched++
		}
	}
	if len(seen) == 0 {
		return 0
	}
	return float64(matched) / float64(len(seen)) * 100
}

// experienceComponent combines the three category scores, weighting each
// category by how many of the profile's interests map to it. With no
// mapped interests every category weighs the same, so the component falls
// back to a plain average.
func (s *Scorer) experienceComponent(interests []string, d domain.Destination) float64 {
	weights := map[string]float64{
		CategoryCulture:   1,
		CategoryAdventure: 1,
		CategoryNature:    1,
	}
	for _, in := range interests {
		if cat, ok := s.cfg.InterestCategories[normalize(in)]; ok {
			if _, known := weights[cat]; known {
				weights[cat]++
			}
		}
	}

	scores := map[string]float64{
		CategoryCulture:   clamp(d.CultureScore, 0, 100),
		CategoryAdventure: clamp(d.AdventureScore, 0, 100),
		CategoryNature:    clamp(d.NatureScore, 0, 100),
	}

	var sum, sumW float64
	for _, cat := range []string{CategoryCulture, CategoryAdventure, CategoryNature} {
		sum += weights[cat] * scores[cat]
		sumW += weights[cat]
	}
	return sum / sumW
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
