package planner

import (
	"sort"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

// RankCandidates orders scored candidates by composite score descending,
// breaking ties by avg_rating descending, then record_id ascending. The
// ordering is total, so repeated runs over the same input are identical.
func RankCandidates(candidates []domain.ScoredDestination) []domain.ScoredDestination {
	ranked := make([]domain.ScoredDestination, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CompositeScore != ranked[j].CompositeScore {
			return ranked[i].CompositeScore > ranked[j].CompositeScore
		}
		if ranked[i].AvgRating != ranked[j].AvgRating {
			return ranked[i].AvgRating > ranked[j].AvgRating
		}
		return ranked[i].RecordID < ranked[j].RecordID
	})
	return ranked
}

// Select greedily takes the highest-ranked candidates until the requested
// day count is filled under the pacing rule, or candidates run out. A
// shorter-than-requested selection is reported as-is; discarded
// candidates are never revisited.
func Select(candidates []domain.ScoredDestination, days, sitesPerDay int) []domain.ScoredDestination {
	if days <= 0 || len(candidates) == 0 {
		return nil
	}
	if sitesPerDay <= 0 {
		sitesPerDay = 1
	}
	ranked := RankCandidates(candidates)
	slots := days * sitesPerDay
	if len(ranked) > slots {
		ranked = ranked[:slots]
	}
	return ranked
}
