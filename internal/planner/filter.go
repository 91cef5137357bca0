package planner

import (
	"github.com/globetrek/itinerary-engine/internal/domain"
)

// Predicate is one hard-match constraint over a destination. Filtering is
// the AND of independent predicates, so each stays testable in isolation.
type Predicate func(domain.Destination) bool

// AccessibilityPredicate decides whether a destination satisfies a
// profile's accessibility needs. The default implementation passes
// everything: the constraint is declared in the profile but intentionally
// not enforced yet. Swap in a real predicate once the catalog carries
// accessibility data.
type AccessibilityPredicate func(domain.TouristProfile, domain.Destination) bool

// PassAllAccessibility is the current no-op accessibility stage.
func PassAllAccessibility(domain.TouristProfile, domain.Destination) bool { return true }

// Filter narrows the catalog by the profile's hard-match preferences.
type Filter struct {
	Accessibility AccessibilityPredicate
}

// NewFilter returns a Filter with the default (pass-all) accessibility
// predicate.
func NewFilter() *Filter {
	return &Filter{Accessibility: PassAllAccessibility}
}

// Apply returns the subset of catalog matching every supplied constraint:
// budget tier always, climate and best season only when the profile sets
// them. A season preference is silently skipped when no record in the
// catalog carries season data. An empty result is valid, not an error.
func (f *Filter) Apply(catalog []domain.Destination, profile domain.TouristProfile) []domain.Destination {
	preds := []Predicate{
		func(d domain.Destination) bool { return d.BudgetTier() == profile.BudgetPreference },
	}
	if profile.ClimatePreference != "" {
		preds = append(preds, func(d domain.Destination) bool {
			return d.Climate == profile.ClimatePreference
		})
	}
	if profile.SeasonPreference != "" && hasSeasonData(catalog) {
		preds = append(preds, func(d domain.Destination) bool {
			return d.BestSeason == profile.SeasonPreference
		})
	}

	access := f.Accessibility
	if access == nil {
		access = PassAllAccessibility
	}

	var out []domain.Destination
	for _, d := range catalog {
		if !access(profile, d) {
			continue
		}
		if matchesAll(d, preds) {
			out = append(out, d)
		}
	}
	return out
}

func matchesAll(d domain.Destination, preds []Predicate) bool {
	for _, p := range preds {
		if !p(d) {
			return false
		}
	}
	return true
}

func hasSeasonData(catalog []domain.Destination) bool {
	for _, d := range catalog {
		if d.BestSeason != "" {
			return true
		}
	}
	return false
}
