package planner

import (
	"fmt"
	"time"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

const dateLayout = "2006-01-02"

// universalPackingTips apply to every trip.
var universalPackingTips = []string{
	"Comfortable walking shoes",
	"Universal travel adapter",
}

// climatePackingTips is a fixed climate-to-advice lookup. No randomness:
// the same selection always yields the same tips.
var climatePackingTips = map[string]string{
	"Cold":      "Warm layers and an insulated jacket",
	"Temperate": "Light layers and a waterproof jacket",
	"Warm":      "Breathable clothing and sun protection",
}

var seasonPackingTips = map[string]string{
	"Spring": "Compact umbrella for spring showers",
	"Summer": "Sunscreen and a refillable water bottle",
	"Autumn": "A light sweater for cool evenings",
	"Winter": "Gloves and a warm hat",
}

var accessibilityAdvice = []string{
	"Check wheelchair access for each listed site before booking",
	"Prefer accommodations with step-free access near the day's sites",
	"Many major museums offer priority entry for visitors with reduced mobility",
}

// Assembler maps an ordered selection onto calendar days and derives the
// aggregate summaries and recommendation notes.
type Assembler struct {
	SitesPerDay int
}

func NewAssembler(sitesPerDay int) *Assembler {
	if sitesPerDay <= 0 {
		sitesPerDay = 1
	}
	return &Assembler{SitesPerDay: sitesPerDay}
}

// Assemble builds the day-by-day result. An empty selection yields a
// well-formed empty itinerary: zero days, zero cost, empty cities list.
// startDate is optional; when nil the days carry no calendar dates.
func (a *Assembler) Assemble(selected []domain.ScoredDestination, profile domain.TouristProfile, startDate *time.Time) domain.ItineraryResult {
	result := domain.ItineraryResult{
		CitiesVisited: []string{},
		Days:          []domain.ItineraryDay{},
	}

	var cumulative float64
	seenCities := make(map[string]struct{})

	for i := 0; i < len(selected); i += a.SitesPerDay {
		end := i + a.SitesPerDay
		if end > len(selected) {
			end = len(selected)
		}
		chunk := selected[i:end]

		day := domain.ItineraryDay{
			Day:  len(result.Days) + 1,
			City: chunk[0].City,
		}
		if startDate != nil {
			day.Date = startDate.AddDate(0, 0, len(result.Days)).Format(dateLayout)
		}
		for _, sd := range chunk {
			day.Destinations = append(day.Destinations, sd.Destination)
			day.Sites = append(day.Sites, sd.SiteName)
			day.EstimatedCostUSD += sd.AvgCostUSD
			if sd.UNESCOSite {
				day.Notes = append(day.Notes, fmt.Sprintf("%s is a UNESCO World Heritage Site", sd.SiteName))
			}
			if _, ok := seenCities[sd.City]; !ok {
				seenCities[sd.City] = struct{}{}
				result.CitiesVisited = append(result.CitiesVisited, sd.City)
			}
		}
		cumulative += day.EstimatedCostUSD
		day.CumulativeCostUSD = cumulative
		result.Days = append(result.Days, day)
	}

	result.TotalDays = len(result.Days)
	result.TotalCostUSD = cumulative
	if result.TotalDays > 0 {
		result.AvgDailyCostUSD = cumulative / float64(result.TotalDays)
	}
	if startDate != nil && result.TotalDays > 0 {
		result.StartDate = startDate.Format(dateLayout)
		result.EndDate = startDate.AddDate(0, 0, result.TotalDays-1).Format(dateLayout)
	}

	result.Recommendations = domain.Recommendations{
		BestSeason:  modalSeason(selected),
		PackingTips: packingTips(selected),
	}
	if profile.AccessibilityNeeds {
		result.Recommendations.AccessibilityInfo = append([]string{}, accessibilityAdvice...)
	}
	return result
}

// modalSeason returns the most frequent best_season among the selection.
// On a tie the earliest-selected destination's season wins.
func modalSeason(selected []domain.ScoredDestination) string {
	counts := make(map[string]int)
	var order []string
	for _, sd := range selected {
		if sd.BestSeason == "" {
			continue
		}
		if _, seen := counts[sd.BestSeason]; !seen {
			order = append(order, sd.BestSeason)
		}
		counts[sd.BestSeason]++
	}
	best := ""
	bestCount := 0
	for _, season := range order {
		if counts[season] > bestCount {
			best = season
			bestCount = counts[season]
		}
	}
	return best
}

// packingTips derives a deduplicated advice list from the selection's
// climates and seasons, preserving first-occurrence order.
func packingTips(selected []domain.ScoredDestination) []string {
	if len(selected) == 0 {
		return nil
	}
	tips := append([]string{}, universalPackingTips...)
	seen := make(map[string]struct{}, len(tips))
	for _, t := range tips {
		seen[t] = struct{}{}
	}
	add := func(tip string) {
		if tip == "" {
			return
		}
		if _, ok := seen[tip]; ok {
			return
		}
		seen[tip] = struct{}{}
		tips = append(tips, tip)
	}
	for _, sd := range selected {
		add(climatePackingTips[sd.Climate])
		add(seasonPackingTips[sd.BestSeason])
	}
	return tips
}
