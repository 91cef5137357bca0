package planner

import (
	"sort"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

// CatalogAnalytics summarizes the loaded catalog for the dashboard.
type CatalogAnalytics struct {
	TotalRecords    int            `json:"total_records"`
	UniqueCities    int            `json:"unique_cities"`
	UniqueCountries int            `json:"unique_countries"`
	Cost            CostAnalysis   `json:"cost_analysis"`
	TopCities       []CityCount    `json:"top_cities"`
	SeasonSpread    map[string]int `json:"season_spread,omitempty"`
}

type CostAnalysis struct {
	AvgCostUSD         float64        `json:"avg_cost_usd"`
	MinCostUSD         float64        `json:"min_cost_usd"`
	MaxCostUSD         float64        `json:"max_cost_usd"`
	BudgetDistribution map[string]int `json:"budget_distribution"`
}

type CityCount struct {
	City    string `json:"city"`
	Records int    `json:"records"`
}

// Analyze computes exact aggregate statistics over the catalog.
func Analyze(catalog []domain.Destination) CatalogAnalytics {
	out := CatalogAnalytics{
		TotalRecords: len(catalog),
		Cost:         CostAnalysis{BudgetDistribution: make(map[string]int)},
		SeasonSpread: make(map[string]int),
	}
	if len(catalog) == 0 {
		return out
	}

	cities := make(map[string]int)
	countries := make(map[string]struct{})

	out.Cost.MinCostUSD = catalog[0].AvgCostUSD
	out.Cost.MaxCostUSD = catalog[0].AvgCostUSD
	var total float64

	for _, d := range catalog {
		cities[d.City]++
		countries[d.Country] = struct{}{}
		out.Cost.BudgetDistribution[d.BudgetTier()]++
		if d.BestSeason != "" {
			out.SeasonSpread[d.BestSeason]++
		}

		total += d.AvgCostUSD
		if d.AvgCostUSD < out.Cost.MinCostUSD {
			out.Cost.MinCostUSD = d.AvgCostUSD
		}
		if d.AvgCostUSD > out.Cost.MaxCostUSD {
			out.Cost.MaxCostUSD = d.AvgCostUSD
		}
	}

	out.UniqueCities = len(cities)
	out.UniqueCountries = len(countries)
	out.Cost.AvgCostUSD = total / float64(len(catalog))

	for city, n := range cities {
		out.TopCities = append(out.TopCities, CityCount{City: city, Records: n})
	}
	// Count descending, then name ascending for a stable ordering.
	sort.Slice(out.TopCities, func(i, j int) bool {
		if out.TopCities[i].Records != out.TopCities[j].Records {
			return out.TopCities[i].Records > out.TopCities[j].Records
		}
		return out.TopCities[i].City < out.TopCities[j].City
	})
	if len(out.TopCities) > 5 {
		out.TopCities = out.TopCities[:5]
	}
	return out
}
