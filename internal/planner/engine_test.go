package planner

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), zerolog.Nop())
}

func TestBuildItineraryEndToEnd(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	profile := domain.TouristProfile{
		Age:               30,
		Interests:         []string{"History"},
		PreferredDuration: 2,
		BudgetPreference:  "Budget",
	}

	result, err := engine.BuildItinerary(testCatalog(), profile, nil)
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}
	if result.TotalDays != 2 {
		t.Fatalf("total_days=%d, want 2", result.TotalDays)
	}
	// Only the two Budget-tier records qualify; their costs are exact.
	if result.TotalCostUSD != 120+75 {
		t.Errorf("total_cost_usd=%.2f, want 195.00", result.TotalCostUSD)
	}
}

func TestBuildItineraryShorterThanRequested(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	profile := domain.TouristProfile{
		Age:               30,
		PreferredDuration: 5,
		BudgetPreference:  "Budget",
	}

	result, err := engine.BuildItinerary(testCatalog(), profile, nil)
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}
	if result.TotalDays != 2 {
		t.Errorf("total_days=%d, want 2 (only 2 candidates)", result.TotalDays)
	}
}

func TestBuildItineraryNoMatches(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	profile := domain.TouristProfile{
		Age:               30,
		PreferredDuration: 3,
		BudgetPreference:  "Luxury",
		ClimatePreference: "Cold",
	}

	result, err := engine.BuildItinerary(testCatalog(), profile, nil)
	if err != nil {
		t.Fatalf("zero matches must not fail: %v", err)
	}
	if result.TotalDays != 0 || result.TotalCostUSD != 0 || len(result.CitiesVisited) != 0 {
		t.Errorf("want well-formed empty itinerary, got %+v", result)
	}
}

func TestBuildItineraryMalformedRecord(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	catalog[2].SiteName = ""

	engine := newTestEngine()
	_, err := engine.BuildItinerary(catalog, domain.TouristProfile{PreferredDuration: 1, BudgetPreference: "Budget"}, nil)

	var derr *domain.DataIntegrityError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want *DataIntegrityError", err)
	}
	if derr.RecordID != "REC-003" {
		t.Errorf("record_id=%q, want REC-003", derr.RecordID)
	}
}

func TestRecommendOrderingAndLimit(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	profile := domain.TouristProfile{BudgetPreference: "Budget"}

	recs, err := engine.Recommend(testCatalog(), profile, 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	// Cairo outranks Prague on rating with equal interest match.
	if recs[0].City != "Cairo" {
		t.Errorf("top recommendation city=%q, want Cairo", recs[0].City)
	}
	if recs[0].Reason == "" {
		t.Error("recommendation reason is empty")
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	recs, err := engine.Recommend(testCatalog(), domain.TouristProfile{BudgetPreference: "Budget"}, 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d recommendations, want 2 (all budget candidates)", len(recs))
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	a := Analyze(testCatalog())

	if a.TotalRecords != 4 {
		t.Errorf("total_records=%d, want 4", a.TotalRecords)
	}
	if a.UniqueCities != 4 || a.UniqueCountries != 4 {
		t.Errorf("cities=%d countries=%d, want 4/4", a.UniqueCities, a.UniqueCountries)
	}
	if a.Cost.MinCostUSD != 75 || a.Cost.MaxCostUSD != 250 {
		t.Errorf("cost range %.0f..%.0f, want 75..250", a.Cost.MinCostUSD, a.Cost.MaxCostUSD)
	}
	wantAvg := (120.0 + 180.0 + 250.0 + 75.0) / 4
	if a.Cost.AvgCostUSD != wantAvg {
		t.Errorf("avg cost=%.2f, want %.2f", a.Cost.AvgCostUSD, wantAvg)
	}
	if a.Cost.BudgetDistribution["Budget"] != 2 {
		t.Errorf("budget distribution=%v", a.Cost.BudgetDistribution)
	}
	if len(a.TopCities) != 4 {
		t.Errorf("top cities=%v", a.TopCities)
	}
}

func TestAnalyzeEmptyCatalog(t *testing.T) {
	t.Parallel()

	a := Analyze(nil)
	if a.TotalRecords != 0 || a.Cost.AvgCostUSD != 0 {
		t.Errorf("empty catalog analytics: %+v", a)
	}
}
