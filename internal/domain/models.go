package domain

// Budget tiers a destination or profile can reference.
const (
	BudgetTierBudget   = "Budget"
	BudgetTierMidRange = "Mid-range"
	BudgetTierLuxury   = "Luxury"
)

// Destination is a read-only catalog record. The pipeline never mutates
// destinations, only derives scored copies.
type Destination struct {
	RecordID       string   `json:"record_id"`
	City           string   `json:"city"`
	Country        string   `json:"country"`
	SiteName       string   `json:"site_name"`
	AvgCostUSD     float64  `json:"avg_cost_usd"`
	BestSeason     string   `json:"best_season,omitempty"`
	Climate        string   `json:"climate"`
	CultureScore   float64  `json:"culture_score"`
	AdventureScore float64  `json:"adventure_score"`
	NatureScore    float64  `json:"nature_score"`
	AvgRating      float64  `json:"avg_rating"`
	UNESCOSite     bool     `json:"unesco_site"`
	Tags           []string `json:"tags,omitempty"`
	BudgetLevel    string   `json:"budget_level,omitempty"`
}

// BudgetTier returns the record's budget classification, deriving it from
// avg_cost_usd when the catalog does not carry one.
func (d Destination) BudgetTier() string {
	if d.BudgetLevel != "" {
		return d.BudgetLevel
	}
	switch {
	case d.AvgCostUSD < 120:
		return BudgetTierBudget
	case d.AvgCostUSD < 220:
		return BudgetTierMidRange
	default:
		return BudgetTierLuxury
	}
}

// Validate checks the fields scoring depends on. A missing field fails
// fast rather than propagating a silent default into scores.
func (d Destination) Validate() error {
	if d.RecordID == "" {
		return &DataIntegrityError{RecordID: "(unknown)", Field: "record_id", Reason: "empty"}
	}
	if d.City == "" {
		return &DataIntegrityError{RecordID: d.RecordID, Field: "city", Reason: "empty"}
	}
	if d.Country == "" {
		return &DataIntegrityError{RecordID: d.RecordID, Field: "country", Reason: "empty"}
	}
	if d.SiteName == "" {
		return &DataIntegrityError{RecordID: d.RecordID, Field: "site_name", Reason: "empty"}
	}
	if d.Climate == "" {
		return &DataIntegrityError{RecordID: d.RecordID, Field: "climate", Reason: "empty"}
	}
	if d.AvgCostUSD < 0 {
		return &DataIntegrityError{RecordID: d.RecordID, Field: "avg_cost_usd", Reason: "negative"}
	}
	if d.AvgRating < 0 || d.AvgRating > 5 {
		return &DataIntegrityError{RecordID: d.RecordID, Field: "avg_rating", Reason: "outside 0..5"}
	}
	for _, score := range []struct {
		field string
		value float64
	}{
		{"culture_score", d.CultureScore},
		{"adventure_score", d.AdventureScore},
		{"nature_score", d.NatureScore},
	} {
		if score.value < 0 || score.value > 100 {
			return &DataIntegrityError{RecordID: d.RecordID, Field: score.field, Reason: "outside 0..100"}
		}
	}
	return nil
}

// ScoreBreakdown keeps the per-component contributions of a composite
// score so results stay explainable.
type ScoreBreakdown struct {
	InterestMatch       float64 `json:"interest_match"`
	RatingComponent     float64 `json:"rating_component"`
	ExperienceComponent float64 `json:"experience_component"`
}

// ScoredDestination is a destination plus its computed composite score.
type ScoredDestination struct {
	Destination
	CompositeScore float64        `json:"composite_score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
}

// ItineraryDay is one calendar day of the assembled plan. Day indexes are
// 1-based and contiguous.
type ItineraryDay struct {
	Day               int           `json:"day"`
	Date              string        `json:"date,omitempty"`
	City              string        `json:"city"`
	Destinations      []Destination `json:"destinations"`
	Sites             []string      `json:"sites"`
	Notes             []string      `json:"notes,omitempty"`
	EstimatedCostUSD  float64       `json:"estimated_cost_usd"`
	CumulativeCostUSD float64       `json:"cumulative_cost_usd"`
}

// Recommendations is the advisory block attached to an itinerary.
// AccessibilityInfo is present only when the profile asked for it.
type Recommendations struct {
	BestSeason        string   `json:"best_season,omitempty"`
	PackingTips       []string `json:"packing_tips,omitempty"`
	AccessibilityInfo []string `json:"accessibility_info,omitempty"`
}

// ItineraryResult is the plain structured value the pipeline produces per
// request. A zero-day itinerary is a valid result, not an error.
type ItineraryResult struct {
	TotalDays       int             `json:"total_days"`
	StartDate       string          `json:"start_date,omitempty"`
	EndDate         string          `json:"end_date,omitempty"`
	TotalCostUSD    float64         `json:"total_cost_usd"`
	AvgDailyCostUSD float64         `json:"avg_daily_cost_usd"`
	CitiesVisited   []string        `json:"cities_visited"`
	Days            []ItineraryDay  `json:"daily_schedule"`
	Recommendations Recommendations `json:"recommendations"`
}

// Recommendation is one entry of a top-N destination ranking.
type Recommendation struct {
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Score      float64 `json:"score"`
	Reason     string  `json:"reason"`
	UNESCOSite bool    `json:"unesco_site"`
	CostUSD    float64 `json:"cost_usd"`
}
