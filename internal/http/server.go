package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/globetrek/itinerary-engine/internal/domain"
	"github.com/globetrek/itinerary-engine/internal/planner"
)

const dateLayout = "2006-01-02"

type Server struct {
	Engine  *planner.Engine
	Catalog []domain.Destination
	Logger  zerolog.Logger

	// Repo, when set, backs the /destinations endpoints with the catalog
	// store; nil falls back to the in-memory catalog.
	Repo *SQLiteDestinationsRepo
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewServer(engine *planner.Engine, catalog []domain.Destination, logger zerolog.Logger) *Server {
	return &Server{Engine: engine, Catalog: catalog, Logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/itinerary", s.handleItinerary)
	r.Post("/recommendations", s.handleRecommendations)
	r.Get("/destinations", s.handleDestinationsList)
	r.Get("/destinations/{id}", s.handleDestinationByID)
	r.Get("/analytics", s.handleAnalytics)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type ItineraryRequest struct {
	Profile   domain.TouristProfile `json:"profile"`
	StartDate string                `json:"start_date,omitempty"`
}

type ItineraryResponse struct {
	Status    string                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Itinerary domain.ItineraryResult `json:"itinerary"`
	Profile   domain.TouristProfile  `json:"tourist_profile"`
}

func (s *Server) handleItinerary(w http.ResponseWriter, r *http.Request) {
	var req ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	profile, err := domain.NewTouristProfile(req.Profile)
	if err != nil {
		s.writeProfileError(w, err)
		return
	}

	var startDate *time.Time
	if req.StartDate != "" {
		t, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_start_date", "start_date must be YYYY-MM-DD")
			return
		}
		startDate = &t
	}

	result, err := s.Engine.BuildItinerary(s.Catalog, profile, startDate)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	resp := ItineraryResponse{Status: "success", Itinerary: result, Profile: profile}
	if result.TotalDays == 0 {
		resp.Message = "no destinations match your preferences"
	}
	writeJSON(w, http.StatusOK, resp)
}

type RecommendationsRequest struct {
	Profile domain.TouristProfile `json:"profile"`
	Limit   int                   `json:"limit"`
}

type RecommendationsResponse struct {
	Status          string                  `json:"status"`
	Count           int                     `json:"count"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	profile, err := domain.NewTouristProfile(req.Profile)
	if err != nil {
		s.writeProfileError(w, err)
		return
	}

	limit := req.Limit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	recs, err := s.Engine.Recommend(s.Catalog, profile, limit)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}

	writeJSON(w, http.StatusOK, RecommendationsResponse{
		Status:          "success",
		Count:           len(recs),
		Recommendations: recs,
	})
}

type DestinationsListResponse struct {
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
	Total  int                  `json:"total"`
	Items  []domain.Destination `json:"items"`
}

func (s *Server) handleDestinationsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	q := r.URL.Query()

	params := ListParams{
		City:        q.Get("city"),
		BudgetLevel: q.Get("budget_level"),
		Climate:     q.Get("climate"),
	}
	if raw := q.Get("max_cost"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_max_cost", "max_cost must be numeric")
			return
		}
		params.MaxCost = v
	}

	filtered, err := s.listDestinations(params)
	if err != nil {
		s.Logger.Error().Err(err).Msg("list destinations from store")
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to list destinations")
		return
	}

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, DestinationsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  filtered[offset:end],
	})
}

// listDestinations prefers the catalog store when one is attached and
// filters the in-memory catalog otherwise.
func (s *Server) listDestinations(p ListParams) ([]domain.Destination, error) {
	if s.Repo != nil {
		return s.Repo.List(p)
	}

	filtered := make([]domain.Destination, 0, len(s.Catalog))
	for _, d := range s.Catalog {
		if p.City != "" && !containsFold(d.City, p.City) {
			continue
		}
		if p.BudgetLevel != "" && d.BudgetTier() != p.BudgetLevel {
			continue
		}
		if p.Climate != "" && d.Climate != p.Climate {
			continue
		}
		if p.MaxCost > 0 && d.AvgCostUSD > p.MaxCost {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered, nil
}

func (s *Server) handleDestinationByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if s.Repo != nil {
		d, found, err := s.Repo.Get(id)
		if err != nil {
			s.Logger.Error().Err(err).Str("record_id", id).Msg("get destination from store")
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to read destination")
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, "not_found", "no destination with record_id "+id)
			return
		}
		writeJSON(w, http.StatusOK, d)
		return
	}

	for _, d := range s.Catalog {
		if d.RecordID == id {
			writeJSON(w, http.StatusOK, d)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "no destination with record_id "+id)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, planner.Analyze(s.Catalog))
}

func (s *Server) writeProfileError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "validation_error",
			"field":   verr.Field,
			"message": verr.Error(),
		})
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_profile", err.Error())
}

func (s *Server) writePipelineError(w http.ResponseWriter, err error) {
	var derr *domain.DataIntegrityError
	if errors.As(err, &derr) {
		s.Logger.Error().Str("record_id", derr.RecordID).Str("field", derr.Field).Msg("malformed catalog record")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":     "data_integrity_error",
			"record_id": derr.RecordID,
			"message":   derr.Error(),
		})
		return
	}
	s.Logger.Error().Err(err).Msg("pipeline failure")
	writeError(w, http.StatusInternalServerError, "internal_error", "failed to build itinerary")
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
