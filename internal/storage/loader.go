package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

// LoadDestinationsFromFile reads a destination catalog from a JSON file.
func LoadDestinationsFromFile(path string) ([]domain.Destination, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var dests []domain.Destination
	if err := json.Unmarshal(b, &dests); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return dests, nil
}

// LoadDestinationsFromCSV reads a catalog exported as CSV. Columns are
// resolved by header name, so optional columns (best_season, tags,
// budget_level) may be absent entirely. Multi-valued tags use ';' as the
// separator. A numeric field that fails to parse reports the offending
// record instead of defaulting silently.
func LoadDestinationsFromCSV(path string) ([]domain.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []domain.Destination
	for _, row := range rows[1:] {
		d := domain.Destination{
			RecordID:    field(row, "record_id"),
			City:        field(row, "city"),
			Country:     field(row, "country"),
			SiteName:    field(row, "site_name"),
			BestSeason:  field(row, "best_season"),
			Climate:     field(row, "climate"),
			BudgetLevel: field(row, "budget_level"),
		}

		for _, col := range []struct {
			name string
			dst  *float64
		}{
			{"avg_cost_usd", &d.AvgCostUSD},
			{"culture_score", &d.CultureScore},
			{"adventure_score", &d.AdventureScore},
			{"nature_score", &d.NatureScore},
			{"avg_rating", &d.AvgRating},
		} {
			raw := field(row, col.name)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &domain.DataIntegrityError{
					RecordID: d.RecordID,
					Field:    col.name,
					Reason:   fmt.Sprintf("not numeric: %q", raw),
				}
			}
			*col.dst = v
		}

		if raw := field(row, "unesco_site"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, &domain.DataIntegrityError{
					RecordID: d.RecordID,
					Field:    "unesco_site",
					Reason:   fmt.Sprintf("not boolean: %q", raw),
				}
			}
			d.UNESCOSite = v
		}

		if raw := field(row, "tags"); raw != "" {
			for _, t := range strings.Split(raw, ";") {
				if t = strings.TrimSpace(t); t != "" {
					d.Tags = append(d.Tags, t)
				}
			}
		}

		out = append(out, d)
	}
	return out, nil
}
