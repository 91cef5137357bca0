package storage

import (
	"database/sql"
	"strings"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

// SQLiteStore persists the destination catalog. The pipeline itself only
// reads; writes exist to seed and maintain the catalog out of band.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS destinations (
  record_id TEXT PRIMARY KEY,
  city TEXT NOT NULL,
  country TEXT NOT NULL,
  site_name TEXT NOT NULL,
  avg_cost_usd REAL NOT NULL,
  best_season TEXT NOT NULL DEFAULT '',
  climate TEXT NOT NULL,
  culture_score REAL NOT NULL,
  adventure_score REAL NOT NULL,
  nature_score REAL NOT NULL,
  avg_rating REAL NOT NULL,
  unesco_site INTEGER NOT NULL DEFAULT 0,
  tags_json TEXT NOT NULL DEFAULT '[]',
  budget_level TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_destinations_city ON destinations(city);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_destinations_budget ON destinations(budget_level);`); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) CountDestinations() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&n)
	return n, err
}

// UpsertMany seeds the catalog without duplicating by record_id.
func (s *SQLiteStore) UpsertMany(items []domain.Destination) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO destinations
(record_id, city, country, site_name, avg_cost_usd, best_season, climate, culture_score, adventure_score, nature_score, avg_rating, unesco_site, tags_json, budget_level)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range items {
		tags, _ := json.Marshal(d.Tags)

		if _, err := stmt.Exec(
			d.RecordID, d.City, d.Country, d.SiteName, d.AvgCostUSD,
			d.BestSeason, d.Climate, d.CultureScore, d.AdventureScore,
			d.NatureScore, d.AvgRating, d.UNESCOSite, string(tags), d.BudgetLevel,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetDestination(id string) (domain.Destination, bool, error) {
	var d domain.Destination
	var tagsJSON string

	err := s.db.QueryRow(`
SELECT record_id, city, country, site_name, avg_cost_usd, best_season, climate, culture_score, adventure_score, nature_score, avg_rating, unesco_site, tags_json, budget_level
FROM destinations WHERE record_id = ?
`, id).Scan(
		&d.RecordID, &d.City, &d.Country, &d.SiteName, &d.AvgCostUSD,
		&d.BestSeason, &d.Climate, &d.CultureScore, &d.AdventureScore,
		&d.NatureScore, &d.AvgRating, &d.UNESCOSite, &tagsJSON, &d.BudgetLevel,
	)
	if err == sql.ErrNoRows {
		return domain.Destination{}, false, nil
	}
	if err != nil {
		return domain.Destination{}, false, err
	}

	_ = json.Unmarshal([]byte(tagsJSON), &d.Tags)
	return d, true, nil
}

// ListDestinations returns the whole catalog ordered by record_id. The
// engine works on in-memory copies, so one full read at startup is the
// common path.
func (s *SQLiteStore) ListDestinations() ([]domain.Destination, error) {
	return s.queryDestinations(`
SELECT record_id, city, country, site_name, avg_cost_usd, best_season, climate, culture_score, adventure_score, nature_score, avg_rating, unesco_site, tags_json, budget_level
FROM destinations
ORDER BY record_id
`)
}

// ListDestinationsFiltered applies optional catalog-side filters, for the
// browse endpoints rather than the scoring pipeline.
func (s *SQLiteStore) ListDestinationsFiltered(city, budgetLevel, climate string, maxCost float64) ([]domain.Destination, error) {
	where := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if strings.TrimSpace(city) != "" {
		where = append(where, "LOWER(city) LIKE '%' || LOWER(?) || '%'")
		args = append(args, city)
	}
	if budgetLevel != "" {
		where = append(where, "budget_level = ?")
		args = append(args, budgetLevel)
	}
	if climate != "" {
		where = append(where, "climate = ?")
		args = append(args, climate)
	}
	if maxCost > 0 {
		where = append(where, "avg_cost_usd <= ?")
		args = append(args, maxCost)
	}

	query := `
SELECT record_id, city, country, site_name, avg_cost_usd, best_season, climate, culture_score, adventure_score, nature_score, avg_rating, unesco_site, tags_json, budget_level
FROM destinations
`
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY record_id"

	return s.queryDestinations(query, args...)
}

func (s *SQLiteStore) queryDestinations(query string, args ...any) ([]domain.Destination, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		var tagsJSON string

		if err := rows.Scan(
			&d.RecordID, &d.City, &d.Country, &d.SiteName, &d.AvgCostUSD,
			&d.BestSeason, &d.Climate, &d.CultureScore, &d.AdventureScore,
			&d.NatureScore, &d.AvgRating, &d.UNESCOSite, &tagsJSON, &d.BudgetLevel,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(tagsJSON), &d.Tags)
		out = append(out, d)
	}
	return out, rows.Err()
}
