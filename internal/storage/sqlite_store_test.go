package storage

import (
	"path/filepath"
	"testing"

	"github.com/globetrek/itinerary-engine/internal/domain"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return store
}

func seedDestinations() []domain.Destination {
	return []domain.Destination{
		{RecordID: "REC-001", City: "Rome", Country: "Italy", SiteName: "Colosseum", AvgCostUSD: 180, BestSeason: "Spring", Climate: "Temperate", CultureScore: 100, AdventureScore: 40, NatureScore: 60, AvgRating: 4.8, UNESCOSite: true, Tags: []string{"History", "Architecture"}, BudgetLevel: "Mid-range"},
		{RecordID: "REC-002", City: "Cusco", Country: "Peru", SiteName: "Machu Picchu", AvgCostUSD: 100, BestSeason: "Spring", Climate: "Temperate", CultureScore: 100, AdventureScore: 96, NatureScore: 90, AvgRating: 4.9, UNESCOSite: true, Tags: []string{"History", "Adventure"}, BudgetLevel: "Budget"},
		{RecordID: "REC-003", City: "Cairo", Country: "Egypt", SiteName: "Pyramids of Giza", AvgCostUSD: 75, BestSeason: "Winter", Climate: "Warm", CultureScore: 100, AdventureScore: 70, NatureScore: 50, AvgRating: 4.7, UNESCOSite: true, Tags: []string{"History"}, BudgetLevel: "Budget"},
	}
}

func TestSQLiteStoreSeedAndReadBack(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.UpsertMany(seedDestinations()); err != nil {
		t.Fatalf("UpsertMany: %v", err)
	}

	n, err := store.CountDestinations()
	if err != nil {
		t.Fatalf("CountDestinations: %v", err)
	}
	if n != 3 {
		t.Fatalf("count=%d, want 3", n)
	}

	got, err := store.ListDestinations()
	if err != nil {
		t.Fatalf("ListDestinations: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	// Ordered by record_id; round-trip preserves every column.
	if got[0].RecordID != "REC-001" || got[0].SiteName != "Colosseum" || !got[0].UNESCOSite {
		t.Errorf("first record: %+v", got[0])
	}
	if len(got[1].Tags) != 2 || got[1].Tags[1] != "Adventure" {
		t.Errorf("tags round-trip: %v", got[1].Tags)
	}
	if got[2].AvgCostUSD != 75 || got[2].BestSeason != "Winter" {
		t.Errorf("third record: %+v", got[2])
	}
}

func TestSQLiteStoreReseedIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	seed := seedDestinations()

	if err := store.UpsertMany(seed); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := store.UpsertMany(seed); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	n, err := store.CountDestinations()
	if err != nil {
		t.Fatalf("CountDestinations: %v", err)
	}
	if n != 3 {
		t.Errorf("count after re-seed=%d, want 3", n)
	}
}

func TestSQLiteStoreGetDestination(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.UpsertMany(seedDestinations()); err != nil {
		t.Fatalf("UpsertMany: %v", err)
	}

	d, found, err := store.GetDestination("REC-002")
	if err != nil {
		t.Fatalf("GetDestination: %v", err)
	}
	if !found {
		t.Fatal("REC-002 not found")
	}
	if d.City != "Cusco" || d.AdventureScore != 96 {
		t.Errorf("record: %+v", d)
	}

	_, found, err = store.GetDestination("REC-999")
	if err != nil {
		t.Fatalf("GetDestination missing: %v", err)
	}
	if found {
		t.Error("REC-999 should not be found")
	}
}

func TestSQLiteStoreListFiltered(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.UpsertMany(seedDestinations()); err != nil {
		t.Fatalf("UpsertMany: %v", err)
	}

	tests := []struct {
		name    string
		city    string
		budget  string
		climate string
		maxCost float64
		wantIDs []string
	}{
		{"no filters", "", "", "", 0, []string{"REC-001", "REC-002", "REC-003"}},
		{"budget level", "", "Budget", "", 0, []string{"REC-002", "REC-003"}},
		{"climate", "", "", "Warm", 0, []string{"REC-003"}},
		{"max cost", "", "", "", 110, []string{"REC-002", "REC-003"}},
		{"city contains, case-insensitive", "cus", "", "", 0, []string{"REC-002"}},
		{"combined, empty result", "", "Budget", "Temperate", 80, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.ListDestinationsFiltered(tc.city, tc.budget, tc.climate, tc.maxCost)
			if err != nil {
				t.Fatalf("ListDestinationsFiltered: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d records, want %d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].RecordID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].RecordID, id)
				}
			}
		})
	}
}
