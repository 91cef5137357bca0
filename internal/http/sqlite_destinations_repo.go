package httpapi

import (
	"github.com/globetrek/itinerary-engine/internal/domain"
	"github.com/globetrek/itinerary-engine/internal/storage"
)

// ListParams carries the catalog-side browse filters.
type ListParams struct {
	City        string
	BudgetLevel string
	Climate     string
	MaxCost     float64
}

// SQLiteDestinationsRepo serves the browse endpoints from the catalog
// store instead of the in-memory slice, so out-of-band edits to the
// database are visible without a restart.
type SQLiteDestinationsRepo struct {
	Store *storage.SQLiteStore
}

func (r *SQLiteDestinationsRepo) List(p ListParams) ([]domain.Destination, error) {
	if r == nil || r.Store == nil {
		return nil, nil
	}
	return r.Store.ListDestinationsFiltered(p.City, p.BudgetLevel, p.Climate, p.MaxCost)
}

func (r *SQLiteDestinationsRepo) Get(id string) (domain.Destination, bool, error) {
	if r == nil || r.Store == nil {
		return domain.Destination{}, false, nil
	}
	return r.Store.GetDestination(id)
}
