package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/globetrek/itinerary-engine/internal/domain"
	httpapi "github.com/globetrek/itinerary-engine/internal/http"
	"github.com/globetrek/itinerary-engine/internal/planner"
	"github.com/globetrek/itinerary-engine/internal/storage"
)

type Config struct {
	Address     string
	CatalogPath string
	CatalogDB   string
	ConfigPath  string
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using system environment")
	}
	cfg := loadConfig()

	catalog, store, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}
	if store != nil {
		defer store.Close()
	}
	logger.Info().Int("records", len(catalog)).Msg("catalog loaded")

	plannerCfg, err := planner.LoadConfigFromFile(cfg.ConfigPath)
	if err != nil {
		logger.Warn().Err(err).Msg("using default planner config")
		plannerCfg = planner.DefaultConfig()
	}

	engine := planner.NewEngine(plannerCfg, logger)
	srv := httpapi.NewServer(engine, catalog, logger)
	if store != nil {
		srv.Repo = &httpapi.SQLiteDestinationsRepo{Store: store}
	}

	logger.Info().Str("address", cfg.Address).Msg("API listening")
	if err := http.ListenAndServe(cfg.Address, srv.Routes()); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// loadCatalog reads the catalog from the configured file and, when a
// SQLite path is set, seeds the store and reads the catalog back from it
// so out-of-band edits to the database win over the seed file. The
// returned store (nil without CATALOG_DB) stays open to back the browse
// endpoints; the caller owns closing it.
func loadCatalog(cfg Config, logger zerolog.Logger) ([]domain.Destination, *storage.SQLiteStore, error) {
	var seed []domain.Destination
	var err error
	if strings.EqualFold(filepath.Ext(cfg.CatalogPath), ".csv") {
		seed, err = storage.LoadDestinationsFromCSV(cfg.CatalogPath)
	} else {
		seed, err = storage.LoadDestinationsFromFile(cfg.CatalogPath)
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.CatalogDB == "" {
		return seed, nil, nil
	}

	store, err := storage.OpenSQLite(cfg.CatalogDB)
	if err != nil {
		return nil, nil, err
	}

	if err := store.EnsureSchema(); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	if err := store.UpsertMany(seed); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	n, err := store.CountDestinations()
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	logger.Info().Str("db", cfg.CatalogDB).Int("records", n).Msg("catalog store ready")

	catalog, err := store.ListDestinations()
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return catalog, store, nil
}

func loadConfig() Config {
	return Config{
		Address:     getEnv("API_ADDRESS", ":8080"),
		CatalogPath: getEnv("CATALOG_PATH", "data/destinations.json"),
		CatalogDB:   getEnv("CATALOG_DB", ""),
		ConfigPath:  getEnv("PLANNER_CONFIG_PATH", "configs/planner.json"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
