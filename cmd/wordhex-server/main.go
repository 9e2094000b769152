package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordhexgame/wordhex/assets"
	"github.com/wordhexgame/wordhex/internal/httpserver"
	"github.com/wordhexgame/wordhex/internal/puzzle"
	"github.com/wordhexgame/wordhex/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cat, err := loadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load puzzle catalog")
	}
	if cat.Len() == 0 {
		log.Fatal().Msg("puzzle catalog is empty")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/wordhex.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(cat, mem, db)
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Int("puzzles", cat.Len()).Msg("starting wordhex-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadCatalog reads CATALOG_FILE if set, otherwise the embedded defaults.
func loadCatalog() (*puzzle.Catalog, error) {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		return puzzle.LoadCatalogFile(path)
	}
	lines, err := assets.CatalogLines()
	if err != nil {
		return nil, err
	}
	return puzzle.LoadCatalog(strings.NewReader(strings.Join(lines, "\n")))
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
