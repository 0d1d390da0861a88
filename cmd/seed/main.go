// Command seed fills the configured database with a demo account
// (demo@example.com / password123) and five sample notes.
package main

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log := logger.NewLogger("note-seed")

	cfg, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	cost := cfg.App.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	s := &seeder{
		users:      store.NewUserRepository(db, log),
		notes:      store.NewNoteRepository(db, log),
		bcryptCost: cost,
		now:        time.Now,
	}

	result, err := s.seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().
		Str("email", result.User.Email).
		Bool("user_created", result.UserCreated).
		Int("notes_created", result.NotesCreated).
		Msg("seed finished")
}
