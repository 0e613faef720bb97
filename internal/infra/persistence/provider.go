// Package persistence selects the repository implementations for the configured storage driver.
package persistence

import (
	"log/slog"

	"offerfeed/config"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/infra/persistence/memory"
	"offerfeed/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Repositories is the set of repositories the use cases depend on.
type Repositories struct {
	fx.Out

	CommerceRepo repository.CommerceRepository
	OfferRepo    repository.OfferRepository
	FollowRepo   repository.FollowRepository
	TxManager    repository.TransactionManager
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	if params.Config.UsesMemoryStorage() {
		return newMemoryRepositories(params)
	}

	if params.DB == nil {
		return Repositories{}, errors.New("postgres storage selected but no database connection is available")
	}

	return Repositories{
		CommerceRepo: postgres.NewCommerceRepository(params.DB),
		OfferRepo:    postgres.NewOfferRepository(params.DB),
		FollowRepo:   postgres.NewFollowRepository(params.DB),
		TxManager:    postgres.NewTransactionManager(params.DB),
	}, nil
}

func newMemoryRepositories(params Params) (Repositories, error) {
	store := memory.NewStore()

	if seedFile := params.Config.Storage.SeedFile; seedFile != "" {
		seed, err := memory.LoadSeed(seedFile)
		if err != nil {
			return Repositories{}, err
		}
		if err := store.Apply(seed); err != nil {
			return Repositories{}, errors.Wrap(err, "apply seed failed")
		}

		params.Logger.Info("Memory store seeded",
			slog.String("file", seedFile),
			slog.Int("commerces", len(seed.Commerces)),
			slog.Int("offers", len(seed.Offers)),
		)
	}

	return Repositories{
		CommerceRepo: store,
		OfferRepo:    store,
		FollowRepo:   store,
		TxManager:    memory.NewTransactionManager(store),
	}, nil
}
