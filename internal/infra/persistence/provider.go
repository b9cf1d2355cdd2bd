// Package persistence selects the store backing the wishes collection.
package persistence

import (
	"context"
	"log/slog"

	"guestbook/config"
	"guestbook/internal/domain/constants"
	"guestbook/internal/domain/repository"
	"guestbook/internal/errors"
	firebaseinfra "guestbook/internal/infra/firebase"
	"guestbook/internal/infra/persistence/docstore"
	"guestbook/internal/infra/persistence/firestore"
	"guestbook/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the selected store to the use cases
type Result struct {
	fx.Out

	TxManager      repository.TransactionManager
	WishRepository repository.WishRepository
}

// New opens the store named by store.driver
func New(params Params) (Result, error) {
	cfg := params.Config.Store
	logger := params.Logger.With(slog.String("store_driver", cfg.Driver))

	switch cfg.Driver {
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using PostgreSQL wish store")

		return Result{
			TxManager:      postgres.NewTransactionManager(db),
			WishRepository: postgres.NewWishRepository(db),
		}, nil

	case constants.StoreDriverFirestore:
		app, err := firebaseinfra.NewApp(params.Ctx, params.Config.Firebase)
		if err != nil {
			return Result{}, err
		}
		client, err := firestore.NewClient(params.Ctx, params.Lc, app, params.Logger)
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using Firestore wish store", slog.String("collection", cfg.Collection))

		return Result{
			TxManager:      firestore.NewTransactionManager(client, cfg.Collection),
			WishRepository: firestore.NewWishRepository(client, cfg.Collection),
		}, nil

	case constants.StoreDriverDocstore:
		coll, err := docstore.OpenCollection(params.Ctx, params.Lc, cfg.DocstoreURL, params.Logger)
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using docstore wish store", slog.String("url", cfg.DocstoreURL))

		return Result{
			TxManager:      docstore.NewTransactionManager(coll),
			WishRepository: docstore.NewWishRepository(coll),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}
}

// Module provides the wish store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
