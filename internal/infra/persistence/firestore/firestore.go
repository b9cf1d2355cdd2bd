package firestore

import (
	"context"
	"log/slog"

	"guestbook/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// NewClient opens the Firestore client of the Firebase app and closes it on stop.
func NewClient(ctx context.Context, lc fx.Lifecycle, app *firebase.App, logger *slog.Logger) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
