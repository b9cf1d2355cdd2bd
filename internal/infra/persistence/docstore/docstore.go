package docstore

import (
	"context"
	"log/slog"

	"guestbook/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/awsdynamodb/v2"
	_ "gocloud.dev/docstore/gcpfirestore"
	_ "gocloud.dev/docstore/memdocstore"
)

// OpenCollection opens the collection named by url and closes it on stop.
// Examples: mem://wishes/id, dynamodb://wishes?partition_key=id,
// firestore://projects/p/databases/(default)/documents/wishes?name_field=id.
func OpenCollection(ctx context.Context, lc fx.Lifecycle, url string, logger *slog.Logger) (*docstore.Collection, error) {
	coll, err := docstore.OpenCollection(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open docstore collection %q", url)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing docstore collection")

			return coll.Close()
		},
	})

	return coll, nil
}
