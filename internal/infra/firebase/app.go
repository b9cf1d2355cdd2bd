// Package firebase builds the Firebase app shared by Firestore and Cloud Messaging.
package firebase

import (
	"context"

	"guestbook/config"
	"guestbook/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes a Firebase app. Without a credentials path the
// application default credentials are used.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if cfg == nil {
		return nil, errors.New("firebase is not configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
