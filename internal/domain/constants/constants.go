// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverDocstore  = "docstore"
)

// DefaultWishCollection is the Firestore/docstore collection holding wishes.
const DefaultWishCollection = "wishes"
