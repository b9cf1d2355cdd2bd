package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"guestbook/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultCacheTTL           = 30 * time.Second
	defaultWatchPollInterval  = 5 * time.Second
	defaultGuestPassTTL       = 180 * 24 * time.Hour
	defaultQRCodeSize         = 256

	defaultNotificationTopicPrefix = "invitation-"
	defaultNotificationTitle       = "New wish"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	// Store selects the backend holding wishes
	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis configuration for the wish list cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cache CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for WishPosted events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notification configuration for the notifier worker
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// GuestPass configuration for signed guest links
	GuestPass *GuestPassConfig `json:"guestPass" yaml:"guestPass"`

	// QRCode configuration for invitation share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Watch WatchConfig `json:"watch" yaml:"watch"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig limits wish submissions per client IP
type RateLimitConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Rate    float64       `json:"rate" yaml:"rate"`
	Burst   int           `json:"burst" yaml:"burst"`
	Expires time.Duration `json:"expires" yaml:"expires"`
}

// StoreConfig defines which document store backs the wishes collection
type StoreConfig struct {
	// Driver is one of "firestore", "postgres" or "docstore"
	Driver string `json:"driver" yaml:"driver"`

	// Collection name for Firestore
	Collection string `json:"collection" yaml:"collection"`

	// DocstoreURL is a Go CDK docstore URL, e.g. mem://wishes/id or dynamodb://wishes?partition_key=id
	DocstoreURL string `json:"docstoreUrl" yaml:"docstoreUrl"`
}

// PostgresConfig embeds the go-lib connection settings
type PostgresConfig struct {
	postgres.DBConn `mapstructure:",squash" yaml:",inline"`

	// AutoMigrate runs the embedded goose migrations on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// FirebaseConfig defines Firebase configuration for Firestore and FCM
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RedisConfig defines the connection for the wish list cache
type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// Addr returns host:port of the Redis server
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

type CacheConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotificationConfig controls host push notifications for new wishes
type NotificationConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
	Title       string `json:"title" yaml:"title"`
}

// GuestPassConfig defines the signing key for guest passes
type GuestPassConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

type WatchConfig struct {
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is aligned with the YAML key casing, e.g. STORE_DOCSTOREURL -> store.docstoreUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = constants.StoreDriverDocstore
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = constants.DefaultWishCollection
	}
	if cfg.Store.Driver == constants.StoreDriverDocstore && cfg.Store.DocstoreURL == "" {
		cfg.Store.DocstoreURL = "mem://" + cfg.Store.Collection + "/id"
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Watch.PollInterval <= 0 {
		cfg.Watch.PollInterval = defaultWatchPollInterval
	}
	if cfg.GuestPass != nil && cfg.GuestPass.TTL <= 0 {
		cfg.GuestPass.TTL = defaultGuestPassTTL
	}
	if cfg.QRCode != nil && cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.Notification != nil {
		if cfg.Notification.TopicPrefix == "" {
			cfg.Notification.TopicPrefix = defaultNotificationTopicPrefix
		}
		if cfg.Notification.Title == "" {
			cfg.Notification.Title = defaultNotificationTitle
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
