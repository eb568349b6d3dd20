// Package config provides configuration management for watchseed.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Paths: catalog, overrides, era_definitions, output, app_public, app_dist,
//     hero_content
//   - API: wikipedia_url, wikidata_url, article_url, user_agent,
//     timeout_sec, search_limit
//   - Database: host, port, user, password, database, ssl_mode
//   - Storage: endpoint, access_key, secret_key, use_ssl, region, bucket,
//     object_key, timeout_sec
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Export.SQLitePath, Export.WithPostgres (per-command)
//   - WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use WATCHSEED_ prefix with underscores for nesting:
//
//	WATCHSEED_PATHS_OUTPUT=data/seed.json
//	WATCHSEED_API_TIMEOUT_SEC=15
//	WATCHSEED_LOG_LEVEL=info
package config

// Config represents the complete watchseed configuration.
type Config struct {
	// Paths contains locations of input and output files.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	// API contains settings of the Wikipedia and Wikidata clients.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Database contains PostgreSQL settings used by the export command.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Export contains settings specific to the export command.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Storage contains S3-compatible object storage settings used by the
	// publish command.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WithProgress enables progress bars during fetching.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// PathsConfig contains file locations. Relative paths are resolved
// against the working directory.
type PathsConfig struct {
	// Catalog is the brand/collection configuration document (required).
	Catalog string `mapstructure:"catalog" yaml:"catalog"`

	// Overrides holds manually curated introducedYear and type values
	// keyed by collection slug (optional).
	Overrides string `mapstructure:"overrides" yaml:"overrides"`

	// EraDefinitions holds hand-authored eras keyed by collection slug
	// (optional).
	EraDefinitions string `mapstructure:"era_definitions" yaml:"era_definitions"`

	// Output is where the seed document is written.
	Output string `mapstructure:"output" yaml:"output"`

	// AppPublic is the copy destination inside the front-end sources.
	AppPublic string `mapstructure:"app_public" yaml:"app_public"`

	// AppDist is the copy destination inside the front-end build. It is
	// used only if its directory exists.
	AppDist string `mapstructure:"app_dist" yaml:"app_dist"`

	// HeroContent is where the hero command writes Wikipedia intro
	// extracts mapped to era slugs.
	HeroContent string `mapstructure:"hero_content" yaml:"hero_content"`
}

// APIConfig contains settings for the remote JSON APIs.
type APIConfig struct {
	// WikipediaURL is the MediaWiki API endpoint of English Wikipedia.
	WikipediaURL string `mapstructure:"wikipedia_url" yaml:"wikipedia_url"`

	// WikidataURL is the MediaWiki API endpoint of Wikidata.
	WikidataURL string `mapstructure:"wikidata_url" yaml:"wikidata_url"`

	// ArticleURL is the prefix for building article links from titles.
	ArticleURL string `mapstructure:"article_url" yaml:"article_url"`

	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// TimeoutSec is the per-request timeout in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// SearchLimit is the number of candidates requested from the
	// Wikidata search. Only the first one is used.
	SearchLimit int `mapstructure:"search_limit" yaml:"search_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ExportConfig contains settings specific to the export command.
type ExportConfig struct {
	// SQLitePath is the SQLite file to (re)create. Empty means no SQLite
	// export.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// WithPostgres enables export to the PostgreSQL database from
	// Database settings.
	WithPostgres bool `mapstructure:"with_postgres" yaml:"with_postgres"`
}

// StorageConfig contains S3-compatible object storage (MinIO, AWS S3)
// settings.
type StorageConfig struct {
	// Endpoint is host[:port] of the storage service, a scheme is ignored.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`

	// UseSSL switches to https.
	UseSSL bool `mapstructure:"use_ssl" yaml:"use_ssl"`

	// Region of the bucket, can be empty for MinIO.
	Region string `mapstructure:"region" yaml:"region"`

	// Bucket receives the seed. It is created when missing.
	Bucket string `mapstructure:"bucket" yaml:"bucket"`

	// ObjectKey is the name of the uploaded seed object.
	ObjectKey string `mapstructure:"object_key" yaml:"object_key"`

	// TimeoutSec limits connection setup and the wait for a response.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Paths: PathsConfig{
			Catalog:        "data/config.json",
			Overrides:      "data/collection_overrides.json",
			EraDefinitions: "data/era_definitions.json",
			Output:         "data/seed.json",
			AppPublic:      "app/public/seed.json",
			AppDist:        "app/dist/seed.json",
			HeroContent:    "data/wikipedia_hero_content.json",
		},
		API: APIConfig{
			WikipediaURL: "https://en.wikipedia.org/w/api.php",
			WikidataURL:  "https://www.wikidata.org/w/api.php",
			ArticleURL:   "https://en.wikipedia.org/wiki/",
			UserAgent:    "ProjectWatch/1.0",
			TimeoutSec:   15,
			SearchLimit:  5,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "watchseed",
			SSLMode:  "disable",
		},
		Storage: StorageConfig{
			Endpoint:   "localhost:9000",
			AccessKey:  "minioadmin",
			SecretKey:  "minioadmin",
			Bucket:     "watchseed",
			ObjectKey:  "seed.json",
			TimeoutSec: 30,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WithProgress: true,
	}

	return res
}
