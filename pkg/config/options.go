package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptPathsCatalog sets the location of the catalog document.
func OptPathsCatalog(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths Catalog", s) {
			c.Paths.Catalog = s
		}
	}
}

// OptPathsOverrides sets the location of the overrides document.
func OptPathsOverrides(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths Overrides", s) {
			c.Paths.Overrides = s
		}
	}
}

// OptPathsEraDefinitions sets the location of the era definitions
// document.
func OptPathsEraDefinitions(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths Era Definitions", s) {
			c.Paths.EraDefinitions = s
		}
	}
}

// OptPathsOutput sets where the seed document is written.
func OptPathsOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths Output", s) {
			c.Paths.Output = s
		}
	}
}

// OptPathsAppPublic sets the copy destination in front-end sources.
func OptPathsAppPublic(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths App Public", s) {
			c.Paths.AppPublic = s
		}
	}
}

// OptPathsAppDist sets the copy destination in front-end build.
func OptPathsAppDist(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths App Dist", s) {
			c.Paths.AppDist = s
		}
	}
}

// OptPathsHeroContent sets where hero content is written.
func OptPathsHeroContent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths Hero Content", s) {
			c.Paths.HeroContent = s
		}
	}
}

// OptAPIWikipediaURL sets the Wikipedia API endpoint.
func OptAPIWikipediaURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("API Wikipedia URL", s) {
			c.API.WikipediaURL = s
		}
	}
}

// OptAPIWikidataURL sets the Wikidata API endpoint.
func OptAPIWikidataURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("API Wikidata URL", s) {
			c.API.WikidataURL = s
		}
	}
}

// OptAPIArticleURL sets the prefix used to build article links.
func OptAPIArticleURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("API Article URL", s) {
			c.API.ArticleURL = s
		}
	}
}

// OptAPIUserAgent sets the User-Agent header of every request.
func OptAPIUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API User Agent", s) {
			c.API.UserAgent = s
		}
	}
}

// OptAPITimeoutSec sets the per-request timeout in seconds.
func OptAPITimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.TimeoutSec = i
		}
	}
}

// OptAPISearchLimit sets the number of candidates asked from the
// Wikidata search.
func OptAPISearchLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("API Search Limit", i) {
			c.API.SearchLimit = i
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptStorageEndpoint sets host[:port] of the object storage. A scheme
// prefix is removed.
func OptStorageEndpoint(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimSuffix(s, "/")
	return func(c *Config) {
		if isValidString("Storage Endpoint", s) {
			c.Storage.Endpoint = s
		}
	}
}

// OptStorageAccessKey sets the access key ID of the object storage.
func OptStorageAccessKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage Access Key", s) {
			c.Storage.AccessKey = s
		}
	}
}

// OptStorageSecretKey sets the secret access key of the object storage.
func OptStorageSecretKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage Secret Key", s) {
			c.Storage.SecretKey = s
		}
	}
}

// OptStorageUseSSL toggles https for the object storage.
func OptStorageUseSSL(b bool) Option {
	return func(c *Config) {
		c.Storage.UseSSL = b
	}
}

// OptStorageRegion sets the bucket region. Empty value is allowed.
func OptStorageRegion(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Storage.Region = s
	}
}

// OptStorageBucket sets the bucket that receives the seed.
func OptStorageBucket(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage Bucket", s) {
			c.Storage.Bucket = s
		}
	}
}

// OptStorageObjectKey sets the object name of the uploaded seed.
func OptStorageObjectKey(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "/")
	return func(c *Config) {
		if isValidString("Storage Object Key", s) {
			c.Storage.ObjectKey = s
		}
	}
}

// OptStorageTimeoutSec sets the object storage timeout in seconds.
func OptStorageTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Storage Timeout", i) {
			c.Storage.TimeoutSec = i
		}
	}
}

// OptExportSQLitePath sets the SQLite file for the export command.
// Runtime-only field - not in ToOptions().
func OptExportSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export SQLite Path", s) {
			c.Export.SQLitePath = s
		}
	}
}

// OptExportWithPostgres enables export to PostgreSQL.
// Runtime-only field - not in ToOptions().
func OptExportWithPostgres(b bool) Option {
	return func(c *Config) {
		c.Export.WithPostgres = b
	}
}

// OptWithProgress toggles progress bars.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
