package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Export, WithProgress).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Paths.Catalog
	if s != "" {
		res = append(res, OptPathsCatalog(s))
	}
	s = c.Paths.Overrides
	if s != "" {
		res = append(res, OptPathsOverrides(s))
	}
	s = c.Paths.EraDefinitions
	if s != "" {
		res = append(res, OptPathsEraDefinitions(s))
	}
	s = c.Paths.Output
	if s != "" {
		res = append(res, OptPathsOutput(s))
	}
	s = c.Paths.AppPublic
	if s != "" {
		res = append(res, OptPathsAppPublic(s))
	}
	s = c.Paths.AppDist
	if s != "" {
		res = append(res, OptPathsAppDist(s))
	}
	s = c.Paths.HeroContent
	if s != "" {
		res = append(res, OptPathsHeroContent(s))
	}

	s = c.API.WikipediaURL
	if s != "" {
		res = append(res, OptAPIWikipediaURL(s))
	}
	s = c.API.WikidataURL
	if s != "" {
		res = append(res, OptAPIWikidataURL(s))
	}
	s = c.API.ArticleURL
	if s != "" {
		res = append(res, OptAPIArticleURL(s))
	}
	s = c.API.UserAgent
	if s != "" {
		res = append(res, OptAPIUserAgent(s))
	}
	i = c.API.TimeoutSec
	if i > 0 {
		res = append(res, OptAPITimeoutSec(i))
	}
	i = c.API.SearchLimit
	if i > 0 {
		res = append(res, OptAPISearchLimit(i))
	}

	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	s = c.Storage.Endpoint
	if s != "" {
		res = append(res, OptStorageEndpoint(s))
	}
	s = c.Storage.AccessKey
	if s != "" {
		res = append(res, OptStorageAccessKey(s))
	}
	s = c.Storage.SecretKey
	if s != "" {
		res = append(res, OptStorageSecretKey(s))
	}
	res = append(res, OptStorageUseSSL(c.Storage.UseSSL))
	res = append(res, OptStorageRegion(c.Storage.Region))
	s = c.Storage.Bucket
	if s != "" {
		res = append(res, OptStorageBucket(s))
	}
	s = c.Storage.ObjectKey
	if s != "" {
		res = append(res, OptStorageObjectKey(s))
	}
	i = c.Storage.TimeoutSec
	if i > 0 {
		res = append(res, OptStorageTimeoutSec(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid http(s) URL, ignoring '%s'",
			name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
