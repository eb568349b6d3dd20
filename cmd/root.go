/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/internal/iofs"
	"github.com/gnames/watchseed/internal/iologger"
	app "github.com/gnames/watchseed/pkg"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	runID   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	root := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "watchseed",
		Short:   "Watchseed builds the watch catalog seed from Wikipedia and Wikidata",
		Long: `Watchseed fetches reference data about watch brands and their
collections from the Wikipedia and Wikidata APIs and writes a JSON seed
document for the watch catalog front-end.

Commands:
  - fetch:   build data/seed.json (default when no command is given)
  - copy:    copy the seed into the front-end
  - export:  store the seed in SQLite and/or PostgreSQL tables
  - publish: upload the seed to S3-compatible object storage
  - hero:    map Wikipedia intros to collection eras

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (WATCHSEED_*, also read from ./.env)
  3. Config file (~/.config/watchseed/config.yaml)
  4. Built-in defaults

Nested fields use underscores (paths.output -> WATCHSEED_PATHS_OUTPUT).`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "watchseed version" prefix
	root.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	root.Flags().BoolP("version", "V", false, "version for watchseed")

	root.AddCommand(
		getFetchCmd(),
		getCopyCmd(),
		getExportCmd(),
		getPublishCmd(),
		getHeroCmd(),
	)
	return root
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	runID = uuid.NewString()

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err = iologger.Init(config.LogDir(homeDir), defaultLog, "run_id", runID)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env is optional, variables already in the environment win
	if err = godotenv.Load(); err == nil {
		slog.Info("Environment loaded from .env")
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, "run_id", runID)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("WATCHSEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Paths configuration
	v.BindEnv("paths.catalog", "WATCHSEED_PATHS_CATALOG")
	v.BindEnv("paths.overrides", "WATCHSEED_PATHS_OVERRIDES")
	v.BindEnv("paths.era_definitions", "WATCHSEED_PATHS_ERA_DEFINITIONS")
	v.BindEnv("paths.output", "WATCHSEED_PATHS_OUTPUT")
	v.BindEnv("paths.app_public", "WATCHSEED_PATHS_APP_PUBLIC")
	v.BindEnv("paths.app_dist", "WATCHSEED_PATHS_APP_DIST")
	v.BindEnv("paths.hero_content", "WATCHSEED_PATHS_HERO_CONTENT")

	// API configuration
	v.BindEnv("api.wikipedia_url", "WATCHSEED_API_WIKIPEDIA_URL")
	v.BindEnv("api.wikidata_url", "WATCHSEED_API_WIKIDATA_URL")
	v.BindEnv("api.article_url", "WATCHSEED_API_ARTICLE_URL")
	v.BindEnv("api.user_agent", "WATCHSEED_API_USER_AGENT")
	v.BindEnv("api.timeout_sec", "WATCHSEED_API_TIMEOUT_SEC")
	v.BindEnv("api.search_limit", "WATCHSEED_API_SEARCH_LIMIT")

	// Database configuration
	v.BindEnv("database.host", "WATCHSEED_DATABASE_HOST")
	v.BindEnv("database.port", "WATCHSEED_DATABASE_PORT")
	v.BindEnv("database.user", "WATCHSEED_DATABASE_USER")
	v.BindEnv("database.password", "WATCHSEED_DATABASE_PASSWORD")
	v.BindEnv("database.database", "WATCHSEED_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "WATCHSEED_DATABASE_SSL_MODE")

	// Storage configuration
	v.BindEnv("storage.endpoint", "WATCHSEED_STORAGE_ENDPOINT")
	v.BindEnv("storage.access_key", "WATCHSEED_STORAGE_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "WATCHSEED_STORAGE_SECRET_KEY")
	v.BindEnv("storage.use_ssl", "WATCHSEED_STORAGE_USE_SSL")
	v.BindEnv("storage.region", "WATCHSEED_STORAGE_REGION")
	v.BindEnv("storage.bucket", "WATCHSEED_STORAGE_BUCKET")
	v.BindEnv("storage.object_key", "WATCHSEED_STORAGE_OBJECT_KEY")
	v.BindEnv("storage.timeout_sec", "WATCHSEED_STORAGE_TIMEOUT_SEC")

	// Log configuration
	v.BindEnv("log.level", "WATCHSEED_LOG_LEVEL")
	v.BindEnv("log.format", "WATCHSEED_LOG_FORMAT")
	v.BindEnv("log.destination", "WATCHSEED_LOG_DESTINATION")

	v.AutomaticEnv()
}
