// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"

	"github.com/teradata-labs/chartsense/pkg/dataset"
	"github.com/teradata-labs/chartsense/pkg/visualization"
)

const (
	// ServiceName for keyring storage
	ServiceName = "chartsense"

	// DefaultConfigFileName is searched for without extension.
	DefaultConfigFileName = "chartsense"

	// EnvPrefix prefixes every environment override, e.g. CHARTSENSE_SERVER_PORT.
	EnvPrefix = "CHARTSENSE"
)

// Config is the merged configuration for every command.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	SQL     SQLConfig     `mapstructure:"sql"`
}

// ServerConfig configures 'chartsense serve'.
type ServerConfig struct {
	Host         string     `mapstructure:"host"`
	Port         int        `mapstructure:"port"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	Metrics      bool       `mapstructure:"metrics"`
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig mirrors the server's CORS settings.
type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LexiconConfig points at an optional keyword file.
type LexiconConfig struct {
	Path       string `mapstructure:"path"`
	HotReload  bool   `mapstructure:"hot_reload"`
	DebounceMs int    `mapstructure:"debounce_ms"`
}

// LoggingConfig configures internal/log.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how 'chartsense suggest' renders results.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Theme  string `mapstructure:"theme"`
	Color  bool   `mapstructure:"color"`
}

// SQLConfig holds defaults for SQL sources. DSN wins over the individual
// connection fields.
type SQLConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"` // From CLI/env/keyring only
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"` // From CLI/env/keyring only
	SSLMode  string `mapstructure:"sslmode"`
}

// ResolveDSN returns DSN, or builds one from the connection fields.
// An empty result means no database is configured.
func (s SQLConfig) ResolveDSN() (string, error) {
	if s.DSN != "" || s.Database == "" {
		return s.DSN, nil
	}
	return dataset.BuildDSN(s.Driver, dataset.ConnConfig{
		Host:     s.Host,
		Port:     s.Port,
		Database: s.Database,
		User:     s.User,
		Password: s.Password,
		SSLMode:  s.SSLMode,
	})
}

// ConfigDir is the per-user configuration directory.
func ConfigDir() string {
	if dir := os.Getenv("CHARTSENSE_HOME"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "chartsense")
	}
	return "."
}

// LoadConfig loads configuration from multiple sources with proper priority:
// 1. Command line flags (highest priority)
// 2. Environment variables
// 3. Config file
// 4. Defaults (lowest priority)
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(ConfigDir())
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/chartsense/")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
		// no file; defaults, env and flags still apply
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Non-fatal: keyring might not be available - user can provide secrets via CLI/env
	_ = loadSecretsFromKeyring(&config)

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.max_body_bytes", 10<<20)
	viper.SetDefault("server.metrics", true)
	viper.SetDefault("server.cors.enabled", true)
	viper.SetDefault("server.cors.allowed_origins", []string{"*"})

	viper.SetDefault("lexicon.path", "")
	viper.SetDefault("lexicon.hot_reload", true)
	viper.SetDefault("lexicon.debounce_ms", 500)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.theme", "dark")
	viper.SetDefault("output.color", true)

	viper.SetDefault("sql.driver", "postgres")
	viper.SetDefault("sql.dsn", "")
	viper.SetDefault("sql.host", "")
	viper.SetDefault("sql.port", 0)
	viper.SetDefault("sql.database", "")
	viper.SetDefault("sql.user", "")
	viper.SetDefault("sql.password", "")
	viper.SetDefault("sql.sslmode", "")
}

// SecretMapping defines how to load a secret from keyring into the config.
type SecretMapping struct {
	KeyringKey string
	Setter     func(*Config, string)
	IsSet      func(*Config) bool // Returns true if the value is already set (skip keyring lookup)
}

// GetSecretMappings returns all secret mappings for the application.
func GetSecretMappings() []SecretMapping {
	return []SecretMapping{
		{
			KeyringKey: "sql_dsn",
			Setter:     func(c *Config, val string) { c.SQL.DSN = val },
			IsSet:      func(c *Config) bool { return c.SQL.DSN != "" },
		},
		{
			KeyringKey: "sql_password",
			Setter:     func(c *Config, val string) { c.SQL.Password = val },
			IsSet:      func(c *Config) bool { return c.SQL.Password != "" },
		},
	}
}

func loadSecretsFromKeyring(config *Config) error {
	for _, mapping := range GetSecretMappings() {
		if mapping.IsSet(config) {
			continue
		}
		value, err := GetSecretFromKeyring(mapping.KeyringKey)
		if err == nil && value != "" {
			mapping.Setter(config, value)
		}
	}
	return nil
}

// GetSecretFromKeyring retrieves a secret from the system keyring.
func GetSecretFromKeyring(key string) (string, error) {
	return keyring.Get(ServiceName, key)
}

// SaveSecretToKeyring saves a secret to the system keyring.
func SaveSecretToKeyring(key, value string) error {
	return keyring.Set(ServiceName, key, value)
}

// DeleteSecretFromKeyring removes a secret from the system keyring.
func DeleteSecretFromKeyring(key string) error {
	return keyring.Delete(ServiceName, key)
}

// ListAvailableSecretKeys returns all known secret keys that can be stored in the keyring.
func ListAvailableSecretKeys() []string {
	mappings := GetSecretMappings()
	keys := make([]string, 0, len(mappings))
	for _, m := range mappings {
		keys = append(keys, m.KeyringKey)
	}
	return keys
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (use debug, info, warn or error)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (use text or json)", c.Logging.Format)
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output.format %q (use text or json)", c.Output.Format)
	}
	if !validTheme(c.Output.Theme) {
		return fmt.Errorf("invalid output.theme %q (use %s)", c.Output.Theme, strings.Join(visualization.ThemeVariants, ", "))
	}

	if c.SQL.Driver != "" {
		if _, err := dataset.DriverName(c.SQL.Driver); err != nil {
			return err
		}
	}
	if c.Lexicon.Path != "" && c.Lexicon.DebounceMs < 0 {
		return fmt.Errorf("lexicon.debounce_ms must not be negative")
	}
	return nil
}

func validTheme(theme string) bool {
	for _, t := range visualization.ThemeVariants {
		if t == theme {
			return true
		}
	}
	return false
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GenerateExampleConfig returns a commented chartsense.yaml.
func GenerateExampleConfig() string {
	return heredoc.Doc(`
		# chartsense configuration
		# Priority: CLI flags > environment variables (CHARTSENSE_*) > config file > defaults

		server:
		  host: 0.0.0.0
		  port: 8080
		  max_body_bytes: 10485760
		  metrics: true
		  cors:
		    enabled: true
		    allowed_origins: ["*"]

		lexicon:
		  # Optional YAML file overriding keyword lists (see 'chartsense lexicon show')
		  path: ""
		  hot_reload: true
		  debounce_ms: 500

		logging:
		  level: info   # debug, info, warn, error
		  format: text  # text, json

		output:
		  format: text  # text, json
		  theme: dark   # dark, light, teradata, minimal
		  color: true

		sql:
		  driver: postgres  # postgres, mysql, sqlite
		  # Either a full DSN ...
		  # dsn: set via keyring (chartsense config set-key sql_dsn) or CHARTSENSE_SQL_DSN
		  # ... or connection fields (database is the file path for sqlite)
		  host: ""
		  port: 0
		  database: ""
		  user: ""
		  sslmode: require
		  # password: set via keyring (chartsense config set-key sql_password)
	`)
}
