package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

const (
	defaultPort        = 8080
	defaultMaxFileSize = 10 << 20 // 10 MiB
	defaultDataDir     = "data"
)

// Config holds everything the service reads at boot. Values come from an
// optional YAML file, overridden by environment variables.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Storage StorageConfig `yaml:"storage"`

	// Env toggles the CORS allow-list ("production" pins the origin).
	Env string `yaml:"-"`
}

type ServerConfig struct {
	Port        int   `yaml:"port"`
	MaxFileSize int64 `yaml:"max_file_size"`
}

type CORSConfig struct {
	ProductionOrigin string `yaml:"production_origin"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

// Load reads the YAML file if present, then applies environment overrides
// (PORT, MAX_FILE_SIZE, APP_ENV, DATA_DIR) and defaults.
func Load(configPath string) (*Config, error) {
	var config Config

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("Load(): failed to parse %s: %w", configPath, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("Load(): invalid PORT %q: %w", v, err)
		}
		config.Server.Port = port
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Load(): invalid MAX_FILE_SIZE %q: %w", v, err)
		}
		config.Server.MaxFileSize = size
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		config.Storage.DataDir = v
	}
	config.Env = os.Getenv("APP_ENV")
	if config.Env == "" {
		config.Env = "development"
	}

	config.Validate()
	return &config, nil
}

// Validate fills in defaults for anything left unset.
func (c *Config) Validate() {
	if c.Server.Port <= 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.MaxFileSize <= 0 {
		c.Server.MaxFileSize = defaultMaxFileSize
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir
	}
	if c.CORS.ProductionOrigin == "" {
		c.CORS.ProductionOrigin = "https://collect.kreyol.app"
	}
}
