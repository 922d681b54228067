package config

import (
	"flag"
	"log"
	"os"
	"time"

	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ProviderChec  = "chec"
	ProviderLocal = "local"
)

type HTTPServer struct {
	Addr            string        `yaml:"address"          env:"HTTP_ADDR"        env-default:":8787"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_READ_TIMEOUT"  env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type Commerce struct {
	Provider string        `yaml:"provider" env:"COMMERCE_PROVIDER" env-default:"local"`
	APIKey   string        `yaml:"api_key"  env:"CHEC_PUBLIC_KEY"`
	BaseURL  string        `yaml:"base_url" env:"CHEC_BASE_URL" env-default:"https://api.chec.io/v1"`
	Timeout  time.Duration `yaml:"timeout"  env:"COMMERCE_TIMEOUT" env-default:"10s"`
}

type Session struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET"`
	Secure bool   `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

type Redis struct {
	Addr     string `yaml:"address"  env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// Enabled reports whether a cache instance was configured at all. The
// storefront runs fine without one; every catalog read then goes straight
// to the backend.
func (r *Redis) Enabled() bool {
	return r.Addr != ""
}

type Cache struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Image struct {
	AllowedHosts []string      `yaml:"allowed_hosts" env:"IMAGE_ALLOWED_HOSTS" env-default:"cdn.chec.io"`
	MaxBytes     int64         `yaml:"max_bytes"     env:"IMAGE_MAX_BYTES" env-default:"5242880"`
	Timeout      time.Duration `yaml:"timeout"       env:"IMAGE_TIMEOUT" env-default:"10s"`
	CacheTTL     time.Duration `yaml:"cache_ttl"     env:"IMAGE_CACHE_TTL" env-default:"1h"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Commerce   Commerce  `yaml:"commerce"`
	Session    Session   `yaml:"session"`
	Redis      Redis     `yaml:"redis"`
	Cache      Cache     `yaml:"cache"`
	Image      Image     `yaml:"image"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

// Load reads configuration from an optional YAML file plus the environment
// and validates it. An empty path means environment-only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, appErrors.ConfigurationError("config file does not exist: " + path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, appErrors.ConfigurationError("can not read config file").WithError(err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, appErrors.ConfigurationError("can not read environment").WithError(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the startup invariants: the cookie signing secret is
// always required, and selecting the hosted backend requires its API key.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return appErrors.ConfigurationError("SESSION_SECRET environment variable is not set")
	}

	if c.Commerce.Provider == ProviderChec && c.Commerce.APIKey == "" {
		return appErrors.ConfigurationError("the commerce API key must be provided as CHEC_PUBLIC_KEY when COMMERCE_PROVIDER is chec")
	}

	return nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flagPath := flag.String("config", "", "path to the config file")
		flag.Parse()
		configPath = *flagPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("invalid configuration: %s", err.Error())
	}

	return cfg
}
