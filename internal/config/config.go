package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DefaultAdminPassword is the well-known bootstrap password. The seeder warns
// loudly when it is still in effect.
const DefaultAdminPassword = "Password123!"

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SecurityConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

type CacheConfig struct {
	ProductTTL time.Duration
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Postgres         PostgresConfig
	Redis            RedisConfig
	Security         SecurityConfig
	Seed             SeedConfig
	Cache            CacheConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SHOPFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate refuses to start with a missing signing secret or database DSN.
// There is deliberately no fallback secret: a guessable literal would make
// every issued token forgeable.
func (c *AppConfig) validate() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwtsecret is required (set SHOPFRONT_SECURITY_JWTSECRET)")
	}
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required (set SHOPFRONT_POSTGRES_DSN)")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 5000)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	// Registered empty so viper binds the env overrides; validate rejects
	// them when they stay empty.
	v.SetDefault("security.jwtsecret", "")
	v.SetDefault("postgres.dsn", "")

	v.SetDefault("postgres.maxopen", 30)
	v.SetDefault("postgres.maxidle", 10)
	v.SetDefault("postgres.connmaxlifetime", "30m")

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("security.tokenttl", "24h")

	v.SetDefault("seed.adminusername", "superadmin")
	v.SetDefault("seed.adminpassword", DefaultAdminPassword)

	v.SetDefault("cache.productttl", "60s")
}
