package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	defaultTokenTTL = 30 * time.Minute
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	StoreDriver string
	PostgresDSN string
	AutoMigrate bool

	TokenSecret string
	TokenTTL    time.Duration

	LogLevel string

	LoginRatePerSecond float64
	LoginBurst         int
	// TrustedProxy keys the login throttle on X-Forwarded-For. Enable only
	// behind a proxy that overwrites the header.
	TrustedProxy bool

	SeedOnStart bool
	SeedAdmin   AdminSeed
}

// AdminSeed is optional. An admin is only bootstrapped when Username and
// Password are both set.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

func (a AdminSeed) Configured() bool {
	return strings.TrimSpace(a.Username) != "" && a.Password != ""
}

// fileConfig mirrors the optional TOML file named by LEXICON_CONFIG_FILE.
type fileConfig struct {
	ServiceName string `toml:"service_name"`
	HTTPPort    string `toml:"http_port"`
	Store       struct {
		Driver      string `toml:"driver"`
		PostgresDSN string `toml:"postgres_dsn"`
		AutoMigrate *bool  `toml:"auto_migrate"`
	} `toml:"store"`
	Token struct {
		Secret string `toml:"secret"`
		TTL    string `toml:"ttl"`
	} `toml:"token"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Login struct {
		RatePerSecond float64 `toml:"rate_per_second"`
		Burst         int     `toml:"burst"`
		TrustedProxy  *bool   `toml:"trusted_proxy"`
	} `toml:"login"`
	Seed struct {
		OnStart       *bool  `toml:"on_start"`
		AdminUsername string `toml:"admin_username"`
		AdminEmail    string `toml:"admin_email"`
		AdminPassword string `toml:"admin_password"`
	} `toml:"seed"`
}

func defaults() Config {
	return Config{
		ServiceName:        "lexicon",
		HTTPPort:           "8080",
		StoreDriver:        StoreDriverPostgres,
		AutoMigrate:        true,
		TokenTTL:           defaultTokenTTL,
		LogLevel:           "info",
		LoginRatePerSecond: 1,
		LoginBurst:         5,
	}
}

// Load resolves configuration from, in increasing precedence: defaults, the
// TOML file named by LEXICON_CONFIG_FILE, a .env file, and the environment.
func Load() (Config, error) {
	return load(".env")
}

func load(dotenvPath string) (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("LEXICON_CONFIG_FILE")); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var file fileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.ServiceName, file.ServiceName)
	setString(&cfg.HTTPPort, file.HTTPPort)
	setString(&cfg.StoreDriver, file.Store.Driver)
	setString(&cfg.PostgresDSN, file.Store.PostgresDSN)
	if file.Store.AutoMigrate != nil {
		cfg.AutoMigrate = *file.Store.AutoMigrate
	}
	setString(&cfg.TokenSecret, file.Token.Secret)
	if file.Token.TTL != "" {
		ttl, err := time.ParseDuration(file.Token.TTL)
		if err != nil {
			return fmt.Errorf("parse token.ttl: %w", err)
		}
		cfg.TokenTTL = ttl
	}
	setString(&cfg.LogLevel, file.Log.Level)
	if file.Login.RatePerSecond > 0 {
		cfg.LoginRatePerSecond = file.Login.RatePerSecond
	}
	if file.Login.Burst > 0 {
		cfg.LoginBurst = file.Login.Burst
	}
	if file.Login.TrustedProxy != nil {
		cfg.TrustedProxy = *file.Login.TrustedProxy
	}
	if file.Seed.OnStart != nil {
		cfg.SeedOnStart = *file.Seed.OnStart
	}
	setString(&cfg.SeedAdmin.Username, file.Seed.AdminUsername)
	setString(&cfg.SeedAdmin.Email, file.Seed.AdminEmail)
	setString(&cfg.SeedAdmin.Password, file.Seed.AdminPassword)
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.ServiceName, os.Getenv("SERVICE_NAME"))
	setString(&cfg.HTTPPort, os.Getenv("HTTP_PORT"))
	setString(&cfg.StoreDriver, strings.ToLower(os.Getenv("STORE_DRIVER")))
	setString(&cfg.PostgresDSN, os.Getenv("POSTGRES_DSN"))
	cfg.AutoMigrate = envBool("AUTO_MIGRATE", cfg.AutoMigrate)

	setString(&cfg.TokenSecret, os.Getenv("TOKEN_SECRET"))
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	setString(&cfg.LogLevel, os.Getenv("LOG_LEVEL"))

	if raw := strings.TrimSpace(os.Getenv("LOGIN_RATE_PER_SECOND")); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parse LOGIN_RATE_PER_SECOND: %w", err)
		}
		cfg.LoginRatePerSecond = rate
	}
	if raw := strings.TrimSpace(os.Getenv("LOGIN_BURST")); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse LOGIN_BURST: %w", err)
		}
		cfg.LoginBurst = burst
	}
	cfg.TrustedProxy = envBool("TRUSTED_PROXY", cfg.TrustedProxy)

	cfg.SeedOnStart = envBool("SEED_ON_START", cfg.SeedOnStart)
	setString(&cfg.SeedAdmin.Username, os.Getenv("SEED_ADMIN_USERNAME"))
	setString(&cfg.SeedAdmin.Email, os.Getenv("SEED_ADMIN_EMAIL"))
	if password := os.Getenv("SEED_ADMIN_PASSWORD"); password != "" {
		cfg.SeedAdmin.Password = password
	}
	return nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.TokenSecret) == "" {
		return errors.New("TOKEN_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("POSTGRES_DSN is required for the postgres store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.LoginRatePerSecond <= 0 || c.LoginBurst <= 0 {
		return errors.New("login throttle rate and burst must be positive")
	}
	return nil
}

func setString(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
