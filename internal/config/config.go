// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Before the YAML file is read, a .env file in the working directory (or
// the one named by DOTENV_PATH) is loaded into the process environment, so
// every env:"..." override below can also live in a .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Supported values for the enumerated settings.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	SessionStoreSQL   = "sql"
	SessionStoreRedis = "redis"

	PasswordPlain  = "plain"
	PasswordBcrypt = "bcrypt"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// LogLevel is any level zapcore understands (debug, info, warn, ...).
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// StoragePath is the filesystem path to the SQLite .db file. Only
	// used with the sqlite3 driver.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"storage/storage.db"`

	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Session    Session    `yaml:"session"`
	Redis      Redis      `yaml:"redis"`
	Admin      Admin      `yaml:"admin"`
}

// Storage selects and tunes the SQL backend.
type Storage struct {
	Driver       string `yaml:"driver"         env:"STORAGE_DRIVER"         env-default:"sqlite3"`
	DSN          string `yaml:"dsn"            env:"STORAGE_DSN"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"STORAGE_MAX_OPEN_CONNS" env-default:"16"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	Addr            string        `yaml:"address"          env:"HTTP_SERVER_ADDR" env-required:"true"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HTTP_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `yaml:"allowed_origins"  env:"HTTP_SERVER_ALLOWED_ORIGINS"  env-default:"*"`
}

// Session configures admin login sessions.
type Session struct {
	// Store is where session records live: "sql" (same database as the
	// students) or "redis".
	Store        string        `yaml:"store"         env:"SESSION_STORE"         env-default:"sql"`
	Secret       string        `yaml:"secret"        env:"SESSION_SECRET"        env-required:"true"`
	TTL          time.Duration `yaml:"ttl"           env:"SESSION_TTL"           env-default:"30m"`
	CookieName   string        `yaml:"cookie_name"   env:"SESSION_COOKIE_NAME"   env-default:"STUDENTMS_SESSION"`
	SecureCookie bool          `yaml:"secure_cookie" env:"SESSION_SECURE_COOKIE" env-default:"false"`
}

// Redis is only read when Session.Store is "redis".
type Redis struct {
	Addr     string `yaml:"address"  env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// Admin configures credential handling.
type Admin struct {
	// PasswordEncoding is "plain" (stored and compared verbatim) or
	// "bcrypt".
	PasswordEncoding string `yaml:"password_encoding" env:"ADMIN_PASSWORD_ENCODING" env-default:"plain"`

	// Bootstrap credentials are created at startup when both are set and
	// the email is not registered yet.
	BootstrapEmail    string `yaml:"bootstrap_email"    env:"ADMIN_BOOTSTRAP_EMAIL"`
	BootstrapPassword string `yaml:"bootstrap_password" env:"ADMIN_BOOTSTRAP_PASSWORD"`
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects combinations cleanenv cannot express with tags.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.StoragePath == "" {
			return errors.New("config: storage_path is required for the sqlite3 driver")
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return errors.New("config: storage.dsn is required for the pgx driver")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Session.Store {
	case SessionStoreSQL, SessionStoreRedis:
	default:
		return fmt.Errorf("config: unknown session store %q", c.Session.Store)
	}

	if c.Session.TTL <= 0 {
		return errors.New("config: session.ttl must be positive")
	}

	switch c.Admin.PasswordEncoding {
	case PasswordPlain, PasswordBcrypt:
	default:
		return fmt.Errorf("config: unknown password encoding %q", c.Admin.PasswordEncoding)
	}

	return nil
}

// MustLoad reads, validates, and returns the application config.
// Functions prefixed with "Must" are allowed to fatal on failure: if this
// returns, the config is valid.
func MustLoad() *Config {
	loadDotEnv()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}

// loadDotEnv populates the environment from a .env file if one exists.
// Variables already set in the environment win.
func loadDotEnv() {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("cannot load %s: %s", path, err)
	}
}
