package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	ServiceCatalogue = "catalogue"
	ServiceCart      = "cart"
)

var defaultPorts = map[string]int{
	ServiceCatalogue: 5000,
	ServiceCart:      5001,
}

// PsqlConfig holds the connection parameters of the cart table database.
// Host, Port, Database, User and Password have no defaults.
type PsqlConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Database string `mapstructure:"database"`
	Sslmode  string `mapstructure:"sslmode"`
	Migrate  bool   `mapstructure:"migrate"`
}

type HTTPConfig struct {
	Env             string        `mapstructure:"env"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Config struct {
	HTTP    HTTPConfig `mapstructure:"http"`
	Storage string     `mapstructure:"storage"`
	Psql    PsqlConfig `mapstructure:"psql_conn"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"http.env":              "APP_ENV",
	"http.host":             "HTTP_HOST",
	"http.port":             "HTTP_PORT",
	"http.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"storage":               "CART_STORAGE",
	"psql_conn.host":        "DB_HOST",
	"psql_conn.port":        "DB_PORT",
	"psql_conn.database":    "DB_NAME",
	"psql_conn.user":        "DB_USER",
	"psql_conn.password":    "DB_PASSWORD",
	"psql_conn.sslmode":     "DB_SSLMODE",
	"psql_conn.migrate":     "DB_MIGRATE",
}

// Load reads configuration for the named service from an optional .env file,
// an optional config.yaml and the environment, in increasing priority.
func Load(service string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error reading .env file, %s\n", err)
		return nil, err
	}

	return load(viper.New(), service)
}

func load(v *viper.Viper, service string) (*Config, error) {
	port, ok := defaultPorts[service]
	if !ok {
		return nil, fmt.Errorf("config: unknown service %q", service)
	}

	v.SetDefault("http.env", EnvLocal)
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", port)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("psql_conn.sslmode", "disable")
	v.SetDefault("psql_conn.migrate", false)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file, %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Unable to decode into struct, %v\n", err)
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.HTTP.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("config: unknown env %q", c.HTTP.Env)
	}

	switch strings.ToLower(c.Storage) {
	case StorageMemory, StoragePostgres:
		c.Storage = strings.ToLower(c.Storage)
	default:
		return fmt.Errorf("config: unknown storage %q", c.Storage)
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: invalid http port %d", c.HTTP.Port)
	}

	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, fmt.Sprint(c.HTTP.Port))
}

// ConnectionString renders the postgres URL. Empty values are kept as is so
// that a missing setting fails when the first connection is made.
func (c *Config) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Psql.User, c.Psql.Password),
		Host:     net.JoinHostPort(c.Psql.Host, c.Psql.Port),
		Path:     "/" + c.Psql.Database,
		RawQuery: url.Values{"sslmode": []string{c.Psql.Sslmode}}.Encode(),
	}

	return u.String()
}
