package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host              string `mapstructure:"host"`
	Port              string `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Pass              string `mapstructure:"pass"`
	Name              string `mapstructure:"name"`
	MaxConns          int32  `mapstructure:"max_conns"`
	ConnectTimeoutSec int    `mapstructure:"connect_timeout_sec"`
}

func (config *DbServer) GetConnectionStr() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.User, config.Pass),
		Host:     config.Host + ":" + config.Port,
		Path:     "/" + config.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (config *DbServer) ConnectTimeout() time.Duration {
	return time.Duration(config.ConnectTimeoutSec) * time.Second
}

type Cache struct {
	// Backend is "memory" (in-process ristretto) or "redis".
	Backend    string `mapstructure:"backend"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	MaxItems   int64  `mapstructure:"max_items"`
}

func (c Cache) TTL() time.Duration { return time.Duration(c.TTLSeconds) * time.Second }

type Redis struct {
	Addr          string `mapstructure:"addr"`
	Password      string `mapstructure:"password"`
	DB            int    `mapstructure:"db"`
	Prefix        string `mapstructure:"prefix"`
	TimeoutMillis int    `mapstructure:"timeout_millis"`
}

func (r Redis) Timeout() time.Duration { return time.Duration(r.TimeoutMillis) * time.Millisecond }

type Logging struct {
	Level string `mapstructure:"level"`
}

type Loader struct {
	// Source is a path to a historical rates file or an http(s) URL serving the same document.
	Source      string `mapstructure:"source"`
	NamesFile   string `mapstructure:"names_file"`
	IntervalSec int    `mapstructure:"interval_sec"`
}

func (l Loader) Interval() time.Duration { return time.Duration(l.IntervalSec) * time.Second }

func (l Loader) IsRemote() bool {
	return strings.HasPrefix(l.Source, "http://") || strings.HasPrefix(l.Source, "https://")
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Cache      Cache      `mapstructure:"cache"`
	Redis      Redis      `mapstructure:"redis"`
	Logging    Logging    `mapstructure:"logging"`
	Loader     Loader     `mapstructure:"loader"`
}

// Init reads .env and config.yaml from the working directory when present,
// then applies environment overrides and defaults.
func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetDefault("http_server.port", "8000")
	v.SetDefault("db_server.host", "localhost")
	v.SetDefault("db_server.port", "5432")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("db_server.connect_timeout_sec", 5)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl_seconds", 3600)
	v.SetDefault("cache.max_items", 4096)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.prefix", "fxrates:")
	v.SetDefault("redis.timeout_millis", 500)
	v.SetDefault("logging.level", "info")

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// cache env vars
	_ = v.BindEnv("cache.backend", "CACHE_BACKEND")
	_ = v.BindEnv("cache.ttl_seconds", "CACHE_TTL_SECONDS")
	_ = v.BindEnv("cache.max_items", "CACHE_MAX_ITEMS")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")
	_ = v.BindEnv("redis.prefix", "REDIS_PREFIX")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// loader env vars
	_ = v.BindEnv("loader.source", "LOADER_SOURCE")
	_ = v.BindEnv("loader.names_file", "LOADER_NAMES_FILE")
	_ = v.BindEnv("loader.interval_sec", "LOADER_INTERVAL_SEC")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	switch cfg.Cache.Backend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}

	return &cfg, nil
}
