package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	FeedSourceHTTP     = "http"
	FeedSourcePostgres = "postgres"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type HTTPServer struct {
	Port                     string `mapstructure:"port"`
	ReadHeaderTimeoutSeconds int    `mapstructure:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds   int    `mapstructure:"shutdown_timeout_seconds"`
}

func (s HTTPServer) ReadHeaderTimeout() time.Duration {
	return time.Duration(s.ReadHeaderTimeoutSeconds) * time.Second
}

func (s HTTPServer) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Feed struct {
	Source             string `mapstructure:"source"`
	URL                string `mapstructure:"url"`
	LoadTimeoutSeconds int    `mapstructure:"load_timeout_seconds"`
}

func (f Feed) LoadTimeout() time.Duration {
	return time.Duration(f.LoadTimeoutSeconds) * time.Second
}

type Redis struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
	DB   int    `mapstructure:"db"`
}

type Cache struct {
	Backend    string `mapstructure:"backend"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	MaxItems   int64  `mapstructure:"max_items"`
	Redis      Redis  `mapstructure:"redis"`
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type Conversion struct {
	FractionDigits int32  `mapstructure:"fraction_digits"`
	DefaultAmount  string `mapstructure:"default_amount"`
}

type Sessions struct {
	IdleTTLSeconds       int `mapstructure:"idle_ttl_seconds"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds"`
}

func (s Sessions) IdleTTL() time.Duration {
	return time.Duration(s.IdleTTLSeconds) * time.Second
}

func (s Sessions) SweepInterval() time.Duration {
	return time.Duration(s.SweepIntervalSeconds) * time.Second
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Feed       Feed       `mapstructure:"feed"`
	Cache      Cache      `mapstructure:"cache"`
	Conversion Conversion `mapstructure:"conversion"`
	Sessions   Sessions   `mapstructure:"sessions"`
}

// Init loads .env (if present) and config.yaml from the working directory.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Load("config.yaml")
}

// Load reads the yaml config at path; environment variables override file values.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.read_header_timeout_seconds", 5)
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("feed.source", FeedSourceHTTP)
	v.SetDefault("feed.load_timeout_seconds", 15)
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.ttl_seconds", 60)
	v.SetDefault("cache.max_items", 16)
	v.SetDefault("conversion.fraction_digits", 6)
	v.SetDefault("conversion.default_amount", "1")
	v.SetDefault("sessions.idle_ttl_seconds", 1800)
	v.SetDefault("sessions.sweep_interval_seconds", 60)

	// http server / client env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// feed and cache env vars
	_ = v.BindEnv("feed.source", "FEED_SOURCE")
	_ = v.BindEnv("feed.url", "FEED_URL")
	_ = v.BindEnv("cache.backend", "CACHE_BACKEND")
	_ = v.BindEnv("cache.redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("cache.redis.pass", "REDIS_PASS")
	_ = v.BindEnv("cache.redis.db", "REDIS_DB")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Feed.Source {
	case FeedSourceHTTP:
		if c.Feed.URL == "" {
			return errors.New("feed.url is required for the http feed source")
		}
	case FeedSourcePostgres:
	default:
		return fmt.Errorf("unknown feed.source %q", c.Feed.Source)
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New("cache.redis.addr is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", c.Cache.Backend)
	}
	return nil
}
