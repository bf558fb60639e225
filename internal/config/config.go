package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Backend  BackendConfig  `toml:"backend"`
	Wire     WireConfig     `toml:"wire"`
	Cache    CacheConfig    `toml:"cache"`
	Database DatabaseConfig `toml:"database"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Logs     LogsConfig     `toml:"logs"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// BackendConfig бэкенд бронирования, URL включает /api/v1.0/moviebooking
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// WireConfig формат исходящих payload
type WireConfig struct {
	ShowTimesFormat        string `toml:"show_times_format"` // structured | flat
	TheatreForStatusUpdate string `toml:"theatre_for_status_update"`
}

// CacheConfig кэш списка фильмов
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	MaxEntries int  `toml:"max_entries"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

// DatabaseConfig зеркало каталога в PostgreSQL
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LogsConfig логирование, пустой file - stdout
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из TOML файла и .env рядом с процессом
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, ".env")
}

// LoadWithEnv загружает конфигурацию из TOML файла, затем применяет
// переменные окружения (включая envFile, если он существует)
func LoadWithEnv(path, envFile string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if envFile != "" {
		if _, statErr := os.Stat(envFile); statErr == nil {
			// Уже заданные переменные окружения не перезаписываются
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", envFile, err)
			}
		}
	}

	applyDefaults(&cfg, md)

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config, md toml.MetaData) {
	setDefault(&cfg.Server.HTTPPort, 8080)
	setDefault(&cfg.Server.ReadTimeout, 10)
	setDefault(&cfg.Server.WriteTimeout, 10)
	setDefault(&cfg.Server.IdleTimeout, 60)
	setDefault(&cfg.Server.ShutdownTimeout, 10)

	setDefault(&cfg.Backend.Timeout, 10)

	setDefault(&cfg.Wire.ShowTimesFormat, string(payload.ShapeStructured))
	setDefault(&cfg.Wire.TheatreForStatusUpdate, "PVR Cinemas")

	// Кэш включен, если явно не выключен
	if !md.IsDefined("cache", "enabled") {
		cfg.Cache.Enabled = true
	}
	setDefault(&cfg.Cache.MaxEntries, 128)
	setDefault(&cfg.Cache.TTLSeconds, 30)

	setDefault(&cfg.Database.Host, "localhost")
	setDefault(&cfg.Database.Port, 5432)
	setDefault(&cfg.Database.SSLMode, "disable")
	setDefault(&cfg.Database.MaxOpenConns, 10)
	setDefault(&cfg.Database.MaxIdleConns, 5)
	setDefault(&cfg.Database.ConnMaxLifetime, 300)

	setDefault(&cfg.Metrics.Path, "/metrics")
	setDefault(&cfg.Metrics.ServiceName, "movie-booking-bff")

	setDefault(&cfg.Logs.Level, "info")
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.URL = v
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}

	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		cfg.Server.HTTPPort = port
	}

	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend.url %q is not an absolute URL", ErrInvalidConfig, c.Backend.URL)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}

	if _, err := payload.ParseShape(c.Wire.ShowTimesFormat); err != nil {
		return fmt.Errorf("%w: wire.show_times_format: %v", ErrInvalidConfig, err)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Cache.Enabled && c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: cache.max_entries must be positive", ErrInvalidConfig)
	}

	if c.Database.Enabled && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required when the mirror is enabled", ErrInvalidConfig)
	}

	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
