package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Marketplace MarketplaceConfig `toml:"marketplace"`
	Redis       RedisConfig       `toml:"redis"`
	Booking     BookingConfig     `toml:"booking"`
	CORS        CORSConfig        `toml:"cors"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file"` // пусто = stdout
	Level string `toml:"level"`
}

// MetricsConfig prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// MarketplaceConfig REST API маркетплейса
type MarketplaceConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig кэш карточек провайдеров и категорий
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

// BookingConfig параметры сценария бронирования
type BookingConfig struct {
	AppointmentDurationMinutes int    `toml:"appointment_duration_minutes"`
	FlowTTLMinutes             int    `toml:"flow_ttl_minutes"`
	SweepSchedule              string `toml:"sweep_schedule"`
	SweepTimeout               int    `toml:"sweep_timeout"` // секунды
	CheckoutURLTemplate        string `toml:"checkout_url_template"`
}

// AppointmentDuration длительность appointment бронирования
func (c BookingConfig) AppointmentDuration() time.Duration {
	return time.Duration(c.AppointmentDurationMinutes) * time.Minute
}

// FlowTTL время жизни брошенного сценария
func (c BookingConfig) FlowTTL() time.Duration {
	return time.Duration(c.FlowTTLMinutes) * time.Minute
}

// CORSConfig разрешенные источники веб-клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает .env (если есть), TOML файл и переменные окружения
// Секреты из окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "petcare-service",
			Path:        "/metrics",
		},
		Marketplace: MarketplaceConfig{
			Timeout: 10,
		},
		Redis: RedisConfig{
			CacheTTL: 300,
		},
		Booking: BookingConfig{
			AppointmentDurationMinutes: 60,
			FlowTTLMinutes:             120,
			SweepSchedule:              "@every 10m",
			SweepTimeout:               30,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("MARKETPLACE_TOKEN"); v != "" {
		c.Marketplace.Token = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Marketplace.URL == "" {
		problems = append(problems, "marketplace.url is required")
	}
	if c.Marketplace.Timeout <= 0 {
		problems = append(problems, "marketplace.timeout must be positive")
	}
	if c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required")
	}
	if c.Redis.CacheTTL <= 0 {
		problems = append(problems, "redis.cache_ttl must be positive")
	}
	if c.Booking.AppointmentDurationMinutes <= 0 {
		problems = append(problems, "booking.appointment_duration_minutes must be positive")
	}
	if c.Booking.FlowTTLMinutes <= 0 {
		problems = append(problems, "booking.flow_ttl_minutes must be positive")
	}
	if c.Booking.SweepSchedule == "" {
		problems = append(problems, "booking.sweep_schedule is required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
