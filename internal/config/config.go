package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Engine     EngineConfig     `toml:"engine"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type BookingAPIConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`    // секунды
	RateLimit int    `toml:"rate_limit"` // запросов в секунду, 0 = без ограничения
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type EngineConfig struct {
	// DefaultSlotDuration длительность слота для кортов без настройки (MEIA_HORA, UMA_HORA, ...)
	DefaultSlotDuration string `toml:"default_slot_duration"`
	SessionTTL          int    `toml:"session_ttl"` // минуты
	// Timezone часовой пояс площадок, в нем считаются даты и "сейчас"
	Timezone string `toml:"timezone"`
	// FetchConcurrency сколько кортов арены опрашивается одновременно
	FetchConcurrency int `toml:"fetch_concurrency"`
}

// SlotDuration разобранная длительность по умолчанию
func (e EngineConfig) SlotDuration() domain.SlotDuration {
	d, err := domain.ParseSlotDuration(e.DefaultSlotDuration)
	if err != nil {
		return domain.DefaultSlotDuration
	}
	return d
}

// TTL время жизни сессии бронирования
func (e EngineConfig) TTL() time.Duration {
	return time.Duration(e.SessionTTL) * time.Minute
}

// Location часовой пояс площадок
func (e EngineConfig) Location() (*time.Location, error) {
	return time.LoadLocation(e.Timezone)
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.BookingAPI.Timeout == 0 {
		c.BookingAPI.Timeout = 10
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "court-booking"
	}

	if c.Engine.DefaultSlotDuration == "" {
		c.Engine.DefaultSlotDuration = string(domain.DefaultSlotDuration)
	}
	if c.Engine.SessionTTL == 0 {
		c.Engine.SessionTTL = 120
	}
	if c.Engine.Timezone == "" {
		c.Engine.Timezone = "America/Sao_Paulo"
	}
	if c.Engine.FetchConcurrency == 0 {
		c.Engine.FetchConcurrency = 4
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.BookingAPI.URL == "" {
		return fmt.Errorf("booking_api.url is required")
	}
	if c.BookingAPI.RateLimit < 0 {
		return fmt.Errorf("booking_api.rate_limit must not be negative, got %d", c.BookingAPI.RateLimit)
	}
	if _, err := domain.ParseSlotDuration(c.Engine.DefaultSlotDuration); err != nil {
		return fmt.Errorf("engine.default_slot_duration: %w", err)
	}
	if c.Engine.SessionTTL < 0 {
		return fmt.Errorf("engine.session_ttl must be positive, got %d", c.Engine.SessionTTL)
	}
	if c.Engine.FetchConcurrency < 0 {
		return fmt.Errorf("engine.fetch_concurrency must not be negative, got %d", c.Engine.FetchConcurrency)
	}
	if _, err := c.Engine.Location(); err != nil {
		return fmt.Errorf("engine.timezone: %w", err)
	}
	return nil
}
