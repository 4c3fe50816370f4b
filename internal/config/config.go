package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/timeparse"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Admin        AdminConfig        `toml:"admin"`
	AuthProvider AuthProviderConfig `toml:"auth_provider"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN собирает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig booking grid: operating hours and slot width. Raw "HH:MM"
// strings here are normalized once at load time.
type BookingConfig struct {
	OpenTime    string `toml:"open_time"`
	CloseTime   string `toml:"close_time"`
	SlotMinutes int    `toml:"slot_minutes"`
}

// GridMinutes разбирает рабочие часы в минуты от полуночи
func (b BookingConfig) GridMinutes() (openMin, closeMin int, err error) {
	openMin, err = timeparse.ToMinutes(b.OpenTime)
	if err != nil {
		return 0, 0, fmt.Errorf("config: invalid booking.open_time %q: %w", b.OpenTime, err)
	}

	closeMin, err = timeparse.ToMinutes(b.CloseTime)
	if err != nil {
		return 0, 0, fmt.Errorf("config: invalid booking.close_time %q: %w", b.CloseTime, err)
	}

	return openMin, closeMin, nil
}

// CatalogConfig настройки кэша справочника площадок
type CatalogConfig struct {
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// AdminConfig fail-safe admin whitelist, consulted by the authorization
// policy alongside the auth provider's role claim.
type AdminConfig struct {
	Emails []string `toml:"emails"`
}

// AuthProviderConfig настройки клиента auth-провайдера
type AuthProviderConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load reads and validates config.toml. The database password may be
// overridden with GRITX_DB_PASSWORD so it can stay out of the file.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if pass := os.Getenv("GRITX_DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "gritx-booking",
		},
		Booking: BookingConfig{
			OpenTime:    "08:00",
			CloseTime:   "20:00",
			SlotMinutes: domain.DefaultSlotMinutes,
		},
		Catalog: CatalogConfig{
			CacheTTLSeconds: 300,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Booking.SlotMinutes < domain.MinSlotMinutes || c.Booking.SlotMinutes > domain.MaxSlotMinutes {
		return fmt.Errorf("config: booking.slot_minutes must be within [%d, %d]",
			domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}

	openMin, closeMin, err := c.Booking.GridMinutes()
	if err != nil {
		return err
	}
	if openMin >= closeMin {
		return fmt.Errorf("config: booking.open_time %q must be before close_time %q",
			c.Booking.OpenTime, c.Booking.CloseTime)
	}

	return nil
}
