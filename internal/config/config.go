// Package config конфигурация сервиса: config.toml + переменные окружения.
// API-ключ внешнего генеративного сервиса не хранится в toml,
// он читается из окружения (api.env подхватывается через godotenv).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Имя переменной окружения с API-ключом генеративного сервиса
const advisoryAPIKeyEnv = "GEMINI_API_KEY"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Bookings BookingsConfig `toml:"bookings"`
	Advisory AdvisoryConfig `toml:"advisory"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingsConfig настройки жизненного цикла бронирований
type BookingsConfig struct {
	// TransitionPolicy политика переходов статусов: "strict" | "permissive"
	TransitionPolicy string `toml:"transition_policy"`
}

// AdvisoryConfig настройки внешнего генеративного сервиса
type AdvisoryConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"` // seconds

	// APIKey читается из окружения, не из toml
	APIKey string `toml:"-"`
}

// Load загружает конфигурацию из toml-файла и окружения.
// Отсутствие api.env не является ошибкой - ключ может быть задан напрямую
// в окружении. Отсутствие самого ключа - ошибка: сервис не стартует
// без доступа к генеративному сервису (fail fast).
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	_ = godotenv.Load("api.env")

	cfg.Advisory.APIKey = os.Getenv(advisoryAPIKeyEnv)
	if cfg.Advisory.APIKey == "" {
		return nil, fmt.Errorf("config: %s is not set", advisoryAPIKeyEnv)
	}

	return &cfg, nil
}
