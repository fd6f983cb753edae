package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
// Пример: STADIUM_DATABASE_PASSWORD, STADIUM_SERVER_HTTP_PORT
const EnvPrefix = "STADIUM"

var (
	// ErrReadConfig возвращается при ошибке чтения/парсинга файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" split_words:"true"`
	Database DatabaseConfig `toml:"database" split_words:"true"`
	Logs     LogsConfig     `toml:"logs" split_words:"true"`
	Metrics  MetricsConfig  `toml:"metrics" split_words:"true"`
	Booking  BookingConfig  `toml:"booking" split_words:"true"`
	Redis    RedisConfig    `toml:"redis" split_words:"true"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq" envconfig:"RABBITMQ"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN формирует URL подключения для lib/pq, значения экранируются
func (c DatabaseConfig) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return dsn.String()
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
	ServiceName string `toml:"service_name" split_words:"true"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// OperationTimeout ограничение времени на создание/обновление бронирования (секунды)
	OperationTimeout int `toml:"operation_timeout" split_words:"true"`
	// DefaultPaymentMethod способ оплаты, если клиент его не указал
	DefaultPaymentMethod string `toml:"default_payment_method" split_words:"true"`
	// Часы работы стадионов для расчёта свободных слотов
	OpenTime            string `toml:"open_time" split_words:"true"`
	CloseTime           string `toml:"close_time" split_words:"true"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes" split_words:"true"`
}

// OperationTimeoutDuration возвращает таймаут операции как time.Duration
func (c BookingConfig) OperationTimeoutDuration() time.Duration {
	return time.Duration(c.OperationTimeout) * time.Second
}

// RedisConfig настройки кэша стадионов
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CacheTTL int    `toml:"cache_ttl" split_words:"true"` // секунды
}

// RabbitMQConfig настройки публикации событий бронирований
type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// Load читает config.toml, затем .env (если есть) и переменные окружения STADIUM_*
// Переменные окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен, отсутствие файла не ошибка
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: env overrides: %v", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.user and database.dbname are required", ErrInvalidConfig)
	}
	if c.Booking.OperationTimeout <= 0 {
		return fmt.Errorf("%w: booking.operation_timeout must be positive", ErrInvalidConfig)
	}
	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && (c.RabbitMQ.URL == "" || c.RabbitMQ.Exchange == "") {
		return fmt.Errorf("%w: rabbitmq.url and rabbitmq.exchange are required when rabbitmq is enabled", ErrInvalidConfig)
	}
	return nil
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
			Path:        "/metrics",
			ServiceName: "stadium_rental",
		},
		Booking: BookingConfig{
			OperationTimeout:     5,
			DefaultPaymentMethod: "online",
			OpenTime:             "06:00",
			CloseTime:            "23:00",
			SlotDurationMinutes:  60,
		},
		Redis: RedisConfig{
			CacheTTL: 300,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "stadium.bookings",
		},
	}
}
