package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты (пароли, ключи, токены) поднимаются из переменных окружения
// и перекрывают значения из файла.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	RabbitMQ  RabbitMQConfig  `toml:"rabbitmq"`
	Auth      AuthConfig      `toml:"auth"`
	SMS       SMSConfig       `toml:"sms"`
	Concierge ConciergeConfig `toml:"concierge"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
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

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки подключения к Redis.
// Redis хранит OTP-коды и счетчики rate limit c TTL, чтобы несколько
// инстансов сервиса видели одно и то же состояние.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RabbitMQConfig настройки подключения к RabbitMQ
type RabbitMQConfig struct {
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
	Enabled bool   `toml:"enabled"`
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret         string `toml:"jwt_secret"`
	CustomerTokenTTL  int    `toml:"customer_token_ttl_minutes"`
	AdminTokenTTL     int    `toml:"admin_token_ttl_minutes"`
	AdminLogin        string `toml:"admin_login"`
	AdminPasswordHash string `toml:"admin_password_hash"`
	OTPTTLSeconds     int    `toml:"otp_ttl_seconds"`
	OTPMaxAttempts    int    `toml:"otp_max_attempts"`
}

// SMSConfig настройки шлюза доставки SMS/WhatsApp
type SMSConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	APIToken string `toml:"api_token"`
	Channel  string `toml:"channel"` // sms или whatsapp
}

// ConciergeConfig настройки LLM-консьержа
type ConciergeConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// RateLimitConfig лимиты запросов (хранятся в Redis)
type RateLimitConfig struct {
	OTPPerHour    int `toml:"otp_per_hour"`
	ChatPerMinute int `toml:"chat_per_minute"`
}

// Load читает конфигурацию из TOML-файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides перекрывает секреты значениями из окружения
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Auth.AdminPasswordHash = v
	}
	if v := os.Getenv("SMS_API_TOKEN"); v != "" {
		cfg.SMS.APIToken = v
	}
	if v := os.Getenv("CONCIERGE_API_KEY"); v != "" {
		cfg.Concierge.APIKey = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		cfg.RabbitMQ.URL = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required (set JWT_SECRET)")
	}
	return nil
}
