package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию приложения.
type Config struct {
	AppName     string
	Port        string
	Environment string

	AllowedOrigins []string
	CatalogPath    string // пусто - встроенный каталог

	Mail     MailConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	RabbitMQ RabbitMQConfig

	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

type MailConfig struct {
	ResendAPIKey  string
	ResendBaseURL string
	From          string
	ContactEmail  string
	SiteURL       string
	Timeout       time.Duration
}

// Enabled - почта настроена, если задан ключ Resend.
func (c MailConfig) Enabled() bool {
	return c.ResendAPIKey != ""
}

type AuthConfig struct {
	PublicKeyPEM   string
	Secret         string
	PublishableKey string
	SignInURL      string
	SignUpURL      string
}

func (c AuthConfig) Enabled() bool {
	return c.PublicKeyPEM != "" || c.Secret != ""
}

type PostgresConfig struct {
	DatabaseURL string
	MaxConns    int
}

type SQLiteConfig struct {
	Path string
}

type RabbitMQConfig struct {
	URL          string
	ExchangeName string
}

type StdoutLogConfig struct {
	Level string
	JSON  bool
	Color bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Файл .env необязателен: если его нет, используются только переменные окружения.
func LoadConfig(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 && envPath[0] != "" {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppName:        getEnv("APP_NAME", "listings-service"),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CatalogPath:    getEnv("CATALOG_PATH", ""),
	}

	cfg.Mail = MailConfig{
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ResendBaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		From:          getEnv("MAIL_FROM", "Russ Rentals <noreply@russrentals.com>"),
		ContactEmail:  getEnv("CONTACT_EMAIL", "contact@russrentals.com"),
		SiteURL:       getEnv("SITE_URL", "https://russrentals.com"),
		Timeout:       time.Duration(getEnvAsInt("MAIL_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	cfg.Auth = AuthConfig{
		PublicKeyPEM:   getEnv("AUTH_JWT_PUBLIC_KEY", ""),
		Secret:         getEnv("AUTH_JWT_SECRET", ""),
		PublishableKey: getEnv("AUTH_PUBLISHABLE_KEY", ""),
		SignInURL:      getEnv("AUTH_SIGN_IN_URL", "/sign-in"),
		SignUpURL:      getEnv("AUTH_SIGN_UP_URL", "/sign-up"),
	}

	cfg.Postgres = PostgresConfig{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		MaxConns:    getEnvAsInt("DATABASE_MAX_CONNS", 5),
	}
	cfg.SQLite.Path = getEnv("SQLITE_PATH", "")

	cfg.RabbitMQ = RabbitMQConfig{
		URL:          getEnv("RABBITMQ_URL", ""),
		ExchangeName: getEnv("RABBITMQ_EXCHANGE", "listings_events"),
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.JSON = getEnvAsBool("STDOUT_LOG_JSON", cfg.Environment == "production")
	cfg.StdoutLogger.Color = getEnvAsBool("STDOUT_LOG_COLOR", !cfg.StdoutLogger.JSON)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых сервис не стартует.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %q", c.Port)
	}
	if c.Mail.Enabled() && c.Mail.ContactEmail == "" {
		return errors.New("CONTACT_EMAIL is required when RESEND_API_KEY is set")
	}
	if c.Mail.Timeout <= 0 {
		return errors.New("MAIL_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// getEnv - вспомогательная функция для чтения переменных окружения с значением по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются.
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
