package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Worker    WorkerConfig
	Auth      AuthConfig
	Mail      MailConfig
	Chatbot   ChatbotConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
	PublicURL   string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CategoriesCacheTTL time.Duration
	ListingsCacheTTL   time.Duration
	RoutesCacheTTL     time.Duration
	StatsCacheTTL      time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

type AuthConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	PasswordResetTTL time.Duration
	// Учётная запись администратора, создаётся при старте, если задана
	AdminEmail       string
	AdminPassword    string
}

type MailConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	AdminAddress string
	UseOutbox    bool
}

type ChatbotConfig struct {
	GeminiAPIKey   string
	Model          string
	HistoryLimit   int
	RatePerMinute  int
	RequestTimeout time.Duration
}

type RateLimitConfig struct {
	ContactPerMinute int
}

// Load читает конфигурацию из окружения. Файл .env необязателен.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию, подгружая переменные из указанного env-файла, если он существует
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		// Отсутствие файла не ошибка: в контейнере всё приходит из окружения
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ORIGINS"),
			PublicURL:   strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CategoriesCacheTTL: time.Duration(v.GetInt("CATEGORIES_CACHE_TTL")) * time.Second,
			ListingsCacheTTL:   time.Duration(v.GetInt("LISTINGS_CACHE_TTL")) * time.Second,
			RoutesCacheTTL:     time.Duration(v.GetInt("ROUTES_CACHE_TTL")) * time.Second,
			StatsCacheTTL:      time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
		},
		Auth: AuthConfig{
			JWTSecret:        v.GetString("JWT_SECRET"),
			TokenTTL:         time.Duration(v.GetInt("JWT_TTL")) * time.Second,
			PasswordResetTTL: time.Duration(v.GetInt("PASSWORD_RESET_TTL")) * time.Second,
			AdminEmail:       v.GetString("ADMIN_EMAIL"),
			AdminPassword:    v.GetString("ADMIN_PASSWORD"),
		},
		Mail: MailConfig{
			Host:         v.GetString("SMTP_HOST"),
			Port:         v.GetInt("SMTP_PORT"),
			Username:     v.GetString("SMTP_USERNAME"),
			Password:     v.GetString("SMTP_PASSWORD"),
			From:         v.GetString("MAIL_FROM"),
			AdminAddress: v.GetString("MAIL_ADMIN_ADDRESS"),
			UseOutbox:    v.GetBool("MAIL_USE_OUTBOX"),
		},
		Chatbot: ChatbotConfig{
			GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
			Model:          v.GetString("CHATBOT_MODEL"),
			HistoryLimit:   v.GetInt("CHATBOT_HISTORY_LIMIT"),
			RatePerMinute:  v.GetInt("CHATBOT_RATE_PER_MINUTE"),
			RequestTimeout: time.Duration(v.GetInt("CHATBOT_REQUEST_TIMEOUT")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			ContactPerMinute: v.GetInt("CONTACT_RATE_PER_MINUTE"),
		},
	}

	if cfg.Server.Env == "production" && cfg.Auth.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

const defaultJWTSecret = "dev-secret-change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("PUBLIC_URL", "http://localhost:5173")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "tourism")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 1800)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CATEGORIES_CACHE_TTL", 600)
	v.SetDefault("LISTINGS_CACHE_TTL", 300)
	v.SetDefault("ROUTES_CACHE_TTL", 600)
	v.SetDefault("STATS_CACHE_TTL", 3600)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "email-outbox-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_MAX_RETRIES", 3)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", 86400)
	v.SetDefault("PASSWORD_RESET_TTL", 3600)

	v.SetDefault("SMTP_HOST", "localhost")
	v.SetDefault("SMTP_PORT", 1025)
	v.SetDefault("MAIL_FROM", "Visit Namibia <no-reply@visitnamibia.local>")
	v.SetDefault("MAIL_ADMIN_ADDRESS", "admin@visitnamibia.local")
	v.SetDefault("MAIL_USE_OUTBOX", true)

	v.SetDefault("CHATBOT_MODEL", "gemini-2.0-flash")
	v.SetDefault("CHATBOT_HISTORY_LIMIT", 20)
	v.SetDefault("CHATBOT_RATE_PER_MINUTE", 20)
	v.SetDefault("CHATBOT_REQUEST_TIMEOUT", 15)

	v.SetDefault("CONTACT_RATE_PER_MINUTE", 5)
}

// CORSOriginList возвращает список разрешённых origin
func (c *Config) CORSOriginList() []string {
	return splitList(c.Server.CORSOrigins)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN строка подключения в формате key=value
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) GetSMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Mail.Host, c.Mail.Port)
}
