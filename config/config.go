package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Pagination PaginationConfig
	Seed       SeedConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	Issuer       string
	AccessExpiry time.Duration
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// SeedConfig holds the credentials of a moderator account created at startup when missing.
// Both fields empty disables seeding.
type SeedConfig struct {
	Email    string
	Password string
}

// IsDevelopment reports whether the service runs with development defaults
func (c AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file, if it exists, and overlays the process environment.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry := v.GetDuration("JWT_ACCESS_EXPIRY")
	if accessExpiry <= 0 {
		accessExpiry = 8 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			Issuer:       v.GetString("JWT_ISSUER"),
			AccessExpiry: accessExpiry,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: v.GetInt("PAGINATION_DEFAULT_SIZE"),
			MaxPageSize:     v.GetInt("PAGINATION_MAX_SIZE"),
		},
		Seed: SeedConfig{
			Email:    v.GetString("ADMIN_SEED_EMAIL"),
			Password: v.GetString("ADMIN_SEED_PASSWORD"),
		},
	}

	if config.JWT.Secret == "" && !config.App.IsDevelopment() {
		return nil, fmt.Errorf("JWT_SECRET is required in %s", config.App.Env)
	}
	if config.JWT.Secret == "" {
		config.JWT.Secret = "development-secret"
	}
	if (config.Seed.Email == "") != (config.Seed.Password == "") {
		return nil, errors.New("ADMIN_SEED_EMAIL and ADMIN_SEED_PASSWORD must be set together")
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ISSUER", "truedoc-admin")
	v.SetDefault("JWT_ACCESS_EXPIRY", "8h")
	v.SetDefault("PAGINATION_DEFAULT_SIZE", 10)
	v.SetDefault("PAGINATION_MAX_SIZE", 100)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
