package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	AppEnv string
	Addr   string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type PostgresConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
			Addr:   getEnv("SERVER_ADDR", ":8080"),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOGGER_LEVEL", "debug"),
			Encoding: getEnv("LOGGER_ENCODING", "console"),
		},
		Postgres: PostgresConfig{
			Host:         getEnv("POSTGRES_HOST", "localhost"),
			Port:         getEnv("POSTGRES_PORT", "5432"),
			User:         getEnv("POSTGRES_USER", "shop"),
			Password:     getEnv("POSTGRES_PASSWORD", "shop"),
			DBName:       getEnv("POSTGRES_DB", "shop_catalog"),
			SSLMode:      getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
		},
	}
}

// DSN builds a lib/pq connection string from the postgres settings.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
