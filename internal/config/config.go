package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds process level settings loaded at startup.
type Config struct {
	AppEnv   string
	HTTPPort int

	PGHost     string
	PGPort     int
	PGUser     string
	PGPassword string
	PGDatabase string
	PGSSLMode  string

	RateLimitPerSecond float64
	RateLimitBurst     int
}

func defaults() Config {
	return Config{
		AppEnv:             "development",
		HTTPPort:           8080,
		PGHost:             "localhost",
		PGPort:             5432,
		PGUser:             "postgres",
		PGPassword:         "postgres",
		PGDatabase:         "vinculacion",
		PGSSLMode:          "disable",
		RateLimitPerSecond: 5,
		RateLimitBurst:     20,
	}
}

// Load reads config.yaml from configPath (optional) and applies environment
// overrides (APP_ENV, HTTP_PORT, PG_HOST, PG_PORT, PG_USER, PG_PASSWORD,
// PG_DB, PG_SSLMODE).
func Load(configPath string) (Config, error) {
	cfg := defaults()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.BindEnv("app_env", "APP_ENV")
	v.BindEnv("http_port", "HTTP_PORT")
	v.BindEnv("database.host", "PG_HOST")
	v.BindEnv("database.port", "PG_PORT")
	v.BindEnv("database.user", "PG_USER")
	v.BindEnv("database.password", "PG_PASSWORD")
	v.BindEnv("database.dbname", "PG_DB")
	v.BindEnv("database.sslmode", "PG_SSLMODE")
	v.BindEnv("rate_limit.per_second", "RATE_LIMIT_PER_SECOND")
	v.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	// Config file is optional, env vars and defaults are enough to boot.
	_ = v.ReadInConfig()

	if v.IsSet("app_env") {
		cfg.AppEnv = v.GetString("app_env")
	}
	if v.IsSet("http_port") {
		cfg.HTTPPort = v.GetInt("http_port")
	}
	if v.IsSet("database.host") {
		cfg.PGHost = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.PGPort = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.PGUser = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.PGPassword = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.PGDatabase = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.PGSSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("rate_limit.per_second") {
		cfg.RateLimitPerSecond = v.GetFloat64("rate_limit.per_second")
	}
	if v.IsSet("rate_limit.burst") {
		cfg.RateLimitBurst = v.GetInt("rate_limit.burst")
	}

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase, c.PGSSLMode)
}
