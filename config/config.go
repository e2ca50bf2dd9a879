package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultCallTimeoutSeconds = 10

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocodingBaseURL   string
	GeocodingUserAgent string
	GeocodingTimeout   time.Duration

	WeatherBaseURL string
	WeatherTimeout time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	TrustProxyHeaders bool

	ZipkinEndpoint string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("GEOCODING_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODING_USER_AGENT", "weather-service")
	v.SetDefault("GEOCODING_TIMEOUT", defaultCallTimeoutSeconds)
	v.SetDefault("WEATHER_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("WEATHER_TIMEOUT", defaultCallTimeoutSeconds)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		GeocodingBaseURL:   v.GetString("GEOCODING_BASE_URL"),
		GeocodingUserAgent: v.GetString("GEOCODING_USER_AGENT"),
		GeocodingTimeout:   secondsOrDefault(v.GetInt("GEOCODING_TIMEOUT")),
		WeatherBaseURL:     v.GetString("WEATHER_BASE_URL"),
		WeatherTimeout:     secondsOrDefault(v.GetInt("WEATHER_TIMEOUT")),
		RateLimitRPS:       v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		ZipkinEndpoint:     v.GetString("ZIPKIN_ENDPOINT"),
		TrustProxyHeaders:  v.GetBool("TRUST_PROXY_HEADERS"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// AuditEnabled reports whether a database is configured for the lookup audit log.
func (c *Config) AuditEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// secondsOrDefault reads collaborator timeouts as whole seconds, like HTTP_TIMEOUT.
// Unparsable or non-positive values fall back to the default.
func secondsOrDefault(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = defaultCallTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
