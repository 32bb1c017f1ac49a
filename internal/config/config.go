package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultWeatherBaseURL = "http://api.openweathermap.org/data/2.5/weather"
	DefaultWeatherLang    = "kr"
	DefaultWeatherTimeout = 10 * time.Second
)

// WeatherConfig is everything the OpenWeatherMap client needs.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Lang    string
	Timeout time.Duration
}

// Config holds all the environment‐driven settings for the API server and scheduler.
type Config struct {
	Weather WeatherConfig

	// Database (Postgres)
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	DatabaseURL      string

	// Redis, optional: an empty RedisAddr disables the cache
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// API
	Port string

	// Scheduler
	WatchCities   []string
	WatchSchedule string

	LogLevel string
}

// LoadWeather resolves the API key from sources (in order) and reads the
// optional client overrides from the environment.
func LoadWeather(sources ...Source) (WeatherConfig, error) {
	key, err := ResolveAPIKey(sources...)
	if err != nil {
		return WeatherConfig{}, err
	}

	baseURL := os.Getenv("OPENWEATHER_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	lang := os.Getenv("OPENWEATHER_LANG")
	if lang == "" {
		lang = DefaultWeatherLang
	}
	timeout, err := durationEnv("WEATHER_TIMEOUT", DefaultWeatherTimeout)
	if err != nil {
		return WeatherConfig{}, err
	}

	return WeatherConfig{
		APIKey:  key,
		BaseURL: baseURL,
		Lang:    lang,
		Timeout: timeout,
	}, nil
}

// Load reads and validates all required environment variables, applying defaults
// where appropriate. It returns an error if any required variable is missing or malformed.
func Load() (*Config, error) {
	weatherCfg, err := LoadWeather(DefaultSources()...)
	if err != nil {
		return nil, err
	}

	// Postgres settings
	pgUser := os.Getenv("POSTGRES_USER")
	if pgUser == "" {
		return nil, fmt.Errorf("POSTGRES_USER is required")
	}
	pgPass := os.Getenv("POSTGRES_PASSWORD")
	if pgPass == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	pgDB := os.Getenv("POSTGRES_DB")
	if pgDB == "" {
		return nil, fmt.Errorf("POSTGRES_DB is required")
	}
	pgHost := os.Getenv("POSTGRES_HOST")
	if pgHost == "" {
		pgHost = "db"
	}
	pgPortStr := os.Getenv("POSTGRES_PORT")
	if pgPortStr == "" {
		pgPortStr = "5432"
	}
	pgPort, err := strconv.Atoi(pgPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", pgPortStr, err)
	}
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPass, pgHost, pgPort, pgDB,
	)

	// Redis settings
	cacheTTL, err := durationEnv("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	schedule := os.Getenv("WATCH_SCHEDULE")
	if schedule == "" {
		schedule = "*/15 * * * *"
	}

	return &Config{
		Weather: weatherCfg,

		PostgresUser:     pgUser,
		PostgresPassword: pgPass,
		PostgresDB:       pgDB,
		PostgresHost:     pgHost,
		PostgresPort:     pgPort,
		DatabaseURL:      databaseURL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      cacheTTL,

		Port: port,

		WatchCities:   splitCities(os.Getenv("WATCH_CITIES")),
		WatchSchedule: schedule,

		LogLevel: os.Getenv("LOG_LEVEL"),
	}, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}

// splitCities parses a comma-separated watch list, dropping blanks.
func splitCities(raw string) []string {
	var cities []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}
