package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // Optional; empty disables API key authentication

	// HTTP edge
	TrustedProxies  []string
	ClientRateLimit int // requests per minute per client IP
	ClientBurst     int

	// Database archive
	ArchiveEnabled    bool
	DatabaseURL       string // Overrides the DB_* parts when set
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SnapshotRetention int

	// Market data feed
	MarketServer      string
	MarketBaseURL     string
	MarketCities      []string
	MarketQuality     int
	ExtraItems        []string
	PollInterval      time.Duration
	FetchTimeout      time.Duration
	StaleAfter        time.Duration
	ChunkSize         int
	Concurrency       int
	RequestsPerMinute int
	MaxRetries        int
	HistoryCacheSize  int
	HistoryCacheTTL   time.Duration

	// Engine
	TaxRate        float64
	FallbackToBase bool

	// Static data
	RecipesPath    string
	CharactersPath string
	DeadLetterPath string

	WorkerCount int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES", nil),
		ClientRateLimit: getEnvAsInt("CLIENT_RATE_LIMIT", DefaultClientRateLimit),
		ClientBurst:     getEnvAsInt("CLIENT_BURST", DefaultClientBurst),

		ArchiveEnabled:    getEnvAsBool("ARCHIVE_ENABLED", false),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SnapshotRetention: getEnvAsInt("SNAPSHOT_RETENTION", DefaultSnapshotRetention),

		MarketServer:      getEnv("MARKET_SERVER", DefaultMarketServer),
		MarketBaseURL:     getEnv("MARKET_BASE_URL", ""),
		MarketCities:      getEnvAsList("MARKET_CITIES", nil),
		MarketQuality:     getEnvAsInt("MARKET_QUALITY", DefaultMarketQuality),
		ExtraItems:        getEnvAsList("MARKET_EXTRA_ITEMS", nil),
		PollInterval:      getEnvAsDuration("MARKET_POLL_INTERVAL", DefaultPollInterval),
		FetchTimeout:      getEnvAsDuration("MARKET_FETCH_TIMEOUT", DefaultFetchTimeout),
		StaleAfter:        getEnvAsDuration("MARKET_STALE_AFTER", DefaultStaleAfter),
		ChunkSize:         getEnvAsInt("MARKET_CHUNK_SIZE", DefaultChunkSize),
		Concurrency:       getEnvAsInt("MARKET_CONCURRENCY", DefaultConcurrency),
		RequestsPerMinute: getEnvAsInt("MARKET_REQUESTS_PER_MINUTE", DefaultRequestsPerMinute),
		MaxRetries:        getEnvAsInt("MARKET_MAX_RETRIES", DefaultMaxRetries),
		HistoryCacheSize:  getEnvAsInt("MARKET_HISTORY_CACHE_SIZE", DefaultHistoryCacheSize),
		HistoryCacheTTL:   getEnvAsDuration("MARKET_HISTORY_CACHE_TTL", DefaultHistoryCacheTTL),

		TaxRate:        getEnvAsFloat("TAX_RATE", DefaultTaxRate),
		FallbackToBase: getEnvAsBool("PRICE_FALLBACK_TO_BASE", true),

		RecipesPath:    getEnv("RECIPES_PATH", ConfigPathRecipes),
		CharactersPath: getEnv("CHARACTERS_PATH", ConfigPathCharacters),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),

		WorkerCount: getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DatabaseURL != "" {
		cfg.ArchiveEnabled = true
	}

	return cfg, nil
}

// Server parses the configured market server
func (c *Config) Server() (domain.Server, error) {
	return domain.ParseServer(c.MarketServer)
}

// Cities parses the configured market cities. Empty means every regular market city.
func (c *Config) Cities() ([]domain.City, error) {
	if len(c.MarketCities) == 0 {
		return append([]domain.City{}, domain.MarketCities...), nil
	}
	cities := make([]domain.City, 0, len(c.MarketCities))
	for _, name := range c.MarketCities {
		city, err := domain.ParseCity(name)
		if err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
