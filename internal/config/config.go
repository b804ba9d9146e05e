package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"nxtrix/internal/common"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	DatabaseURL string
	AutoMigrate bool

	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string
	SupabaseJWKSURL   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint     string
	MinioAccessKey    string
	MinioSecretKey    string
	MinioUseSSL       bool
	MinioExportBucket string
	MinioRegion       string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripeAPIBase       string
	Prices              PriceTable

	CORSAllowedOrigin string
	SiteURL           string

	DashboardCacheTTL time.Duration
}

// PriceTable maps plan -> billing cycle -> processor price id.
type PriceTable map[string]map[string]string

// Lookup returns the price id for the pair, or "" when there is no mapping
// or the mapped environment variable is unset.
func (p PriceTable) Lookup(plan, billingCycle string) string {
	cycles, ok := p[plan]
	if !ok {
		return ""
	}
	return cycles[billingCycle]
}

// Load reads .env (if present) and the environment. Missing store or auth
// credentials produce a ConfigurationError.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      get("PORT", "8080"),
		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "json"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		AutoMigrate: getBool("AUTO_MIGRATE", false),

		SupabaseURL:       strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		SupabaseJWKSURL:   os.Getenv("SUPABASE_JWKS_URL"),

		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		MinioEndpoint:     get("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:    get("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:    get("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:       getBool("MINIO_USE_SSL", false),
		MinioExportBucket: get("MINIO_EXPORT_BUCKET", "lead-exports"),
		MinioRegion:       get("MINIO_REGION", "us-east-1"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeAPIBase:       get("STRIPE_API_BASE", "https://api.stripe.com/v1"),
		Prices:              loadPrices(),

		CORSAllowedOrigin: get("CORS_ALLOWED_ORIGIN", "https://nxtrix.com"),
		SiteURL:           strings.TrimRight(get("SITE_URL", "https://nxtrix.com"), "/"),

		DashboardCacheTTL: getDuration("DASHBOARD_CACHE_TTL", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URL", c.DatabaseURL},
		{"SUPABASE_URL", c.SupabaseURL},
		{"SUPABASE_ANON_KEY", c.SupabaseAnonKey},
	}
	for _, r := range required {
		if r.value == "" {
			return common.NewConfigurationError(fmt.Sprintf("missing required env: %s", r.name))
		}
	}
	if c.SupabaseJWTSecret == "" && c.SupabaseJWKSURL == "" {
		return common.NewConfigurationError("one of SUPABASE_JWT_SECRET or SUPABASE_JWKS_URL is required")
	}
	return nil
}

func loadPrices() PriceTable {
	return PriceTable{
		"solo": {
			"monthly": os.Getenv("STRIPE_SOLO_MONTHLY"),
			"annual":  os.Getenv("STRIPE_SOLO_ANNUAL"),
		},
		"team": {
			"monthly": os.Getenv("STRIPE_TEAM_MONTHLY"),
			"annual":  os.Getenv("STRIPE_TEAM_ANNUAL"),
		},
		"business": {
			"monthly": os.Getenv("STRIPE_BUSINESS_MONTHLY"),
			"annual":  os.Getenv("STRIPE_BUSINESS_ANNUAL"),
		},
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
