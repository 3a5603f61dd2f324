package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// Config holds application configuration values. It is built once by Load
// and never modified afterwards.
type Config struct {
	FrontendURL  string
	DashboardURL string

	JWTSecret    string
	JWTExpiry    time.Duration
	CookieExpiry time.Duration
	CookieSecure bool

	MongoURI    string
	MongoDBName string
	RedisURL    string

	DoctorCacheTTL time.Duration

	Port          string
	FrontendDist  string
	DashboardDist string

	UploadTempDir  string
	MaxUploadBytes int64

	RateLimitPerSecond float64

	AvatarBucket        string
	AWSRegion           string
	AvatarPublicBaseURL string
	AvatarLocalDir      string

	Email EmailConfig

	Debug bool
}

// EmailConfig configures the SMTP notifier. Host empty disables it.
type EmailConfig struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
}

// Load reads the .env file, if any, and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup. Every missing or malformed required
// key is reported in the returned error.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	e := &envReader{lookup: lookup}

	cfg := &Config{
		FrontendURL:  e.origin("FRONTEND_URL"),
		DashboardURL: e.origin("DASHBOARD_URL"),

		JWTSecret:    e.required("JWT_SECRET_KEY"),
		JWTExpiry:    e.requiredLifetime("JWT_EXPIRES"),
		CookieExpiry: time.Duration(e.integer("COOKIE_EXPIRE", 7)) * 24 * time.Hour,
		CookieSecure: e.boolean("COOKIE_SECURE", true),

		MongoURI:    e.required("MONGO_URI"),
		MongoDBName: e.optional("MONGO_DB_NAME", "hospital"),
		RedisURL:    e.optional("REDIS_URL", ""),

		DoctorCacheTTL: time.Duration(e.integer("DOCTOR_CACHE_TTL_MINUTES", 10)) * time.Minute,

		Port:          e.optional("PORT", "4000"),
		FrontendDist:  e.optional("FRONTEND_DIST", filepath.Join("frontend", "dist")),
		DashboardDist: e.optional("DASHBOARD_DIST", filepath.Join("dashboard", "dist")),

		UploadTempDir:  e.optional("UPLOAD_TEMP_DIR", filepath.Join(os.TempDir(), "hms-uploads")),
		MaxUploadBytes: int64(e.integer("MAX_UPLOAD_MB", 10)) << 20,

		RateLimitPerSecond: float64(e.integer("RATE_LIMIT_PER_SECOND", 10)),

		AvatarBucket:        e.optional("AVATAR_BUCKET", ""),
		AWSRegion:           e.optional("AWS_REGION", "us-east-1"),
		AvatarPublicBaseURL: e.optional("AVATAR_PUBLIC_BASE_URL", ""),
		AvatarLocalDir:      e.optional("AVATAR_LOCAL_DIR", filepath.Join("uploads", "avatars")),

		Email: EmailConfig{
			Host:        e.optional("EMAIL_HOST", ""),
			Port:        e.optional("EMAIL_PORT", "587"),
			Username:    e.optional("EMAIL_USERNAME", ""),
			AppPassword: e.optional("EMAIL_APP_PASSWORD", ""),
			From:        e.optional("EMAIL_FROM", ""),
		},

		Debug: e.boolean("DEBUG", false),
	}

	if len(e.problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(e.problems...))
	}
	return cfg, nil
}

// AllowedOrigins are the only origins allowed to make credentialed requests.
func (c *Config) AllowedOrigins() []string {
	return []string{c.FrontendURL, c.DashboardURL}
}

// GetJWTExpiry returns the lifetime of session tokens.
func (c *Config) GetJWTExpiry() time.Duration {
	return c.JWTExpiry
}

// GetCookieExpiry returns the lifetime of session cookies.
func (c *Config) GetCookieExpiry() time.Duration {
	return c.CookieExpiry
}

// GetDoctorCacheTTL returns how long the doctor listing stays cached.
func (c *Config) GetDoctorCacheTTL() time.Duration {
	return c.DoctorCacheTTL
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

type envReader struct {
	lookup   func(string) (string, bool)
	problems []error
}

func (e *envReader) value(key string) string {
	v, _ := e.lookup(key)
	return strings.TrimSpace(v)
}

func (e *envReader) optional(key, fallback string) string {
	if v := e.value(key); v != "" {
		return v
	}
	return fallback
}

func (e *envReader) required(key string) string {
	v := e.value(key)
	if v == "" {
		e.problems = append(e.problems, fmt.Errorf("%s is required", key))
	}
	return v
}

// origin reads a required http(s) origin and strips any trailing slash.
func (e *envReader) origin(key string) string {
	v := e.required(key)
	if v == "" {
		return ""
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		e.problems = append(e.problems, fmt.Errorf("%s must be an http(s) URL, got %q", key, v))
		return ""
	}
	return strings.TrimRight(v, "/")
}

func (e *envReader) requiredLifetime(key string) time.Duration {
	v := e.required(key)
	if v == "" {
		return 0
	}
	d, err := ParseLifetime(v)
	if err != nil {
		e.problems = append(e.problems, fmt.Errorf("%s: %w", key, err))
	}
	return d
}

func (e *envReader) integer(key string, fallback int) int {
	v := e.value(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		e.problems = append(e.problems, fmt.Errorf("%s must be a positive integer, got %q", key, v))
		return fallback
	}
	return n
}

func (e *envReader) boolean(key string, fallback bool) bool {
	v := e.value(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.problems = append(e.problems, fmt.Errorf("%s must be a boolean, got %q", key, v))
		return fallback
	}
	return b
}

// ParseLifetime accepts Go durations ("72h", "30m") plus whole days ("7d")
// and bare seconds ("3600").
func ParseLifetime(s string) (time.Duration, error) {
	var d time.Duration
	switch {
	case strings.HasSuffix(s, "d"):
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid lifetime %q", s)
		}
		d = time.Duration(days) * 24 * time.Hour
	default:
		if secs, err := strconv.Atoi(s); err == nil {
			d = time.Duration(secs) * time.Second
			break
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid lifetime %q", s)
		}
		d = parsed
	}
	if d <= 0 {
		return 0, fmt.Errorf("lifetime %q must be positive", s)
	}
	return d, nil
}
