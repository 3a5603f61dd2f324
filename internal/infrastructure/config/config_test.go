package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"FRONTEND_URL":   "http://localhost:5173/",
		"DASHBOARD_URL":  "http://localhost:5174",
		"JWT_SECRET_KEY": "secret",
		"JWT_EXPIRES":    "7d",
		"MONGO_URI":      "mongodb://localhost:27017",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, cfg.AllowedOrigins())
	assert.Equal(t, 7*24*time.Hour, cfg.GetJWTExpiry())
	assert.Equal(t, 7*24*time.Hour, cfg.GetCookieExpiry())
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "hospital", cfg.MongoDBName)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 10*time.Minute, cfg.GetDoctorCacheTTL())
	assert.Equal(t, float64(10), cfg.RateLimitPerSecond)
	assert.Empty(t, cfg.Email.Host)
}

func TestFromLookup_Overrides(t *testing.T) {
	env := baseEnv()
	env["COOKIE_EXPIRE"] = "2"
	env["COOKIE_SECURE"] = "false"
	env["PORT"] = "8080"
	env["JWT_EXPIRES"] = "90m"
	env["EMAIL_HOST"] = "smtp.example.com"

	cfg, err := FromLookup(lookupFrom(env))
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, cfg.CookieExpiry)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, "smtp.example.com", cfg.Email.Host)
	assert.Equal(t, "587", cfg.Email.Port)
}

func TestFromLookup_ReportsEveryProblem(t *testing.T) {
	env := map[string]string{
		"FRONTEND_URL":  "localhost:5173",
		"JWT_EXPIRES":   "soon",
		"COOKIE_EXPIRE": "-1",
	}

	_, err := FromLookup(lookupFrom(env))
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{"FRONTEND_URL", "DASHBOARD_URL", "JWT_SECRET_KEY", "JWT_EXPIRES", "MONGO_URI", "COOKIE_EXPIRE"} {
		assert.Contains(t, msg, want)
	}
}

func TestParseLifetime(t *testing.T) {
	cases := map[string]time.Duration{
		"7d":   7 * 24 * time.Hour,
		"1d":   24 * time.Hour,
		"3600": time.Hour,
		"72h":  72 * time.Hour,
		"30m":  30 * time.Minute,
	}
	for in, want := range cases {
		got, err := ParseLifetime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "d", "0d", "-5m", "0", "week"} {
		_, err := ParseLifetime(in)
		assert.Error(t, err, in)
	}
}
