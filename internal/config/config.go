package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret string
	TokenTTL  time.Duration

	// Infrastructure
	DBAddr  string
	DBDebug bool

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// Per-IP rate limit applied to credential endpoints.
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// Default admin seeded on an empty store.
	AdminSeed AdminSeed
}

// AdminSeed describes the bootstrap admin account. It is created once when
// no admin row exists; the fixed password lets an operator reach the
// setup-totp endpoint on a fresh install.
type AdminSeed struct {
	AdminName string
	UID       string
	Name      string
	Email     string
	Password  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DBDebug:  os.Getenv("DB_DEBUG") == "true",
	}

	// The signing secret is process-wide state: resolve it exactly once,
	// before any token is signed or verified. A missing secret is generated
	// and persisted so restarts keep existing sessions valid.
	secret, err := EnsureJWTSecret(getEnv("ENV_FILE", ".env"))
	if err != nil {
		return nil, err
	}
	cfg.JWTSecret = secret

	ttl, err := getDuration("TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	// The service cannot operate without its store; fail fast.
	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	rl, err := getInt("AUTH_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	cfg.AuthRateLimit = rl

	rw, err := getDuration("AUTH_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.AuthRateWindow = rw

	cfg.AdminSeed = AdminSeed{
		AdminName: getEnv("ADMIN_SEED_ADMINNAME", "admin"),
		UID:       getEnv("ADMIN_SEED_UID", "23016053"),
		Name:      getEnv("ADMIN_SEED_NAME", "Default Admin"),
		Email:     getEnv("ADMIN_SEED_EMAIL", "admin.legislate@gmail.com"),
		Password:  getEnv("ADMIN_SEED_PASSWORD", "23016053"),
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}
