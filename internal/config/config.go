package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds environment-driven configuration for both the api and the
// checkout client.
type Config struct {
	Env      string
	LogLevel string

	// api
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// checkout client
	APIURL      string
	Email       string
	Password    string
	Timeout     time.Duration
	SubmitGuard bool
	LogFile     string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PET_SHOP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "dev-secret")
	v.SetDefault("JWT_TTL", "72h")
	v.SetDefault("CHECKOUT_API_URL", "http://localhost:8080")
	v.SetDefault("CHECKOUT_EMAIL", "")
	v.SetDefault("CHECKOUT_PASSWORD", "")
	v.SetDefault("CHECKOUT_TIMEOUT", "10s")
	v.SetDefault("CHECKOUT_SUBMIT_GUARD", true)
	v.SetDefault("CHECKOUT_LOG_FILE", "checkout.log")
}

// Load reads .env (when present) and environment variables.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	cfg := Config{
		Env:         strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		Addr:        v.GetString("PET_SHOP_ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTL:      v.GetDuration("JWT_TTL"),
		APIURL:      strings.TrimRight(v.GetString("CHECKOUT_API_URL"), "/"),
		Email:       v.GetString("CHECKOUT_EMAIL"),
		Password:    v.GetString("CHECKOUT_PASSWORD"),
		Timeout:     v.GetDuration("CHECKOUT_TIMEOUT"),
		SubmitGuard: v.GetBool("CHECKOUT_SUBMIT_GUARD"),
		LogFile:     v.GetString("CHECKOUT_LOG_FILE"),
	}
	if cfg.Env != "dev" && cfg.Env != "prod" {
		cfg.Env = "prod"
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = 72 * time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg
}
