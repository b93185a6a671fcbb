package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultJWTSecret is only meant for local runs; main warns when it is used.
const DefaultJWTSecret = "super-secret-key-change-me"

type Env struct {
	AppAddr            string        `envconfig:"APP_ADDR" default:":5000"`
	GinMode            string        `envconfig:"GIN_MODE"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS"`
	JWTSecret          string        `envconfig:"JWT_SECRET" default:"super-secret-key-change-me"`
	JWTTTL             time.Duration `envconfig:"JWT_TTL" default:"24h"`
	DBDSN              string        `envconfig:"DB_DSN"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile            string        `envconfig:"LOG_FILE"`
	RateLimitRPS       float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst     int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	AdminEmail         string        `envconfig:"ADMIN_EMAIL"`
	AdminPassword      string        `envconfig:"ADMIN_PASSWORD"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadEnv reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadEnv(files ...string) (Env, error) {
	_ = godotenv.Load(files...)

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("load env: %w", err)
	}

	env.AppAddr = strings.TrimSpace(env.AppAddr)
	env.GinMode = strings.TrimSpace(env.GinMode)
	env.DBDSN = strings.TrimSpace(env.DBDSN)

	origins := env.CORSAllowedOrigins[:0]
	for _, o := range env.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	env.CORSAllowedOrigins = origins

	if env.JWTTTL <= 0 {
		return Env{}, fmt.Errorf("JWT_TTL must be positive")
	}
	if env.RateLimitRPS <= 0 || env.RateLimitBurst <= 0 {
		return Env{}, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return env, nil
}
