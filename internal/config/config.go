package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds the environment-driven configuration for the API.
type App struct {
	Port        string `envconfig:"PORT" default:"5000"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`

	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS"`
	AllowAllOrigins bool     `envconfig:"ALLOW_ALL_ORIGINS" default:"false"`

	// Redis backs the login rate limiter. Leaving REDIS_ADDR empty
	// disables rate limiting entirely.
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PW"`
	RedisDB         int           `envconfig:"REDIS_DB" default:"0"`
	LoginRateLimit  int64         `envconfig:"LOGIN_RATE_LIMIT" default:"10"`
	LoginRateWindow time.Duration `envconfig:"LOGIN_RATE_WINDOW" default:"1m"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
