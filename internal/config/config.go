package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the quiz API service.
type Config struct {
	Addr             string        `env:"ADDR,default=:5001"`
	MongoURI         string        `env:"MONGO_URI,required"`
	MongoDatabase    string        `env:"MONGO_DB,default=quizgen"`
	JWTSigningKey    string        `env:"JWT_SIGNING_KEY,required"`
	TokenTTL         time.Duration `env:"TOKEN_TTL,default=1h"`
	GeneratorBin     string        `env:"GENERATOR_BIN,default=python3"`
	GeneratorScript  string        `env:"GENERATOR_SCRIPT,default=main.py"`
	GeneratorTimeout time.Duration `env:"GENERATOR_TIMEOUT,default=2m"`
	UploadDir        string        `env:"UPLOAD_DIR"`
	AllowedOrigins   []string      `env:"CORS_ALLOWED_ORIGINS,default=*"`
	NATSURL          string        `env:"NATS_URL"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSigningKey == "" {
		return errors.New("jwt signing key is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	if c.GeneratorTimeout <= 0 {
		return errors.New("generator timeout must be positive")
	}
	return nil
}
