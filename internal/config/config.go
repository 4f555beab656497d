package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"8080"`
	IsTestMode bool   `env:"TEST_MODE"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost        int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	ResetTokenValidDuration time.Duration `env:"RESET_TOKEN_VALID_DURATION" envDefault:"15m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AwsRegion                  string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey               string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey               string `env:"AWS_SECRET_KEY"`
	AwsEmailSender             string `env:"AWS_EMAIL_SENDER"`
	AwsEmailResetTokenTemplate string `env:"AWS_EMAIL_RESET_TOKEN_TEMPLATE" envDefault:"PasswordResetToken"`

	GroqApiKey         string        `env:"GROQ_API_KEY"`
	GroqBaseURL        string        `env:"GROQ_BASE_URL"`
	GroqModel          string        `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	GroqRequestTimeout time.Duration `env:"GROQ_REQUEST_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
