package appconfig

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appcontext"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

const EnvPrefix = "spl3"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(".env")
	if err != nil {
		log.Debug().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(EnvPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(EnvPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

// Validate checks field constraints and cross-field consistency.
func (c *ConfigSpec) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return spl3err.ErrInvalidConfig.Msg("%s", err.Error())
	}
	for i := 1; i < len(c.DifficultyThresholds); i++ {
		if c.DifficultyThresholds[i] >= c.DifficultyThresholds[i-1] {
			return spl3err.ErrInvalidConfig.Msg("difficulty thresholds must be strictly descending, got %v", c.DifficultyThresholds)
		}
	}
	return nil
}
