package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
)

// S3 creates the artifact bucket client. It returns a nil client when no
// bucket is configured.
func S3(conf *appconfig.Config) (*s3.Client, error) {
	if conf.S3Bucket == "" {
		log.Debug().Str("evt.name", "infra.s3.disabled").Msg("s3 sink is disabled")
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.S3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}
	return s3.NewFromConfig(cfg), nil
}
