package publish

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads the image and snapshot under a key prefix.
type S3Sink struct {
	client objectPutter
	bucket string

	// prefix is for the objects in the bucket with no leading slash but
	// optionally (typically) with trailing slash, e.g. "spl3/" or ""
	prefix string
}

func NewS3Sink(client objectPutter, bucket, prefix string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Sink) Name() string { return "s3" }

func (s *S3Sink) Publish(ctx context.Context, a *Artifacts) error {
	for _, obj := range []struct {
		name, contentType string
		body              []byte
	}{
		{ImageObject, "image/png", a.image},
		{SnapshotObject, "application/json", a.body},
	} {
		key := s.prefix + obj.name
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(s.bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(obj.body),
			ContentType:  aws.String(obj.contentType),
			CacheControl: aws.String("no-cache"),
		})
		if err != nil {
			var ae smithy.APIError
			if errors.As(err, &ae) {
				return errors.Wrapf(err, "failed to put object %s: %s", key, ae.ErrorCode())
			}
			return errors.Wrapf(err, "failed to put object %s", key)
		}
		log.Debug().Str("evt.name", "publish.s3").Str("bucket", s.bucket).Str("key", key).Int("size", len(obj.body)).Msg("object uploaded")
	}
	return nil
}
