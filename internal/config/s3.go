package config

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/navstack-dev/navstack/internal/errors"
)

// s3Prefix marks a configuration source as an S3 object URL.
const s3Prefix = "s3://"

// ObjectGetter is the subset of the S3 client used to fetch
// configuration objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// IsS3Source reports whether source is an s3://bucket/key URL.
func IsS3Source(source string) bool {
	return strings.HasPrefix(source, s3Prefix)
}

// LoadS3 fetches and parses configuration from an S3 object.
func LoadS3(ctx context.Context, client ObjectGetter, bucket, key string) (*Config, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.FromError(err, errors.CodeConfigFetchFailed).
			WithSuggestionf("check that s3://%s/%s exists and is readable", bucket, key)
	}
	defer out.Body.Close()

	// Buffer the object so a decode error reports cleanly instead of
	// surfacing as a half-consumed stream.
	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeConfigFetchFailed)
	}

	cfg, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	cfg.configPath = s3Prefix + bucket + "/" + key
	return cfg, nil
}

// splitS3Source splits "s3://bucket/key" into bucket and key.
func splitS3Source(source string) (bucket, key string, ok bool) {
	rest := strings.TrimPrefix(source, s3Prefix)
	bucket, key, ok = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, ok
}

// Resolve loads configuration from a local path or an s3://bucket/key
// URL. An empty source loads ConfigFileName from the current
// directory. The AWS client is constructed lazily from the default
// credential chain only when an S3 source is given.
func Resolve(ctx context.Context, source string) (*Config, error) {
	if !IsS3Source(source) {
		return Load(source)
	}

	bucket, key, ok := splitS3Source(source)
	if !ok {
		return nil, errors.New(errors.CodeConfigFetchFailed).
			WithDetail("an S3 source must look like s3://bucket/path/to/navstack.json")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeConfigFetchFailed).
			WithSuggestion("configure AWS credentials for the default chain")
	}
	return LoadS3(ctx, s3.NewFromConfig(awsCfg), bucket, key)
}
