// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/netdiff/internal/log"
)

// Scheme prefixes a location held in S3.
const Scheme = "s3://"

// ObjectGetter is the part of the S3 client used to read objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Location is a bucket and key parsed from an s3:// URI.
type Location struct {
	Bucket string
	Key    string
}

// String returns the location as an s3:// URI.
func (l Location) String() string {
	return Scheme + l.Bucket + "/" + l.Key
}

// IsURI reports whether s names an S3 object.
func IsURI(s string) bool {
	return strings.HasPrefix(s, Scheme)
}

// ParseURI splits an s3://bucket/key URI. Both bucket and key are required.
func ParseURI(uri string) (Location, error) {
	if !IsURI(uri) {
		return Location{}, fmt.Errorf("not an s3 uri: %s", uri)
	}
	bucket, key, _ := strings.Cut(strings.TrimPrefix(uri, Scheme), "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("s3 uri needs a bucket and a key: %s", uri)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// GetObject reads the whole object at loc.
func GetObject(ctx context.Context, client ObjectGetter, loc Location) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(loc.Bucket),
		Key:    awsv2.String(loc.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", loc, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", loc, err)
	}
	log.Debugf("s3 get: %s bytes=%d", loc, len(data))
	return data, nil
}
