package storage

import (
	"context"
	"mime"
	"path"
	"strings"
)

// Store reads and writes whole objects.
type Store interface {
	// Get returns ErrNotFound for a missing key and ErrObjectTooLarge for
	// objects over the configured limit.
	Get(ctx context.Context, key string) (*Object, error)
	Put(ctx context.Context, obj *Object) error
	Head(ctx context.Context, key string) (*ObjectInfo, error)
}

// Object is an object held in memory.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
}

// ObjectInfo describes an object without its body.
type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// IsHTML reports whether the object should be rewritten in href-only mode,
// judging by its content type or, when that is missing, by its extension.
func (o *Object) IsHTML() bool {
	if mt, _, err := mime.ParseMediaType(o.ContentType); err == nil && mt != "" {
		return mt == "text/html" || mt == "application/xhtml+xml"
	}
	switch strings.ToLower(path.Ext(o.Key)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Config describes an S3-compatible bucket.
type Config struct {
	Bucket    string `env:"S3_BUCKET"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`

	// Endpoint and PathStyle are set for S3-compatible services such as MinIO.
	Endpoint  string `env:"S3_ENDPOINT"`
	PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"false"`

	// MaxObjectSize bounds the objects loaded into memory.
	MaxObjectSize int64 `env:"S3_MAX_OBJECT_SIZE" envDefault:"10485760"`
}

const (
	DefaultRegion        = "us-east-1"
	DefaultMaxObjectSize = 10 << 20
)

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxObjectSize <= 0 {
		c.MaxObjectSize = DefaultMaxObjectSize
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
