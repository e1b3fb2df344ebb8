package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Media kinds
const (
	KindImage = "image"
	KindVideo = "video"
)

type Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	UsePathStyle  bool
	ImageBucket   string
	VideoBucket   string
	MaxImageBytes int64
	MaxVideoBytes int64
}

type Uploader struct {
	cfg    Config
	client *s3.Client
}

func NewUploader(cfg Config) (*Uploader, error) {
	if cfg.ImageBucket == "" || cfg.VideoBucket == "" {
		return nil, fmt.Errorf("s3 buckets are required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 credentials are required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("s3 public base url is required")
	}

	options := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &Uploader{
		cfg:    cfg,
		client: s3.New(options),
	}, nil
}

// allowed content types per kind
var imageContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/webp": ".webp",
}

var videoContentTypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

// ValidateMedia checks kind, size ceiling, and content type before any
// network call is made.
func ValidateMedia(kind string, size int64, contentType string, maxImage, maxVideo int64) error {
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	switch kind {
	case KindImage:
		if size > maxImage {
			return fmt.Errorf("image exceeds %dMB limit", maxImage>>20)
		}
		if _, ok := imageContentTypes[strings.ToLower(contentType)]; !ok {
			return fmt.Errorf("unsupported image type %q", contentType)
		}
	case KindVideo:
		if size > maxVideo {
			return fmt.Errorf("video exceeds %dMB limit", maxVideo>>20)
		}
		if _, ok := videoContentTypes[strings.ToLower(contentType)]; !ok {
			return fmt.Errorf("unsupported video type %q", contentType)
		}
	default:
		return fmt.Errorf("unknown media kind %q", kind)
	}
	return nil
}

func extensionFor(kind, contentType string) string {
	ct := strings.ToLower(contentType)
	if kind == KindVideo {
		if ext, ok := videoContentTypes[ct]; ok {
			return ext
		}
		return ".mp4"
	}
	if ext, ok := imageContentTypes[ct]; ok {
		return ext
	}
	return ".jpg"
}

func (u *Uploader) bucketFor(kind string) string {
	if kind == KindVideo {
		return u.cfg.VideoBucket
	}
	return u.cfg.ImageBucket
}

// ObjectKey builds the per-user storage key: <user_id>/<unix-nano>.<ext>.
func ObjectKey(userID uuid.UUID, kind, contentType string, at time.Time) string {
	return fmt.Sprintf("%s/%d%s", userID, at.UnixNano(), extensionFor(kind, contentType))
}

// Upload validates and stores the file, returning its public URL.
func (u *Uploader) Upload(ctx context.Context, userID uuid.UUID, kind string, data []byte, contentType string) (string, error) {
	if err := ValidateMedia(kind, int64(len(data)), contentType, u.cfg.MaxImageBytes, u.cfg.MaxVideoBytes); err != nil {
		return "", err
	}

	bucket := u.bucketFor(kind)
	key := ObjectKey(userID, kind, contentType, time.Now().UTC())

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	return PublicURL(u.cfg.PublicBaseURL, bucket, key), nil
}

// Remove deletes the object a public URL points at, re-deriving the
// bucket and key from the URL.
func (u *Uploader) Remove(ctx context.Context, publicURL string) error {
	bucket, key, err := ParseObjectURL(u.cfg.PublicBaseURL, publicURL)
	if err != nil {
		return err
	}
	if bucket != u.cfg.ImageBucket && bucket != u.cfg.VideoBucket {
		return fmt.Errorf("url does not point at a managed bucket")
	}

	_, err = u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete from storage: %w", err)
	}
	return nil
}

// PublicURL joins base/bucket/key into the externally visible URL.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}

// ParseObjectURL splits a public URL back into bucket and key.
func ParseObjectURL(base, publicURL string) (bucket, key string, err error) {
	base = strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(publicURL, base) {
		return "", "", fmt.Errorf("url is not under the public base")
	}
	rest := strings.TrimPrefix(publicURL, base)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed object url")
	}
	return parts[0], parts[1], nil
}
