package repositories

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/adityavk/portfolio-server/internal/config"
	"github.com/adityavk/portfolio-server/internal/models"
)

// MediaStore is the external object store holding avatars, resumes, project
// banners and icons. Handlers only ever see (storage key, public URL) pairs.
type MediaStore interface {
	Upload(ctx context.Context, body io.Reader, filename, folder string) (models.MediaRef, error)
	Delete(ctx context.Context, publicID string) error
}

// R2MediaStore talks to a Cloudflare R2 bucket through the S3 API.
type R2MediaStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewR2MediaStore initializes the S3 client using static credentials and the
// account-scoped R2 endpoint.
func NewR2MediaStore(cfg config.StorageConfig) *R2MediaStore {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized media store client")

	return &R2MediaStore{
		client:        client,
		bucket:        cfg.BucketName,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload stores the object under a random key inside folder and returns its
// storage key plus public URL.
func (m *R2MediaStore) Upload(ctx context.Context, body io.Reader, filename, folder string) (models.MediaRef, error) {
	key := path.Join(folder, uuid.NewString()+"_"+sanitizeFilename(filename))

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return models.MediaRef{}, fmt.Errorf("upload %s: %w", key, err)
	}

	return models.MediaRef{
		PublicID: key,
		URL:      m.publicBaseURL + "/" + key,
	}, nil
}

// Delete removes an object by its storage key.
func (m *R2MediaStore) Delete(ctx context.Context, publicID string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", publicID, err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
