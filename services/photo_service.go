package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"foodietrail/models"
	"foodietrail/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// PhotoStore turns the photos of a create/update request into the values
// that get persisted.
type PhotoStore interface {
	Store(ctx context.Context, photos []string) ([]string, error)
}

// InlinePhotoStore keeps data URIs in the database as sent by the browser.
type InlinePhotoStore struct{}

func (InlinePhotoStore) Store(_ context.Context, photos []string) ([]string, error) {
	if err := checkPhotos(photos); err != nil {
		return nil, err
	}
	return photos, nil
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PhotoStore uploads data URIs to a bucket and persists the public URL.
// Entries that are already URLs pass through untouched, so an edit that
// resends stored photos does not upload them again.
type S3PhotoStore struct {
	client  objectPutter
	bucket  string
	region  string
	baseURL string
}

// NewS3PhotoStore serves uploaded photos from baseURL (a CloudFront
// distribution) when set, otherwise from the bucket's own endpoint.
func NewS3PhotoStore(client *s3.Client, bucket, region, baseURL string) *S3PhotoStore {
	return &S3PhotoStore{client: client, bucket: bucket, region: region, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *S3PhotoStore) Store(ctx context.Context, photos []string) ([]string, error) {
	if err := checkPhotos(photos); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(photos))
	for _, photo := range photos {
		if isURL(photo) {
			out = append(out, photo)
			continue
		}
		url, err := s.upload(ctx, photo)
		if err != nil {
			return nil, err
		}
		out = append(out, url)
	}
	return out, nil
}

func (s *S3PhotoStore) upload(ctx context.Context, dataURI string) (string, error) {
	contentType, imageData, err := utils.ParseDataURI(dataURI)
	if err != nil {
		return "", &ValidationError{Msg: err.Error()}
	}

	key := fmt.Sprintf("photos/%s-%d%s",
		uuid.NewString(),
		time.Now().UnixNano(),
		utils.ImageExtension(contentType),
	)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func checkPhotos(photos []string) error {
	if len(photos) > models.MaxPhotos {
		return &ValidationError{Msg: fmt.Sprintf("at most %d photos are allowed, got %d", models.MaxPhotos, len(photos))}
	}
	for i, photo := range photos {
		if isURL(photo) {
			continue
		}
		if _, _, err := utils.ParseDataURI(photo); err != nil {
			return &ValidationError{Msg: fmt.Sprintf("photos[%d]: %v", i, err)}
		}
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
