package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client loads the default AWS credential chain for the given region.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// ParseDataURI splits "data:<mime>;base64,<data>" into its content type and
// decoded bytes. Only image payloads are accepted.
func ParseDataURI(dataURI string) (string, []byte, error) {
	meta, data, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(meta, "data:") {
		return "", nil, fmt.Errorf("invalid base64 image")
	}

	mediaType, encoding, ok := strings.Cut(strings.TrimPrefix(meta, "data:"), ";")
	if !ok || encoding != "base64" {
		return "", nil, fmt.Errorf("image must be base64 encoded")
	}
	contentType := strings.ToLower(mediaType)
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, fmt.Errorf("unsupported content type %q", mediaType)
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if len(imageData) == 0 {
		return "", nil, fmt.Errorf("empty image")
	}
	return contentType, imageData, nil
}

// ImageExtension picks a file extension for an image content type.
func ImageExtension(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	// fallback: use subtype
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}
