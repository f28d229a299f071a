package services

import (
	"context"
	"fmt"

	"foodietrail/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type labelDetector interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// LabelService suggests dish names and tags for a photo using AWS
// Rekognition. A LabelService without a client answers
// ErrLabelsUnavailable.
type LabelService struct {
	client labelDetector
}

func NewLabelService(client *rekognition.Client) *LabelService {
	if client == nil {
		return &LabelService{}
	}
	return &LabelService{client: client}
}

// DetectLabels returns the top labels for a base64 image data URI.
func (s *LabelService) DetectLabels(ctx context.Context, dataURI string) ([]string, error) {
	if s.client == nil {
		return nil, ErrLabelsUnavailable
	}

	_, data, err := utils.ParseDataURI(dataURI)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	out, err := s.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect labels: %w", err)
	}

	labels := make([]string, 0, len(out.Labels))
	for _, l := range out.Labels {
		if l.Name != nil {
			labels = append(labels, *l.Name)
		}
	}
	return labels, nil
}
