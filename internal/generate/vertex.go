package generate

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// VertexImagen renders via the Vertex AI prediction endpoint. Preferred
// over the API-key backend when a project is configured.
type VertexImagen struct {
	projectID          string
	location           string
	model              string
	serviceAccountJSON string
}

// VertexImagenConfig describes how to connect to Vertex AI.
type VertexImagenConfig struct {
	ProjectID          string
	Location           string
	Model              string
	ServiceAccountJSON string
}

// NewVertexImagen constructs the Vertex backend. Returns nil (unavailable)
// when project or location is missing.
func NewVertexImagen(cfg VertexImagenConfig) *VertexImagen {
	projectID := strings.TrimSpace(cfg.ProjectID)
	location := strings.TrimSpace(cfg.Location)
	if projectID == "" || location == "" {
		return nil
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultImagenModel
	}
	return &VertexImagen{
		projectID:          projectID,
		location:           location,
		model:              model,
		serviceAccountJSON: strings.TrimSpace(cfg.ServiceAccountJSON),
	}
}

func (v *VertexImagen) render(ctx context.Context, prompt string) ([]byte, error) {
	instance, err := structpb.NewValue(map[string]any{
		"prompt": prompt,
	})
	if err != nil {
		return nil, err
	}

	params, err := structpb.NewValue(map[string]any{
		"sampleCount":   1,
		"aspectRatio":   imagenAspectRatio,
		"safetySetting": "block_medium_and_above",
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", v.projectID, v.location, v.model)
	options := []option.ClientOption{option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", v.location))}
	if v.serviceAccountJSON != "" {
		options = append(options, option.WithCredentialsJSON([]byte(v.serviceAccountJSON)))
	}

	client, err := aiplatform.NewPredictionClient(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("imagen: prediction client: %w", err)
	}
	defer client.Close()

	resp, err := client.Predict(ctx, &aiplatformpb.PredictRequest{
		Endpoint:   endpoint,
		Instances:  []*structpb.Value{instance},
		Parameters: params,
	})
	if err != nil {
		return nil, fmt.Errorf("imagen: predict: %w", err)
	}
	if len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("imagen: empty prediction response")
	}

	field := resp.Predictions[0].GetStructValue().GetFields()["bytesBase64Encoded"]
	if field == nil {
		return nil, fmt.Errorf("imagen: prediction missing bytes")
	}

	data, err := base64.StdEncoding.DecodeString(field.GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("imagen: decode result: %w", err)
	}

	return data, nil
}
