package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	defaultImagenModel = "imagen-3.0-generate-002"
	imagenAspectRatio  = "16:9"
	imagenTimeout      = 60 * time.Second
)

// imagenBackend renders one image for a fully built prompt. Two
// implementations exist: the Gemini API (API key) and Vertex AI.
type imagenBackend interface {
	render(ctx context.Context, prompt string) ([]byte, error)
}

// Imagen is the last provider in the fallback chain: a vision-model direct
// image generation with a structured generation configuration.
type Imagen struct {
	backend imagenBackend
	timeout time.Duration
}

// NewImagen wraps a backend; a nil backend leaves the provider unavailable.
func NewImagen(backend imagenBackend) *Imagen {
	return &Imagen{backend: backend, timeout: imagenTimeout}
}

// NewImagenProvider picks the Vertex backend when configured, otherwise the
// API-key backend, otherwise an unavailable provider. The explicit nil
// checks keep a typed nil pointer out of the backend interface.
func NewImagenProvider(vertex *VertexImagen, gemini *GeminiImagen) *Imagen {
	switch {
	case vertex != nil:
		return NewImagen(vertex)
	case gemini != nil:
		return NewImagen(gemini)
	default:
		return NewImagen(nil)
	}
}

// Name identifies the provider.
func (i *Imagen) Name() string { return "imagen" }

// Available reports whether a backend was configured.
func (i *Imagen) Available() bool { return i != nil && i.backend != nil }

// Generate renders the prompt through the configured backend.
func (i *Imagen) Generate(ctx context.Context, req Request) ([]byte, error) {
	if !i.Available() {
		return nil, ErrUnavailable
	}

	fullPrompt := fmt.Sprintf("photorealistic interior design photograph of a beautifully furnished room, %s, professional interior photography, natural lighting, high quality, 4k, architectural digest style", req.Prompt)

	childCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	image, err := i.backend.render(childCtx, fullPrompt)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("imagen: no image in response")
	}

	return image, nil
}

// GeminiImagen renders via the Generative Language API with an API key.
type GeminiImagen struct {
	apiKey string
	model  string
}

// NewGeminiImagen constructs the API-key backend. Returns nil (unavailable)
// when no key is configured.
func NewGeminiImagen(apiKey, model string) *GeminiImagen {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if model == "" {
		model = defaultImagenModel
	}
	return &GeminiImagen{apiKey: strings.TrimSpace(apiKey), model: model}
}

func (g *GeminiImagen) render(ctx context.Context, prompt string) ([]byte, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("imagen: create genai client: %w", err)
	}

	resp, err := client.Models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:    1,
		AspectRatio:       imagenAspectRatio,
		SafetyFilterLevel: genai.SafetyFilterLevelBlockMediumAndAbove,
	})
	if err != nil {
		return nil, fmt.Errorf("imagen: generate: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("imagen: no image in response")
	}

	return resp.GeneratedImages[0].Image.ImageBytes, nil
}
