package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultHuggingFaceURL   = "https://router.huggingface.co/hf-inference/models"
	defaultHuggingFaceModel = "stabilityai/stable-diffusion-xl-base-1.0"

	hfNegativePrompt = "cartoon, anime, sketch, drawing, blurry, low quality, distorted, watermark, text, people, person"
	hfTimeout        = 120 * time.Second
	hfWarmupCooldown = 20 * time.Second
)

// HuggingFace generates images synchronously: one POST returns raw image
// bytes. A 503 means the backing model is still warming up; the provider
// waits a fixed cooldown once and retries exactly once more.
type HuggingFace struct {
	apiToken string
	model    string
	baseURL  string
	client   *http.Client
	cooldown time.Duration
}

// NewHuggingFace constructs the provider. An empty token leaves it
// unavailable.
func NewHuggingFace(apiToken, model string) *HuggingFace {
	if strings.TrimSpace(model) == "" {
		model = defaultHuggingFaceModel
	}
	return &HuggingFace{
		apiToken: strings.TrimSpace(apiToken),
		model:    model,
		baseURL:  defaultHuggingFaceURL,
		client:   &http.Client{Timeout: hfTimeout},
		cooldown: hfWarmupCooldown,
	}
}

// Name identifies the provider.
func (h *HuggingFace) Name() string { return "huggingface" }

// Available reports whether an API token is configured.
func (h *HuggingFace) Available() bool { return h != nil && h.apiToken != "" }

type hfPayload struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

// Generate performs the synchronous call, with one bounded warm-up retry.
func (h *HuggingFace) Generate(ctx context.Context, req Request) ([]byte, error) {
	if !h.Available() {
		return nil, ErrUnavailable
	}

	fullPrompt := fmt.Sprintf("photorealistic interior design photograph of a beautifully furnished %s, %s, professional interior photography, natural lighting, high quality, 4k, detailed textures, architectural digest style",
		req.RoomType, req.Prompt)

	body, err := json.Marshal(hfPayload{
		Inputs: fullPrompt,
		Parameters: hfParameters{
			NegativePrompt:    hfNegativePrompt,
			NumInferenceSteps: 30,
			GuidanceScale:     7.5,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("huggingface: marshal payload: %w", err)
	}

	image, status, err := h.post(ctx, body)
	if err != nil {
		return nil, err
	}
	if status == http.StatusServiceUnavailable {
		// Model is loading; wait once and retry exactly once.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(h.cooldown):
		}
		image, status, err = h.post(ctx, body)
		if err != nil {
			return nil, err
		}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("huggingface: status %d", status)
	}
	if len(image) < MinImageBytes {
		return nil, fmt.Errorf("huggingface: response too small (%d bytes)", len(image))
	}

	return image, nil
}

func (h *HuggingFace) post(ctx context.Context, body []byte) ([]byte, int, error) {
	endpoint := fmt.Sprintf("%s/%s", strings.TrimSuffix(h.baseURL, "/"), h.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("huggingface: request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("huggingface: perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("huggingface: read response: %w", err)
	}

	return data, resp.StatusCode, nil
}
