package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Analyzer produces a short textual description of an uploaded room photo.
type Analyzer interface {
	AnalyzeRoom(ctx context.Context, data []byte, mimeType string) (string, error)
}

const (
	// MaxImageBytes bounds uploads before they reach the vision model.
	MaxImageBytes = 7 * 1024 * 1024

	// FallbackDescription is substituted whenever analysis fails so the
	// generation pipeline can always proceed.
	FallbackDescription = "spacious room with neutral walls, wooden floor, large windows, natural lighting"

	defaultVisionModel = "gemini-2.0-flash"
)

const analysisInstruction = `Analyze this empty room image. Describe in ONE short paragraph (max 50 words):
- Wall color and floor type
- Window placement and lighting
- Room shape and style

Be concise and specific. Example: "Rectangular room with cream walls, light oak hardwood floor, two large windows on left wall, bright natural lighting, modern minimalist style."`

// Describe runs the analyzer and maps every error branch to the fallback
// description. This stage must never fail a request.
func Describe(ctx context.Context, analyzer Analyzer, data []byte, mimeType string) string {
	if analyzer == nil {
		return FallbackDescription
	}
	description, err := analyzer.AnalyzeRoom(ctx, data, mimeType)
	if err != nil || strings.TrimSpace(description) == "" {
		return FallbackDescription
	}
	return strings.TrimSpace(description)
}

// GeminiAnalyzer implements Analyzer using Google's Generative Language API.
type GeminiAnalyzer struct {
	apiKey string
	model  string
	client *http.Client
}

// NewGeminiAnalyzer constructs a Gemini-powered room analyzer.
func NewGeminiAnalyzer(apiKey, model string, timeout time.Duration) *GeminiAnalyzer {
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if model == "" {
		model = defaultVisionModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiAnalyzer{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// endpointBase is overridable in tests.
var endpointBase = "https://generativelanguage.googleapis.com/v1beta"

// AnalyzeRoom asks Gemini to summarize the room in one short paragraph.
func (g *GeminiAnalyzer) AnalyzeRoom(ctx context.Context, data []byte, mimeType string) (string, error) {
	if g == nil || strings.TrimSpace(g.apiKey) == "" {
		return "", fmt.Errorf("vision: analyzer unavailable")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("vision: empty image data")
	}
	if len(data) > MaxImageBytes {
		return "", fmt.Errorf("vision: image exceeds %d bytes", MaxImageBytes)
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"role": "user",
				"parts": []map[string]any{
					{"text": analysisInstruction},
					{
						"inline_data": map[string]string{
							"mime_type": DetectMime(data, mimeType),
							"data":      base64.StdEncoding.EncodeToString(data),
						},
					},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature": 0.2,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("vision: marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", endpointBase, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("vision: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision: perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return "", fmt.Errorf("vision: status %d: %s", resp.StatusCode, failure.Error.Message)
	}

	var completion struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("vision: decode response: %w", err)
	}

	if len(completion.Candidates) == 0 || len(completion.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision: empty response")
	}

	return strings.TrimSpace(completion.Candidates[0].Content.Parts[0].Text), nil
}

// DetectMime sniffs an image mime type when the caller-provided one is
// missing or not an image.
func DetectMime(data []byte, provided string) string {
	mime := strings.TrimSpace(provided)
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	if !strings.Contains(mime, "image/") {
		return "image/jpeg"
	}
	return mime
}
