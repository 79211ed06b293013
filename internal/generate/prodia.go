package generate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultProdiaURL = "https://api.prodia.com/v1"

	// prodiaPlaceholderKey shows up in copied sample configs and must be
	// treated the same as no key at all.
	prodiaPlaceholderKey = "your-prodia-api-key-here"

	prodiaModel          = "deliberate_v2.safetensors [10ec4b29]"
	prodiaNegativePrompt = "blurry, bad quality, distorted, ugly, deformed walls, broken furniture"

	prodiaPollInterval = 2 * time.Second
	prodiaMaxPolls     = 60
)

// Prodia transforms the uploaded room photo via an asynchronous job:
// submit, poll the job status at a fixed interval, then fetch the result
// URL once the job succeeds.
type Prodia struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	maxPolls     int
}

// NewProdia constructs the provider. Missing or placeholder keys leave it
// unavailable.
func NewProdia(apiKey string) *Prodia {
	return &Prodia{
		apiKey:       strings.TrimSpace(apiKey),
		baseURL:      defaultProdiaURL,
		client:       &http.Client{Timeout: 30 * time.Second},
		pollInterval: prodiaPollInterval,
		maxPolls:     prodiaMaxPolls,
	}
}

// Name identifies the provider.
func (p *Prodia) Name() string { return "prodia" }

// Available reports whether a real API key is configured.
func (p *Prodia) Available() bool {
	return p != nil && p.apiKey != "" && p.apiKey != prodiaPlaceholderKey
}

type prodiaJob struct {
	Job      string `json:"job"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl"`
}

// Generate submits a transform job for the source image and waits for it.
func (p *Prodia) Generate(ctx context.Context, req Request) ([]byte, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("prodia: source image is required")
	}

	jobID, err := p.submit(ctx, req)
	if err != nil {
		return nil, err
	}

	imageURL, err := p.waitForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return p.fetch(ctx, imageURL)
}

func (p *Prodia) submit(ctx context.Context, req Request) (string, error) {
	payload := map[string]any{
		"imageData":          base64.StdEncoding.EncodeToString(req.Image),
		"prompt":             req.Prompt,
		"model":              prodiaModel,
		"negative_prompt":    prodiaNegativePrompt,
		"steps":              30,
		"cfg_scale":          7,
		"sampler":            "DPM++ 2M Karras",
		"denoising_strength": 0.6,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("prodia: marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/sd/transform", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("prodia: request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Prodia-Key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("prodia: submit job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("prodia: submit status %d: %s", resp.StatusCode, detail)
	}

	var job prodiaJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return "", fmt.Errorf("prodia: decode job: %w", err)
	}
	if job.Job == "" {
		return "", fmt.Errorf("prodia: submit returned no job id")
	}

	return job.Job, nil
}

// waitForJob polls until the job reaches a terminal state or the attempt
// budget runs out. "succeeded" and "failed" are terminal; everything else
// keeps polling.
func (p *Prodia) waitForJob(ctx context.Context, jobID string) (string, error) {
	for attempt := 0; attempt < p.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.pollInterval):
		}

		job, err := p.checkJob(ctx, jobID)
		if err != nil {
			return "", err
		}

		switch job.Status {
		case "succeeded":
			if job.ImageURL == "" {
				return "", fmt.Errorf("prodia: job %s succeeded without image URL", jobID)
			}
			return job.ImageURL, nil
		case "failed":
			return "", fmt.Errorf("prodia: job %s failed", jobID)
		}
	}

	return "", fmt.Errorf("prodia: job %s did not finish within %d polls", jobID, p.maxPolls)
}

func (p *Prodia) checkJob(ctx context.Context, jobID string) (prodiaJob, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/job/%s", p.baseURL, jobID), nil)
	if err != nil {
		return prodiaJob{}, fmt.Errorf("prodia: request: %w", err)
	}
	httpReq.Header.Set("X-Prodia-Key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return prodiaJob{}, fmt.Errorf("prodia: check job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return prodiaJob{}, fmt.Errorf("prodia: status check returned %d", resp.StatusCode)
	}

	var job prodiaJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return prodiaJob{}, fmt.Errorf("prodia: decode status: %w", err)
	}

	return job, nil
}

func (p *Prodia) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("prodia: request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("prodia: fetch result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prodia: result fetch returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("prodia: read result: %w", err)
	}

	return data, nil
}
