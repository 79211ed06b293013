package generate

import (
	"context"
	"errors"
)

// Request carries everything a provider may need for one generation attempt.
// Image holds the uploaded room photo for image-conditioned providers;
// text-to-image providers ignore it.
type Request struct {
	Prompt   string
	RoomType string
	Image    []byte
}

// Provider is one external image-generation service with its own protocol.
type Provider interface {
	// Name identifies the provider in logs and response headers.
	Name() string
	// Available reports whether the provider is configured with a usable
	// credential. An unavailable provider must be skipped with zero
	// network calls.
	Available() bool
	// Generate runs one full attempt, including the provider's internal
	// retry or polling loop, and returns raw image bytes.
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// MinImageBytes is the smallest payload accepted as a real image. Error
// pages and truncated responses masquerading as 200 OK fall below it.
const MinImageBytes = 1024

var (
	// ErrUnavailable marks a provider skipped for a missing or
	// placeholder credential.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrExhausted signals that every configured provider failed and no
	// image could be produced.
	ErrExhausted = errors.New("image generation unavailable")
)
