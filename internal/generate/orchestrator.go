package generate

import (
	"context"
	"fmt"
	"log"
)

// Result is the outcome of a successful generation run.
type Result struct {
	Image    []byte
	Provider string
}

// Orchestrator tries providers strictly in priority order and returns the
// first usable payload. Providers are never raced; each attempt runs to
// completion (including its own retries) before the next one starts.
type Orchestrator struct {
	providers []Provider
}

// NewOrchestrator builds an orchestrator over the given priority list.
func NewOrchestrator(providers ...Provider) *Orchestrator {
	return &Orchestrator{providers: providers}
}

// Generate walks the fallback chain. A provider with a missing credential
// is skipped without a network call. The first payload of at least
// MinImageBytes wins; anything smaller counts as that provider's failure.
// ErrExhausted is returned only after every provider was attempted or
// skipped.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if len(o.providers) == 0 {
		return Result{}, ErrExhausted
	}

	for _, provider := range o.providers {
		if !provider.Available() {
			log.Printf("generate: %s skipped: missing credential", provider.Name())
			continue
		}

		image, err := provider.Generate(ctx, req)
		if err != nil {
			log.Printf("generate: %s failed: %v", provider.Name(), err)
			continue
		}
		if len(image) < MinImageBytes {
			log.Printf("generate: %s returned undersized payload (%d bytes)", provider.Name(), len(image))
			continue
		}

		log.Printf("generate: %s succeeded (%d bytes)", provider.Name(), len(image))
		return Result{Image: image, Provider: provider.Name()}, nil
	}

	return Result{}, fmt.Errorf("all providers failed: %w", ErrExhausted)
}
