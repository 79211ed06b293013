package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProdia(t *testing.T, handler http.Handler) *Prodia {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewProdia("test-key")
	p.baseURL = srv.URL + "/v1"
	p.pollInterval = time.Millisecond
	p.maxPolls = 5
	return p
}

func TestProdiaCredentialGating(t *testing.T) {
	assert.False(t, NewProdia("").Available())
	assert.False(t, NewProdia("your-prodia-api-key-here").Available())
	assert.True(t, NewProdia("real-key").Available())

	_, err := NewProdia("").Generate(context.Background(), Request{Image: []byte("img")})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestProdiaHappyPath(t *testing.T) {
	image := bytes.Repeat([]byte{0x3}, MinImageBytes*2)
	var polls atomic.Int32

	mux := http.NewServeMux()
	var resultURL string
	mux.HandleFunc("POST /v1/sd/transform", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Prodia-Key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload["imageData"])
		assert.Equal(t, "transform me", payload["prompt"])

		_, _ = w.Write([]byte(`{"job":"job-123","status":"queued"}`))
	})
	mux.HandleFunc("GET /v1/job/job-123", func(w http.ResponseWriter, _ *http.Request) {
		if polls.Add(1) < 3 {
			_, _ = w.Write([]byte(`{"job":"job-123","status":"generating"}`))
			return
		}
		fmt.Fprintf(w, `{"job":"job-123","status":"succeeded","imageUrl":%q}`, resultURL)
	})
	mux.HandleFunc("GET /v1/result.png", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(image)
	})

	p := newTestProdia(t, mux)
	resultURL = p.baseURL + "/result.png"

	got, err := p.Generate(context.Background(), Request{Prompt: "transform me", Image: []byte("source-photo")})
	require.NoError(t, err)
	assert.Equal(t, image, got)
	assert.Equal(t, int32(3), polls.Load(), "intermediate states keep polling")
}

func TestProdiaFailedJobAbortsImmediately(t *testing.T) {
	var polls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sd/transform", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"job":"job-9"}`))
	})
	mux.HandleFunc("GET /v1/job/job-9", func(w http.ResponseWriter, _ *http.Request) {
		polls.Add(1)
		_, _ = w.Write([]byte(`{"job":"job-9","status":"failed"}`))
	})

	p := newTestProdia(t, mux)
	_, err := p.Generate(context.Background(), Request{Prompt: "p", Image: []byte("img")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
	assert.Equal(t, int32(1), polls.Load(), "no polling after a terminal failed state")
}

func TestProdiaPollBudgetExhausted(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sd/transform", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"job":"job-5"}`))
	})
	mux.HandleFunc("GET /v1/job/job-5", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"job":"job-5","status":"queued"}`))
	})

	p := newTestProdia(t, mux)
	_, err := p.Generate(context.Background(), Request{Prompt: "p", Image: []byte("img")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not finish")
}

func TestProdiaRequiresSourceImage(t *testing.T) {
	p := NewProdia("real-key")
	_, err := p.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source image")
}

func TestProdiaHonorsContextCancellation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sd/transform", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"job":"job-7"}`))
	})
	mux.HandleFunc("GET /v1/job/job-7", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"job":"job-7","status":"queued"}`))
	})

	p := newTestProdia(t, mux)
	p.pollInterval = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, Request{Prompt: "p", Image: []byte("img")})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
