package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHuggingFace(t *testing.T, handler http.HandlerFunc) (*HuggingFace, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	hf := NewHuggingFace("test-token", "test/model")
	hf.baseURL = srv.URL
	hf.cooldown = 10 * time.Millisecond
	return hf, srv
}

func TestHuggingFaceUnavailableWithoutToken(t *testing.T) {
	hf := NewHuggingFace("", "")
	assert.False(t, hf.Available())

	_, err := hf.Generate(context.Background(), Request{Prompt: "p"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHuggingFaceSuccess(t *testing.T) {
	image := bytes.Repeat([]byte{0x1}, MinImageBytes*2)
	hf, _ := newTestHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/test/model", r.URL.Path)

		var payload hfPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload.Inputs, "beautifully furnished Living Room")
		assert.Equal(t, 30, payload.Parameters.NumInferenceSteps)
		assert.InDelta(t, 7.5, payload.Parameters.GuidanceScale, 0.001)

		_, _ = w.Write(image)
	})

	got, err := hf.Generate(context.Background(), Request{Prompt: "sofa, rug", RoomType: "Living Room"})
	require.NoError(t, err)
	assert.Equal(t, image, got)
}

func TestHuggingFaceWarmupRetriesOnce(t *testing.T) {
	image := bytes.Repeat([]byte{0x2}, MinImageBytes*2)
	calls := 0
	hf, _ := newTestHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(image)
	})

	got, err := hf.Generate(context.Background(), Request{Prompt: "p", RoomType: "Kitchen"})
	require.NoError(t, err)
	assert.Equal(t, image, got)
	assert.Equal(t, 2, calls)
}

func TestHuggingFaceGivesUpAfterSecond503(t *testing.T) {
	calls := 0
	hf, _ := newTestHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := hf.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, 2, calls, "exactly one warm-up retry")
}

func TestHuggingFaceRejectsTinyPayload(t *testing.T) {
	hf, _ := newTestHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"something went wrong"}`))
	})

	_, err := hf.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too small")
}

func TestHuggingFaceNon200(t *testing.T) {
	hf, _ := newTestHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := hf.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
