package vision

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAnalyzer struct{ err error }

func (f failingAnalyzer) AnalyzeRoom(_ context.Context, _ []byte, _ string) (string, error) {
	return "", f.err
}

type fixedAnalyzer struct{ text string }

func (f fixedAnalyzer) AnalyzeRoom(_ context.Context, _ []byte, _ string) (string, error) {
	return f.text, nil
}

func TestDescribeMapsErrorsToFallback(t *testing.T) {
	ctx := context.Background()
	data := []byte("not really an image")

	assert.Equal(t, FallbackDescription, Describe(ctx, nil, data, "image/jpeg"))
	assert.Equal(t, FallbackDescription, Describe(ctx, failingAnalyzer{err: errors.New("quota exceeded")}, data, "image/jpeg"))
	assert.Equal(t, FallbackDescription, Describe(ctx, fixedAnalyzer{text: "   "}, data, "image/jpeg"))
}

func TestDescribeReturnsModelText(t *testing.T) {
	got := Describe(context.Background(), fixedAnalyzer{text: " cream walls, oak floor "}, []byte("img"), "image/png")
	assert.Equal(t, "cream walls, oak floor", got)
}

func TestGeminiAnalyzerSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Rectangular room with cream walls."}]}}]}`))
	}))
	defer srv.Close()

	restore := endpointBase
	endpointBase = srv.URL
	defer func() { endpointBase = restore }()

	analyzer := NewGeminiAnalyzer("test-key", "", time.Second)
	got, err := analyzer.AnalyzeRoom(context.Background(), bytes.Repeat([]byte{0xff}, 64), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Rectangular room with cream walls.", got)
}

func TestGeminiAnalyzerErrorPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	restore := endpointBase
	endpointBase = srv.URL
	defer func() { endpointBase = restore }()

	analyzer := NewGeminiAnalyzer("test-key", "", time.Second)

	_, err := analyzer.AnalyzeRoom(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = analyzer.AnalyzeRoom(context.Background(), nil, "image/jpeg")
	require.Error(t, err)

	missingKey := NewGeminiAnalyzer("", "", time.Second)
	_, err = missingKey.AnalyzeRoom(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
}

func TestDetectMime(t *testing.T) {
	assert.Equal(t, "image/png", DetectMime(nil, "image/png"))
	assert.Equal(t, "image/jpeg", DetectMime([]byte("plain text"), "text/plain"))

	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	assert.Equal(t, "image/png", DetectMime(pngHeader, ""))
}
