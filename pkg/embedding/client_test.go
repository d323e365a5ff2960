package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("EMBED_TEST_KEY", "test-key")
	return NewClient(&config.EmbeddingConfig{
		BaseURL:   srv.URL,
		APIKeyEnv: "EMBED_TEST_KEY",
		Model:     "test-embedder",
		Dimension: 3,
	})
}

func TestEmbed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-embedder", req.Model)
		assert.Equal(t, []string{"hello"}, req.Input)
		require.NotNil(t, req.Dimensions)
		assert.Equal(t, 3, *req.Dimensions)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{3, 0, 4}, "index": 0}},
		})
	})

	vec, err := c.Embed(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, vec, 3)

	// Responses come back L2-normalized.
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.InDelta(t, 0.6, float64(vec[0]), 1e-6)
}

func TestEmbedClientErrorIsNotRetried(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "bad key", "type": "auth"},
		})
	})

	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, services.ErrExternalUnavailable)
	assert.Contains(t, err.Error(), "bad key")
	assert.Equal(t, 1, calls)
}

func TestEmbedMissingAPIKey(t *testing.T) {
	t.Setenv("EMBED_TEST_KEY", "")
	c := NewClient(&config.EmbeddingConfig{
		BaseURL:   "http://localhost:1",
		APIKeyEnv: "EMBED_TEST_KEY",
		Model:     "m",
	})

	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, services.ErrExternalUnavailable)
}

func TestEmbedEmptyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Embed(ctx, "hello")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	out := Normalize([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(out[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(out[1]), 1e-6)

	// Zero vectors pass through untouched.
	zero := []float32{0, 0, 0}
	assert.Equal(t, zero, Normalize(zero))

	unit := Normalize([]float32{5})
	assert.InDelta(t, 1.0, float64(unit[0]), 1e-9)
	assert.False(t, math.IsNaN(float64(unit[0])))
}
