package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/pkg/config"
)

var verdictSchema = CompileSchema(`{
	"type": "object",
	"properties": {
		"verdict": {"type": "string", "enum": ["ok", "stuck"]},
		"summary": {"type": "string"}
	},
	"required": ["verdict", "summary"],
	"additionalProperties": false
}`)

type verdictResponse struct {
	Verdict string `json:"verdict"`
	Summary string `json:"summary"`
}

func newTestLLM(t *testing.T, responses []string) (*Client, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		content := responses[calls]
		if calls < len(responses)-1 {
			calls++
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}, "finish_reason": "stop"},
			},
		})
	}))
	t.Cleanup(srv.Close)

	registry := config.NewLLMProviderRegistry(
		map[string]*config.LLMProviderConfig{
			"test": {BaseURL: srv.URL, Model: "test-model"},
		},
		map[string]string{config.ComponentGuardianAnalysis: "test"},
	)
	return NewClient(registry, slog.New(slog.NewTextHandler(io.Discard, nil))), &calls
}

func TestCompleteStructured(t *testing.T) {
	c, _ := newTestLLM(t, []string{`{"verdict": "ok", "summary": "agent is making progress"}`})

	var out verdictResponse
	err := c.CompleteStructured(context.Background(), config.ComponentGuardianAnalysis,
		[]Message{{Role: RoleUser, Content: "analyze"}}, verdictSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Verdict)
	assert.Equal(t, "agent is making progress", out.Summary)
}

func TestCompleteStructuredStripsCodeFence(t *testing.T) {
	c, _ := newTestLLM(t, []string{"```json\n{\"verdict\": \"stuck\", \"summary\": \"looping\"}\n```"})

	var out verdictResponse
	err := c.CompleteStructured(context.Background(), config.ComponentGuardianAnalysis,
		nil, verdictSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, "stuck", out.Verdict)
}

func TestCompleteStructuredRetriesOnceOnViolation(t *testing.T) {
	c, calls := newTestLLM(t, []string{
		`{"verdict": "confused"}`,
		`{"verdict": "ok", "summary": "recovered on retry"}`,
	})

	var out verdictResponse
	err := c.CompleteStructured(context.Background(), config.ComponentGuardianAnalysis,
		[]Message{{Role: RoleUser, Content: "analyze"}}, verdictSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, "recovered on retry", out.Summary)
	assert.Equal(t, 1, *calls)
}

func TestCompleteStructuredSurfacesPersistentViolation(t *testing.T) {
	c, _ := newTestLLM(t, []string{`not json at all`})

	var out verdictResponse
	err := c.CompleteStructured(context.Background(), config.ComponentGuardianAnalysis,
		nil, verdictSchema, &out)
	var sve *SchemaViolationError
	require.ErrorAs(t, err, &sve)
	assert.Equal(t, config.ComponentGuardianAnalysis, sve.Component)
}

func TestCompleteRoutesUnknownComponent(t *testing.T) {
	c, _ := newTestLLM(t, []string{`irrelevant`})

	_, err := c.Complete(context.Background(), "not_a_component", nil)
	assert.ErrorIs(t, err, config.ErrComponentNotRouted)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, "plain text", stripCodeFence("  plain text  "))
}
