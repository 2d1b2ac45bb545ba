package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/core/domain"
)

func testRequest() domain.InsightRequest {
	return domain.InsightRequest{
		Language:          "en",
		SpreadName:        "Past, Present, Future",
		SpreadDescription: "The classic three-card look at how a situation unfolds",
		Entries: []domain.InsightEntry{
			{
				PositionIndex:       0,
				PositionTitle:       "Past",
				PositionDescription: "What shaped the situation",
				CardName:            "The Fool",
				UprightMeaning:      "a leap into the unknown",
				ReversedMeaning:     "carelessness dressed up as courage",
				UprightKeywords:     []string{"beginnings", "innocence"},
				ReversedKeywords:    []string{"recklessness"},
				IsReversed:          true,
			},
		},
	}
}

func completionBody(t *testing.T, content string) string {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}, "finish_reason": "stop"},
		},
	}
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(raw)
}

func validInsightJSON() string {
	return `{
		"summary": "A clear-eyed look back and a steadier road ahead.",
		"positions": [
			{"positionIndex": 0, "positionTitle": "Past", "cardName": "The Fool",
			 "orientation": "reversed", "meaning": "The leap was taken without looking."}
		]
	}`
}

func newTestService(t *testing.T, handler http.HandlerFunc) *InsightService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewInsightService(Config{
		APIKey:  "sk-test",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestNewInsightService_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewInsightService(Config{})
	assert.ErrorIs(t, err, domain.ErrInsightKeyMissing)
}

func TestNewInsightService_EnvFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("OPENAI_TAROT_MODEL", "gpt-test")

	svc, err := NewInsightService(Config{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-test", svc.ModelName())
}

func TestGenerateInsight(t *testing.T) {
	var captured chatRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(t, validInsightJSON())))
	})

	insight, err := svc.GenerateInsight(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "A clear-eyed look back and a steadier road ahead.", insight.Summary)
	require.Len(t, insight.Positions, 1)
	assert.Equal(t, domain.OrientationReversed, insight.Positions[0].Orientation)
	assert.Equal(t, DefaultModel, insight.Model)
	assert.Equal(t, "en", insight.Language)
	assert.NotZero(t, insight.GeneratedAt)

	// The request carried the schema constraint and the full context.
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_schema", captured.ResponseFormat.Type)
	assert.True(t, captured.ResponseFormat.JSONSchema.Strict)
	require.Len(t, captured.Messages, 2)
	prompt := captured.Messages[1].Content
	assert.Contains(t, prompt, "Spread: Past, Present, Future")
	assert.Contains(t, prompt, "Respond in English.")
	assert.Contains(t, prompt, "Orientation: reversed")
	assert.Contains(t, prompt, "Upright meaning: a leap into the unknown")
}

func TestGenerateInsight_EmptyCompletion(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody(t, "")))
	})

	_, err := svc.GenerateInsight(context.Background(), testRequest())
	assert.ErrorIs(t, err, domain.ErrInsightEmpty)
}

func TestGenerateInsight_NoChoices(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, err := svc.GenerateInsight(context.Background(), testRequest())
	assert.ErrorIs(t, err, domain.ErrInsightEmpty)
}

func TestGenerateInsight_MalformedCompletion(t *testing.T) {
	cases := map[string]string{
		"not json":        "the cards feel positive today",
		"unknown field":   `{"summary": "ok", "positions": [], "mood": "bright"}`,
		"missing summary": `{"summary": "", "positions": []}`,
		"bad orientation": `{"summary": "ok", "positions": [{"positionIndex": 0, "positionTitle": "Past", "cardName": "The Fool", "orientation": "sideways", "meaning": "x"}]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(completionBody(t, content)))
			})

			_, err := svc.GenerateInsight(context.Background(), testRequest())
			assert.ErrorIs(t, err, domain.ErrInsightMalformed)
		})
	}
}

func TestGenerateInsight_APIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Incorrect API key provided"}}`))
	})

	_, err := svc.GenerateInsight(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestGenerateInsight_NoRetryOnFailure(t *testing.T) {
	calls := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"type": "server_error", "message": "overloaded"}}`))
	})

	_, err := svc.GenerateInsight(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
