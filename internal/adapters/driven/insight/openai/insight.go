// Package openai provides an insight service adapter using the OpenAI API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

// Ensure InsightService implements the interface.
var _ driven.InsightService = (*InsightService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 60 * time.Second

	// defaultRequestsPerMinute bounds the call rate; one narrative per
	// reading makes bursts unnecessary.
	defaultRequestsPerMinute = 20
)

// Environment fallbacks for credentials and model selection.
const (
	envAPIKey = "OPENAI_API_KEY"
	envModel  = "OPENAI_TAROT_MODEL"
)

// systemPrompt frames every narrative request.
const systemPrompt = "You are a compassionate tarot expert. Provide grounded, clear guidance " +
	"without disclaimers. Output only JSON following the provided schema."

// Config holds configuration for the OpenAI insight service.
type Config struct {
	// APIKey is the OpenAI API key (required; falls back to OPENAI_API_KEY).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com).
	BaseURL string

	// Model is the model to use (default: gpt-4o-mini, or OPENAI_TAROT_MODEL).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// ResolveAPIKey returns the configured key, or the environment
// fallback when the configuration carries none.
func ResolveAPIKey(configured string) string {
	if configured != "" {
		return configured
	}
	return os.Getenv(envAPIKey)
}

// InsightService generates reading narratives through the OpenAI API.
type InsightService struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	apiKey  string
	model   string
}

// NewInsightService creates a new OpenAI insight service. A missing
// API key fails fast with domain.ErrInsightKeyMissing so callers can
// distinguish the unconfigured case from transport failures.
func NewInsightService(cfg Config) (*InsightService, error) {
	cfg.APIKey = ResolveAPIKey(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, domain.ErrInsightKeyMissing
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = os.Getenv(envModel)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &InsightService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerMinute)/60, 1),
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// ModelName returns the identifier of the generating model.
func (s *InsightService) ModelName() string {
	return s.model
}

// Close releases resources.
func (s *InsightService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// chatRequest is the OpenAI /v1/chat/completions request format.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string          `json:"name"`
	Schema json.RawMessage `json:"schema"`
	Strict bool            `json:"strict"`
}

// chatResponse is the OpenAI /v1/chat/completions response format.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// insightPayload is the schema-constrained model output.
type insightPayload struct {
	Summary   string `json:"summary"`
	Positions []struct {
		PositionIndex int    `json:"positionIndex"`
		PositionTitle string `json:"positionTitle"`
		CardName      string `json:"cardName"`
		Orientation   string `json:"orientation"`
		Meaning       string `json:"meaning"`
	} `json:"positions"`
}

// interpretationSchema constrains the model output. Strict mode with
// additionalProperties:false makes the response parseable without
// repair passes.
var interpretationSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"summary": {
			"type": "string",
			"description": "Overall insight summary for the entire spread, 3-5 sentences."
		},
		"positions": {
			"type": "array",
			"description": "Detailed guidance for each spread position.",
			"items": {
				"type": "object",
				"properties": {
					"positionIndex": {"type": "integer"},
					"positionTitle": {"type": "string"},
					"cardName": {"type": "string"},
					"orientation": {"type": "string", "enum": ["upright", "reversed"]},
					"meaning": {
						"type": "string",
						"description": "1-3 sentences with actionable advice."
					}
				},
				"required": ["positionIndex", "positionTitle", "cardName", "orientation", "meaning"],
				"additionalProperties": false
			}
		}
	},
	"required": ["summary", "positions"],
	"additionalProperties": false
}`)

// GenerateInsight requests a schema-constrained narrative for the
// reading. No retries: the caller decides whether to retry or fall
// back to the local interpretation.
func (s *InsightService) GenerateInsight(ctx context.Context, req domain.InsightRequest) (*domain.AugmentedInsight, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limit: %w", err)
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		ResponseFormat: &responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   "tarot_interpretation",
				Schema: interpretationSchema,
				Strict: true,
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/v1/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("openai error: %s", chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned: %w", domain.ErrInsightEmpty)
	}
	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("empty completion: %w", domain.ErrInsightEmpty)
	}

	return parseInsight(content, s.model, req.Language)
}

// parseInsight validates the model output against the expected shape.
// Unknown fields fail the parse: a response drifting from the schema
// is a malformed insight, not a best-effort one.
func parseInsight(content, model, language string) (*domain.AugmentedInsight, error) {
	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.DisallowUnknownFields()

	var payload insightPayload
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing completion: %w: %w", domain.ErrInsightMalformed, err)
	}
	if payload.Summary == "" {
		return nil, fmt.Errorf("completion has no summary: %w", domain.ErrInsightMalformed)
	}

	positions := make([]domain.InsightPosition, 0, len(payload.Positions))
	for _, item := range payload.Positions {
		orientation := domain.Orientation(item.Orientation)
		if !orientation.IsValid() {
			return nil, fmt.Errorf("unknown orientation %q: %w", item.Orientation, domain.ErrInsightMalformed)
		}
		positions = append(positions, domain.InsightPosition{
			PositionIndex: item.PositionIndex,
			PositionTitle: item.PositionTitle,
			CardName:      item.CardName,
			Orientation:   orientation,
			Meaning:       item.Meaning,
		})
	}

	return &domain.AugmentedInsight{
		Summary:     payload.Summary,
		Positions:   positions,
		Model:       model,
		Language:    language,
		GeneratedAt: time.Now().UnixMilli(),
	}, nil
}

// buildPrompt lays out the full reading context: spread framing,
// response language, and both orientation profiles per card.
func buildPrompt(req domain.InsightRequest) string {
	label := domain.Language(req.Language).Label()

	var b strings.Builder
	fmt.Fprintf(&b, "Spread: %s\n", req.SpreadName)
	if req.SpreadDescription != "" {
		fmt.Fprintf(&b, "Spread overview: %s\n", req.SpreadDescription)
	}
	fmt.Fprintf(&b, "Respond in %s.\n\nCards:\n", label)

	for i, entry := range req.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Position %d: %s\n", entry.PositionIndex, entry.PositionTitle)
		fmt.Fprintf(&b, "Position detail: %s\n", entry.PositionDescription)
		fmt.Fprintf(&b, "Card: %s\n", entry.CardName)
		fmt.Fprintf(&b, "Orientation: %s\n", domain.OrientationOf(entry.IsReversed))
		fmt.Fprintf(&b, "Upright meaning: %s\n", entry.UprightMeaning)
		fmt.Fprintf(&b, "Reversed meaning: %s\n", entry.ReversedMeaning)
		fmt.Fprintf(&b, "Upright keywords: %s\n", keywordList(entry.UprightKeywords))
		fmt.Fprintf(&b, "Reversed keywords: %s\n", keywordList(entry.ReversedKeywords))
	}

	b.WriteString("\nGenerate concise, empowering guidance with practical advice.")
	return b.String()
}

func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "n/a"
	}
	return strings.Join(keywords, ", ")
}
