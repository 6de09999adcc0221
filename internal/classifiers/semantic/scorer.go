// Package semantic provides a type scorer backed by an OpenAI-compatible
// chat completion API. It asks the model to grade how well a document
// matches a candidate type and parses the numeric answer.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

var _ driven.TypeScorer = (*Scorer)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond keeps well under typical API quotas. A full
	// review issues one request per document per candidate type.
	DefaultRequestsPerSecond = 5.0
	DefaultBurst             = 10

	// maxExcerpt bounds the document text sent per request.
	maxExcerpt = 2000
)

// Config holds configuration for the semantic scorer.
type Config struct {
	// APIKey is the API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate (default: 5).
	RequestsPerSecond float64

	// Burst is the rate limiter burst size (default: 10).
	Burst int
}

// Scorer scores documents via chat completions. Requests run at temperature
// zero so repeated runs over the same input stay comparable.
type Scorer struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *rate.Limiter
}

// chatRequest is the /chat/completions request format.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []chatMsg `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the /chat/completions response format.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// New creates a semantic scorer.
func New(cfg Config) (*Scorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("semantic: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst == 0 {
		cfg.Burst = DefaultBurst
	}

	return &Scorer{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}, nil
}

// Name identifies the backend in logs and reports.
func (s *Scorer) Name() string { return "semantic:" + s.model }

const scorePrompt = `You grade document classification for ADGM corporate filings.

Candidate type: %s

Document filename: %s
Document content (excerpt):
%s

On a scale from 0.0 to 1.0, how likely is it that this document is a %q?
Respond with a single number and nothing else.`

// Score asks the model to grade doc against candidate and parses the
// numeric answer, clamped to [0, 1].
func (s *Scorer) Score(ctx context.Context, doc *domain.Document, candidate domain.DocType) (float64, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	excerpt := doc.Text()
	if len(excerpt) > maxExcerpt {
		excerpt = excerpt[:maxExcerpt]
	}
	prompt := fmt.Sprintf(scorePrompt, candidate, doc.Filename, excerpt, string(candidate))

	answer, err := s.chatCompletion(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseScore(answer)
}

func (s *Scorer) chatCompletion(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:       s.model,
		Messages:    []chatMsg{{Role: "user", Content: prompt}},
		MaxTokens:   10,
		Temperature: 0,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrScorerUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("semantic: API error: %s", chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("semantic: API returned status %d: %s", resp.StatusCode, string(body))
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("semantic: no response choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parseScore extracts the first number from the model's answer.
// Answers outside [0, 1] are clamped rather than rejected; models
// occasionally grade on a 0-100 scale despite instructions.
func parseScore(answer string) (float64, error) {
	match := numberPattern.FindString(strings.TrimSpace(answer))
	if match == "" {
		return 0, fmt.Errorf("semantic: no score in response %q", answer)
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("semantic: parse score %q: %w", match, err)
	}
	if v > 1 {
		v = v / 100
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v, nil
}

// Ping validates the backend is reachable by checking the /models endpoint.
// This is a lightweight check that validates the API key without running
// inference.
func (s *Scorer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("semantic: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrScorerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("semantic: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("semantic: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *Scorer) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
