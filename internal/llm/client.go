package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wgomg/sumario/internal/config"
	"github.com/wgomg/sumario/internal/processor"
	"github.com/wgomg/sumario/internal/utils"
	"github.com/wgomg/sumario/internal/utils/httputils"
)

const systemPrompt = "You are an assistant that summarizes emails. Output a concise summary (4-6 sentences) " +
	"and extract actionable tasks with any due dates. Return strict JSON with keys: summary (string) " +
	"and items (array of {task: string, due?: string})."

type Client struct {
	baseURL       string
	token         string
	httpClient    *http.Client
	logger        *utils.Logger
	cfg           *config.LlmConfig
	maxInputChars int
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.Llm.URL == "" || cfg.Llm.Token == "" {
		return nil, ErrNotConfigured
	}

	return &Client{
		baseURL: cfg.Llm.URL,
		token:   cfg.Llm.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		logger:        logger,
		cfg:           &cfg.Llm,
		maxInputChars: cfg.Summary.MaxInputChars,
	}, nil
}

// Model returns model, or the configured default when model is empty.
func (c *Client) Model(model string) string {
	if model = strings.TrimSpace(model); model != "" {
		return model
	}
	return c.cfg.Model
}

// Summarize asks the model for a summary and action items of text.
func (c *Client) Summarize(ctx context.Context, text, model, reqID string) (*Digest, error) {
	reqBody := ChatRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: utils.Truncate(text, c.maxInputChars)},
		},
		Model:       c.Model(model),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	if c.logger.RawBodyLog {
		c.logger.Debug(&reqID, "Sending LLM request: %s", string(jsonBody))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleAPIError(resp)
	}

	if _, err := httputils.LogResponseBody(resp, c.logger, reqID); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug(&reqID, "LLM usage - prompt_tokens: %d, completion_tokens: %d, total_tokens: %d",
		chatResp.Usage.PromptTokens,
		chatResp.Usage.CompletionTokens,
		chatResp.Usage.TotalTokens)

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrUnexpectedOutput)
	}

	responseContent := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	c.logger.Debug(&reqID, "LLM raw response: %s", responseContent)

	return ParseDigest(responseContent)
}

// ParseDigest decodes the model reply. Code fences are stripped and, when the
// reply is not pure JSON, the outermost {...} span is tried instead.
func ParseDigest(content string) (*Digest, error) {
	cleaned := utils.CleanCodeBlock(content)

	var digest Digest
	if err := json.Unmarshal([]byte(cleaned), &digest); err != nil {
		embedded := utils.ExtractJSONObject(cleaned)
		if embedded == "" {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedOutput, err)
		}
		digest = Digest{}
		if err := json.Unmarshal([]byte(embedded), &digest); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedOutput, err)
		}
	}

	items := make([]processor.ActionItem, 0, len(digest.Items))
	for _, it := range digest.Items {
		it.Task = strings.TrimSpace(it.Task)
		it.Due = strings.TrimSpace(it.Due)
		if it.Task != "" {
			items = append(items, it)
		}
	}
	digest.Items = items
	digest.Summary = strings.TrimSpace(digest.Summary)

	return &digest, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
