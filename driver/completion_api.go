// ABOUTME: HTTP client for the Ollama-style text-completion service
// ABOUTME: Returns raw free-form replies; parsing is the caller's problem
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"scoop-harvester/config"
	"scoop-harvester/domain"
)

type completionPayload struct {
	Model     string            `json:"model"`
	Prompt    string            `json:"prompt"`
	System    string            `json:"system,omitempty"`
	Options   completionOptions `json:"options"`
	KeepAlive int               `json:"keep_alive"`
	Stream    bool              `json:"stream"`
}

type completionOptions struct {
	Stop          []string `json:"stop"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"top_p"`
	NumPredict    int      `json:"num_predict"`
	RepeatPenalty float64  `json:"repeat_penalty"`
	NumCtx        int      `json:"num_ctx"`
}

type completionResponse struct {
	Model      string `json:"model"`
	Response   string `json:"response"`
	DoneReason string `json:"done_reason"`
	Done       bool   `json:"done"`
}

// CompletionClient talks to the completion service's generate endpoint.
type CompletionClient struct {
	cfg        *config.CompletionConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCompletionClient creates a completion API client.
func NewCompletionClient(cfg *config.CompletionConfig, logger *slog.Logger) *CompletionClient {
	return &CompletionClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Complete sends one completion request and returns the model's raw reply.
// Network failures and non-200 statuses surface as ErrCompletionUnavailable.
func (c *CompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := completionPayload{
		Model:     c.cfg.Model,
		Prompt:    userPrompt,
		System:    systemPrompt,
		Stream:    false,
		KeepAlive: -1,
		Options: completionOptions{
			Temperature:   0.2,
			TopP:          0.9,
			NumPredict:    1200,
			RepeatPenalty: 1.05,
			NumCtx:        8192,
			Stop:          []string{"<|user|>", "<|system|>"},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	apiURL := c.cfg.Host + c.cfg.APIPath

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, apiURL, strings.NewReader(string(jsonData)))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("making completion request",
		"api_url", apiURL,
		"model", c.cfg.Model,
		"prompt_length", len(userPrompt))

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("completion request failed", "error", err, "api_url", apiURL)
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("completion API returned non-200 status",
			"status", resp.Status, "body", string(bodyBytes))

		return "", fmt.Errorf("%w: status %s", domain.ErrCompletionUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var apiResponse completionResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse completion response envelope: %w", err)
	}

	if !apiResponse.Done {
		c.logger.Warn("received incomplete completion response", "done_reason", apiResponse.DoneReason)
	}

	c.logger.Debug("completion response received",
		"elapsed", time.Since(start),
		"reply_length", len(apiResponse.Response))

	return apiResponse.Response, nil
}

// CheckHealth issues a minimal completion to verify the service is reachable.
func (c *CompletionClient) CheckHealth(ctx context.Context) error {
	_, err := c.Complete(ctx, "", "Say hello!")
	return err
}
