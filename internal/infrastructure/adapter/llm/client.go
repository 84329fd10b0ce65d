// Package llm adapts vendor chat APIs to the provider-neutral llm port.
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

	"github.com/tidwall/gjson"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// Provider names
const (
	OpenAIName = "openai"
	ClaudeName = "claude"
	GeminiName = "gemini"
)

// DefaultTimeout applies when a provider has no timeout configured
const DefaultTimeout = 120 * time.Second

// maxErrorBody bounds how much of an error body ends up in logs
const maxErrorBody = 512

// ProviderConfig configures one vendor
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Enabled reports whether the vendor has credentials
func (c ProviderConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// httpClient posts JSON bodies and classifies vendor failures
type httpClient struct {
	name    string
	baseURL string
	client  *http.Client
	logger  coreport.Logger
}

func newHTTPClient(name string, cfg ProviderConfig, defaultBase string, logger coreport.Logger) httpClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return httpClient{
		name:    name,
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// postJSON sends body and returns the raw 2xx response. Non-2xx answers become *errs.ProviderError
// and transport failures wrap errs.ErrProviderUnavailable.
func (c httpClient) postJSON(ctx context.Context, url string, headers map[string]string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", c.name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrProviderUnavailable, c.name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", errs.ErrProviderUnavailable, c.name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &errs.ProviderError{Provider: c.name, Status: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
		c.logger.Warn("LLM provider returned an error", perr.LogFields())
		return nil, perr
	}
	return data, nil
}

// errorMessage pulls the vendor message out of an error body
func errorMessage(body []byte, status int) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"error.message", "error", "message", "0.error.message"} {
			if r := gjson.GetBytes(body, path); r.Exists() && r.Type == gjson.String && r.Str != "" {
				return r.Str
			}
		}
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return text
}

// parseArguments decodes a JSON arguments string. Invalid JSON is kept under "_raw".
func parseArguments(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil || args == nil {
		return map[string]any{"_raw": raw}
	}
	return args
}

func argumentsJSON(args map[string]any) string {
	if args == nil {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(data)
}
