package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest is one generation call. Temperature and MaxTokens override
// the per-task defaults from Config when set.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64
	MaxTokens    *int
}

type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is the model-server abstraction the extraction pipeline depends on.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	// Available reports whether the model server answers at all.
	Available(ctx context.Context) bool
}

type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient builds a Client over the Ollama HTTP API. The connection
// dial timeout is short so a stopped server fails fast instead of hanging an
// import.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
	}
	return &ollamaClient{
		cfg:      cfg,
		http:     &http.Client{Transport: transport},
		observer: observer,
	}
}

// ollamaRequest is the POST /api/generate body, non-streaming.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx,
		time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	body := c.requestBody(req)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		resp, err := c.post(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.report(req.Task, latency, true, "")
			return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: latency}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			// The deadline covers all attempts; no point retrying into it.
			break
		}
	}

	c.report(req.Task, time.Since(start).Milliseconds(), false, errorCode(ctx, lastErr))
	switch {
	case ctx.Err() != nil:
		return nil, ErrTimeout
	case isConnectionError(lastErr):
		return nil, ErrUnavailable
	default:
		return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
}

func (c *ollamaClient) requestBody(req GenerateRequest) ollamaRequest {
	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return ollamaRequest{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Options: ollamaOptions{Temperature: temp, NumPredict: maxTok},
	}
}

func (c *ollamaClient) report(task TaskType, latencyMs int64, success bool, code string) {
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latencyMs,
		Success:   success,
		ErrorCode: code,
	})
}

func (c *ollamaClient) post(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status %d: %s", httpResp.StatusCode, string(raw))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return err != nil && errors.As(err, &netErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case err == nil:
		return ""
	case isConnectionError(err):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
