package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ollamaClient implements LLMClient using the Ollama HTTP API.
// Only image media can be forwarded; vision models accept stills.
type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates an LLMClient that talks to an Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.Provider = ProviderOllama
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system,omitempty"`
	Prompt  string          `json:"prompt"`
	Images  [][]byte        `json:"images,omitempty"`
	Format  json.RawMessage `json:"format,omitempty"`
	Stream  bool            `json:"stream"`
	Options ollamaOptions   `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	body, err := c.buildRequest(req)
	if err != nil {
		report(c.observer, c.cfg, req, start, err)
		return nil, err
	}

	ctx, cancel := withTaskTimeout(ctx, c.cfg, req.Task)
	defer cancel()

	resp, err := c.doRequest(ctx, body)
	if err == nil && resp.Response == "" {
		err = ErrEmptyResponse
	}
	err = classify(ctx, err)
	latency := report(c.observer, c.cfg, req, start, err)
	if err != nil {
		return nil, err
	}
	return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: latency}, nil
}

func (c *ollamaClient) buildRequest(req GenerateRequest) (ollamaRequest, error) {
	temp, maxTok := req.params(c.cfg)
	body := ollamaRequest{
		Model:  c.cfg.EffectiveModel(),
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Options: ollamaOptions{
			Temperature: temp,
			NumPredict:  maxTok,
		},
	}
	for _, m := range req.Media {
		if !m.IsImage() {
			return body, fmt.Errorf("%w: %s", ErrMediaUnsupported, m.MIMEType)
		}
		body.Images = append(body.Images, m.Data)
	}
	if req.Schema != nil {
		format, err := req.Schema.JSONSchema()
		if err != nil {
			return body, fmt.Errorf("encoding schema: %w", err)
		}
		body.Format = format
	}
	return body, nil
}

func (c *ollamaClient) doRequest(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.EffectiveEndpoint() + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ollama returned status %d: %s", ErrRequestFailed, httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}
