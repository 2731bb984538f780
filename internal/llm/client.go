package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// MediaPart is binary media sent inline alongside the prompt.
type MediaPart struct {
	MIMEType string
	Data     []byte
}

// IsImage reports whether the part carries a still image.
func (m MediaPart) IsImage() bool { return strings.HasPrefix(m.MIMEType, "image/") }

// GenerateRequest holds the parameters for a model generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Media        []MediaPart
	Schema       *Schema  // nil requests free text
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a model generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a multimodal model.
type LLMClient interface {
	// Generate sends a prompt with optional media and returns the raw text
	// response. Each call makes exactly one attempt.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// MediaBytes returns the total size of the inline media.
func (r GenerateRequest) MediaBytes() int64 {
	var n int64
	for _, m := range r.Media {
		n += int64(len(m.Data))
	}
	return n
}

func (r GenerateRequest) params(cfg LLMConfig) (float64, int) {
	tc := cfg.Tasks[r.Task]
	temp, maxTok := tc.Temperature, tc.MaxTokens
	if r.Temperature != nil {
		temp = *r.Temperature
	}
	if r.MaxTokens != nil {
		maxTok = *r.MaxTokens
	}
	return temp, maxTok
}

func withTaskTimeout(ctx context.Context, cfg LLMConfig, task TaskType) (context.Context, context.CancelFunc) {
	ms := cfg.TaskTimeout(task)
	if ms <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
}

// classify maps a transport failure onto the package's sentinel errors.
func classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrMediaUnsupported), errors.Is(err, ErrRequestFailed):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func report(o Observer, cfg LLMConfig, req GenerateRequest, start time.Time, err error) int64 {
	latency := time.Since(start).Milliseconds()
	o.OnCallComplete(LLMCallEvent{
		Task:       req.Task,
		Provider:   cfg.Provider,
		Model:      cfg.EffectiveModel(),
		LatencyMs:  latency,
		MediaBytes: req.MediaBytes(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
	return latency
}
