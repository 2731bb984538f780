package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []LLMCallEvent
}

func (r *recordingObserver) OnCallComplete(e LLMCallEvent) { r.events = append(r.events, e) }

func ollamaConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOllama
	cfg.Endpoint = endpoint
	cfg.Model = "llava"
	return cfg
}

func TestOllama_SendsImagesAndSchema(t *testing.T) {
	var got ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ollamaResponse{Model: "llava", Response: `{"score":1}`})
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewOllamaClient(ollamaConfig(srv.URL), obs)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskReviewVideo,
		SystemPrompt: "sys",
		UserPrompt:   "user",
		Media:        []MediaPart{{MIMEType: "image/png", Data: []byte{1, 2, 3}}},
		Schema:       Object(Field("score", Number())),
	})
	require.NoError(t, err)

	assert.Equal(t, `{"score":1}`, resp.Text)
	assert.Equal(t, "llava", got.Model)
	assert.Equal(t, "sys", got.System)
	assert.False(t, got.Stream)
	assert.Equal(t, [][]byte{{1, 2, 3}}, got.Images)
	assert.JSONEq(t, `{"type":"object","properties":{"score":{"type":"number"}},"required":["score"]}`, string(got.Format))
	assert.Equal(t, 0.3, got.Options.Temperature)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, int64(3), obs.events[0].MediaBytes)
	assert.Equal(t, ProviderOllama, obs.events[0].Provider)
}

func TestOllama_RejectsVideo(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewOllamaClient(ollamaConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:  TaskAnalyze,
		Media: []MediaPart{{MIMEType: "video/mp4", Data: []byte{0}}},
	})

	assert.ErrorIs(t, err, ErrMediaUnsupported)
	assert.Zero(t, calls.Load())
	require.Len(t, obs.events, 1)
	assert.Equal(t, "MEDIA_UNSUPPORTED", obs.events[0].ErrorCode)
}

func TestOllama_SingleAttemptOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReviewScript, UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOllama_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaResponse{Model: "llava"})
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReviewScript})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOllama_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.Tasks[TaskReviewScript] = TaskConfig{TimeoutMs: 20}
	client := NewOllamaClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReviewScript})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOllama_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewOllamaClient(ollamaConfig(url), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReviewScript})
	assert.ErrorIs(t, err, ErrUnavailable)
}
