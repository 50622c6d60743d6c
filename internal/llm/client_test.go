package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		_ = json.NewEncoder(w).Encode(ollamaResponse{Model: req.Model, Response: `{"ok":true}`})
	}))
	defer srv.Close()

	var events []CallEvent
	client := NewOllamaClient(testConfig(srv.URL), observerFunc(func(e CallEvent) {
		events = append(events, e)
	}))

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskExtract,
		UserPrompt: "extract",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, TaskExtract, events[0].Task)
}

func TestGenerate_ServerErrorExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2
	client := NewOllamaClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskExtract, UserPrompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetryExhausted))
	assert.Equal(t, int32(3), calls.Load())
}

func TestGenerate_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	client := NewOllamaClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskExtract, UserPrompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestGenerate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskExtract] = TaskConfig{TimeoutMs: 50}
	client := NewOllamaClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskExtract, UserPrompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
