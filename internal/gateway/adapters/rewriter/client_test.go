package rewriter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/gateway/adapters/rewriter"
	"toolbox/internal/gateway/config"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRewrite(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "fluent", body["mode"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "rewritten: " + body["text"]})
	})

	c := rewriter.NewClient(&config.RewriterConfig{Endpoint: srv.URL, APIKey: "secret", Timeout: time.Second})

	got, err := c.Rewrite(context.Background(), "hello", "fluent")
	require.NoError(t, err)
	assert.Equal(t, "rewritten: hello", got)
}

func TestClientRewriteFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: rewriter.ErrUnexpectedStatus,
		},
		{
			name: "empty text",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"text":"  "}`))
			},
			wantErr: rewriter.ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.handler)
			c := rewriter.NewClient(&config.RewriterConfig{Endpoint: srv.URL, Timeout: time.Second})

			_, err := c.Rewrite(context.Background(), "hello", "standard")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientRewriteMalformedBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	})
	c := rewriter.NewClient(&config.RewriterConfig{Endpoint: srv.URL, Timeout: time.Second})

	_, err := c.Rewrite(context.Background(), "hello", "standard")
	require.Error(t, err)
}

func TestClientNotConfigured(t *testing.T) {
	c := rewriter.NewClient(&config.RewriterConfig{})

	_, err := c.Rewrite(context.Background(), "hello", "standard")
	assert.ErrorIs(t, err, rewriter.ErrNotConfigured)
}
