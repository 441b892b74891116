package workflow_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge/internal/adapters/out/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	t.Run("starts_workflow_and_returns_run_id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/workflows/case-closeout/runs", r.URL.Path)
			assert.Equal(t, "key-123", r.Header.Get("Idempotency-Key"))

			var input map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "CLOSED", input["status"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"run_id": "run-42"}`))
		}))
		defer server.Close()

		client := workflow.NewClient(server.URL)

		runID, err := client.Run(context.Background(), "case-closeout", "key-123",
			map[string]any{"status": "CLOSED"})

		require.NoError(t, err)
		assert.Equal(t, "run-42", runID)
	})

	t.Run("replayed_key_joins_existing_run", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"run_id": "run-42"}`))
		}))
		defer server.Close()

		client := workflow.NewClient(server.URL)

		runID, err := client.Run(context.Background(), "case-closeout", "key-123", nil)

		require.NoError(t, err)
		assert.Equal(t, "run-42", runID)
	})

	t.Run("engine_error_is_returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := workflow.NewClient(server.URL)

		_, err := client.Run(context.Background(), "case-closeout", "key-123", nil)

		require.Error(t, err)
	})

	t.Run("missing_run_id_is_an_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := workflow.NewClient(server.URL)

		_, err := client.Run(context.Background(), "case-closeout", "key-123", nil)

		require.Error(t, err)
	})
}
