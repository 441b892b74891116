package policy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge/internal/adapters/out/policy"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authzRequest() ports.AuthzRequest {
	return ports.AuthzRequest{
		ActorRef: "owner-1",
		Action:   "case.create",
		Resource: "case",
		OrgID:    "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}
}

func TestClient_Authorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/authorize", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "owner-1", body["actor_ref"])
			assert.Equal(t, "case.create", body["action"])

			_, _ = w.Write([]byte(`{"allow": true}`))
		}))
		defer server.Close()

		client := policy.NewClient(server.URL)

		err := client.Authorize(context.Background(), authzRequest())

		require.NoError(t, err)
	})

	t.Run("denied_maps_to_permission_denied", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"allow": false}`))
		}))
		defer server.Close()

		client := policy.NewClient(server.URL)

		err := client.Authorize(context.Background(), authzRequest())

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("engine_error_maps_to_dependency_failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := policy.NewClient(server.URL)

		err := client.Authorize(context.Background(), authzRequest())

		require.ErrorIs(t, err, errs.ErrDependencyFailed)
	})

	t.Run("unreachable_engine_maps_to_dependency_failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := policy.NewClient(server.URL)

		err := client.Authorize(context.Background(), authzRequest())

		require.ErrorIs(t, err, errs.ErrDependencyFailed)
	})

	t.Run("malformed_verdict_maps_to_dependency_failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := policy.NewClient(server.URL)

		err := client.Authorize(context.Background(), authzRequest())

		require.ErrorIs(t, err, errs.ErrDependencyFailed)
	})
}
