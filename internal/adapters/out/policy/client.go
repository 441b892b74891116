// Package policy implements the PolicyAuthorizer port against the external
// HTTP policy engine. The engine owns all authorization rules; this client
// only submits the actor/action/resource triple and maps the verdict.
package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client calls the policy engine over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a policy engine client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type authorizeRequest struct {
	ActorRef string `json:"actor_ref"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	OrgID    string `json:"org_id"`
}

type authorizeResponse struct {
	Allow bool `json:"allow"`
}

// Authorize submits the request to the policy engine. A denial maps to
// PermissionDeniedError; any transport or protocol failure maps to
// DependencyFailedError so callers refuse rather than proceed unchecked.
func (c *Client) Authorize(ctx context.Context, req ports.AuthzRequest) error {
	body, err := json.Marshal(authorizeRequest{
		ActorRef: req.ActorRef,
		Action:   req.Action,
		Resource: req.Resource,
		OrgID:    req.OrgID,
	})
	if err != nil {
		return errs.NewDependencyFailedErrorWithCause("policy engine", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/authorize", bytes.NewReader(body))
	if err != nil {
		return errs.NewDependencyFailedErrorWithCause("policy engine", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errs.NewDependencyFailedErrorWithCause("policy engine", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.NewDependencyFailedErrorWithCause("policy engine",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var verdict authorizeResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&verdict); err != nil {
		return errs.NewDependencyFailedErrorWithCause("policy engine", err)
	}

	if !verdict.Allow {
		return errs.NewPermissionDeniedError(req.Action, req.Resource)
	}

	return nil
}
