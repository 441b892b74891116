// Package workflow implements the WorkflowRunner port against the external
// durable-workflow engine. The engine deduplicates runs by the
// caller-supplied idempotency key; this client only threads the key through.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client calls the workflow engine over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a workflow engine client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type runResponse struct {
	RunID string `json:"run_id"`
}

// Run starts the named workflow. Retrying with the same idempotency key
// joins the existing run instead of starting a second one; the engine
// signals that with a 200 instead of a 201 and the same run identifier.
func (c *Client) Run(ctx context.Context, name, idempotencyKey string, input map[string]any) (string, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/workflows/"+name+"/runs", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var run runResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&run); err != nil {
		return "", err
	}
	if run.RunID == "" {
		return "", fmt.Errorf("engine returned no run id")
	}

	return run.RunID, nil
}
