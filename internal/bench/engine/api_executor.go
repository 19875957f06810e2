package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
)

// APIExecutor submits tasks to a benchmark service over HTTP.
type APIExecutor struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL string) *APIExecutor {
	return &APIExecutor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type apiRequest struct {
	Task        bench.Task        `json:"task"`
	Credentials map[string]string `json:"credentials,omitempty"`
}

type apiResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (e *APIExecutor) Execute(ctx context.Context, t bench.Task) (*Execution, error) {
	body, err := json.Marshal(apiRequest{Task: t, Credentials: credentials(t)})
	if err != nil {
		return nil, fmt.Errorf("api encode task: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var ar apiResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &ar); err != nil {
			return nil, fmt.Errorf("api parse response: %w", err)
		}
	}
	if ar.Error != "" {
		return nil, fmt.Errorf("api task %s failed: %s", t.ID, ar.Error)
	}

	return &Execution{Elapsed: elapsed}, nil
}

func (e *APIExecutor) Name() string { return e.name }
func (e *APIExecutor) Close() error { return nil }
