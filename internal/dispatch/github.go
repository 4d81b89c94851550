package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/mydiy-ie/llms-trigger-relay/internal/config"
	"github.com/mydiy-ie/llms-trigger-relay/internal/domain"
)

// Dispatcher sends a repository_dispatch event to the upstream API.
type Dispatcher interface {
	Dispatch(ctx context.Context, envelope domain.DispatchEnvelope) error
}

// UpstreamError is returned when the dispatch API answers with a
// non-success status. Body holds the raw upstream response text, which the
// HTTP layer surfaces to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream dispatch returned status %d: %s", e.StatusCode, e.Body)
}

type githubClient struct {
	dispatchURL string
	token       string
	client      *http.Client
	logger      hclog.Logger
}

// NewGitHubClient builds a Dispatcher targeting
// {APIBaseURL}/repos/{Owner}/{Repo}/dispatches. The underlying HTTP client
// carries no explicit timeout; callers bound the call via context if at all.
func NewGitHubClient(cfg config.Config, logger hclog.Logger) Dispatcher {
	return &githubClient{
		dispatchURL: fmt.Sprintf("%s/repos/%s/%s/dispatches", cfg.APIBaseURL, cfg.Owner, cfg.Repo),
		token:       cfg.Token,
		client:      &http.Client{},
		logger:      logger,
	}
}

// Dispatch performs the single outbound POST. A transport-level failure is
// returned as-is; a non-2xx upstream status is returned as *UpstreamError.
func (c *githubClient) Dispatch(ctx context.Context, envelope domain.DispatchEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.dispatchURL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Dispatching event", "url", c.dispatchURL, "event_type", envelope.EventType)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	c.logger.Info("Dispatch accepted", "status", resp.StatusCode)
	return nil
}
