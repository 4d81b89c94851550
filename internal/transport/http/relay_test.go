package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydiy-ie/llms-trigger-relay/internal/dispatch"
	"github.com/mydiy-ie/llms-trigger-relay/internal/domain"
)

// end-to-end pipeline: router -> handler -> real GitHub client -> mock upstream
func setupRelay(t *testing.T, upstream http.HandlerFunc) (*atomic.Int64, http.Handler) {
	t.Helper()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		upstream(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := testConfig()
	cfg.APIBaseURL = server.URL

	d := dispatch.NewGitHubClient(cfg, hclog.NewNullLogger())
	th := NewTriggerHandler(cfg, d, hclog.NewNullLogger())
	return &calls, NewRouter(th, hclog.NewNullLogger())
}

func TestRelayRejectedRequestNeverReachesUpstream(t *testing.T) {
	calls, router := setupRelay(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := postTrigger(router, "Bearer wrong", `{"action":"product-added"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, int64(0), calls.Load())
}

func TestRelayForwardsEnvelopeUpstream(t *testing.T) {
	var body []byte
	calls, router := setupRelay(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	})

	rr := postTrigger(router, "Bearer trigger-secret", `{"urls":["https://www.mydiy.ie/p/1"]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), calls.Load())

	var envelope domain.DispatchEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "product-updated", envelope.EventType)
	assert.Equal(t, []string{"https://www.mydiy.ie/p/1"}, envelope.ClientPayload.URLs)
	assert.Equal(t, "https://www.mydiy.ie", envelope.ClientPayload.Site)
}

func TestRelaySurfacesUpstreamRejection(t *testing.T) {
	_, router := setupRelay(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad credentials"))
	})

	rr := postTrigger(router, "Bearer trigger-secret", `{}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"ok":false,"error":"bad credentials"}`, rr.Body.String())
}

func TestRelaySurfacesTransportFailure(t *testing.T) {
	// point the handler at a dead upstream
	cfg := testConfig()
	cfg.APIBaseURL = "http://127.0.0.1:1"
	d := dispatch.NewGitHubClient(cfg, hclog.NewNullLogger())
	th := NewTriggerHandler(cfg, d, hclog.NewNullLogger())
	router := NewRouter(th, hclog.NewNullLogger())

	rr := postTrigger(router, "Bearer trigger-secret", `{}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `"ok":false`))
}
