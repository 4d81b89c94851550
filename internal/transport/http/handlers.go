package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mydiy-ie/llms-trigger-relay/internal/config"
	"github.com/mydiy-ie/llms-trigger-relay/internal/dispatch"
	"github.com/mydiy-ie/llms-trigger-relay/internal/domain"
)

type TriggerHandler struct {
	cfg        config.Config
	dispatcher dispatch.Dispatcher
	logger     hclog.Logger
}

func NewTriggerHandler(cfg config.Config, d dispatch.Dispatcher, log hclog.Logger) *TriggerHandler {
	return &TriggerHandler{
		cfg:        cfg,
		dispatcher: d,
		logger:     log,
	}
}

// Trigger handles POST /api/llms-full-trigger
//
// swagger:route POST /api/llms-full-trigger relay triggerDispatch
//
// Relays a change-detection webhook as a repository_dispatch event.
//
// Responses:
//
//	200: relayResponse
//	401: authErrorResponse
//	500: relayResponse
func (h *TriggerHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+h.cfg.TriggerSecret {
		h.logger.Info("Rejected trigger request", "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, AuthErrorResponse{Error: "Unauthorized"})
		return
	}

	var payload domain.TriggerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// Malformed bodies deliberately fall into the generic internal
		// error path rather than a 400; existing callers rely on it.
		h.logger.Error("Error decoding trigger payload", "error", err)
		writeJSON(w, http.StatusInternalServerError, RelayResponse{OK: false, Error: internalErrorMessage})
		return
	}

	payload.ApplyDefaults(h.cfg.DefaultSite)
	envelope := domain.NewDispatchEnvelope(payload, time.Now())

	if err := h.dispatcher.Dispatch(r.Context(), envelope); err != nil {
		var upstreamErr *dispatch.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.logger.Error("Upstream rejected dispatch",
				"status", upstreamErr.StatusCode,
				"body", upstreamErr.Body,
			)
			writeJSON(w, http.StatusInternalServerError, RelayResponse{OK: false, Error: upstreamErr.Body})
			return
		}

		h.logger.Error("Error dispatching event", "error", err)
		writeJSON(w, http.StatusInternalServerError, RelayResponse{OK: false, Error: err.Error()})
		return
	}

	h.logger.Info("Triggered dispatch",
		"action", payload.Action,
		"site", payload.Site,
		"url_count", len(payload.URLs),
	)
	writeJSON(w, http.StatusOK, RelayResponse{OK: true, Message: "GitHub Action triggered"})
}

// Health handles GET /healthz
//
// swagger:route GET /healthz relay healthCheck
//
// Liveness probe.
//
// Responses:
//
//	200: healthResponse
func (h *TriggerHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
