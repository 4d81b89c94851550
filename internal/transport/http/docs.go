// Package classification of LLMs Trigger Relay
//
// # Documentation for LLMs Trigger Relay
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/mydiy-ie/llms-trigger-relay/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Relay outcome for success and upstream-failure responses
// swagger:response relayResponse
type relayResponseWrapper struct {
	// The relay outcome
	// in: body
	Body RelayResponse
}

// Authentication failure response
// swagger:response authErrorResponse
type authErrorResponseWrapper struct {
	// The error message
	// in: body
	Body AuthErrorResponse
}

// Liveness response
// swagger:response healthResponse
type healthResponseWrapper struct {
	// The liveness status
	// in: body
	Body HealthResponse
}

// swagger:parameters triggerDispatch
type triggerBodyParamsWrapper struct {
	// Webhook payload from the change-detection service. All fields are
	// optional and defaulted server-side.
	// in: body
	Body domain.TriggerPayload
}
