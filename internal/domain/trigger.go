package domain

import (
	"encoding/json"
	"time"
)

const (
	// EventType is the repository_dispatch event type sent upstream. It is
	// fixed; the inbound "action" field is forwarded inside the client
	// payload but never changes the event type.
	EventType = "product-updated"

	// DefaultAction is substituted when the inbound payload omits "action"
	DefaultAction = "product-updated"
)

// TriggerPayload is the inbound webhook body. Every field is optional;
// absent fields are defaulted rather than rejected.
//
// swagger:model
type TriggerPayload struct {
	// the action reported by the change-detection service
	//
	// required: false
	Action string `json:"action"`

	// the page URLs the change was detected on
	//
	// required: false
	URLs []string `json:"urls"`

	// the site the change belongs to
	//
	// required: false
	Site string `json:"site"`

	// opaque change descriptions, forwarded verbatim
	//
	// required: false
	Changes []json.RawMessage `json:"changes"`
}

// ApplyDefaults fills absent fields so the dispatched payload is always
// fully populated. defaultSite comes from configuration.
func (p *TriggerPayload) ApplyDefaults(defaultSite string) {
	if p.Action == "" {
		p.Action = DefaultAction
	}
	if p.URLs == nil {
		p.URLs = []string{}
	}
	if p.Site == "" {
		p.Site = defaultSite
	}
	if p.Changes == nil {
		p.Changes = []json.RawMessage{}
	}
}

// ClientPayload is the caller-supplied data attached to the dispatch
// event: the inbound fields verbatim plus a server-generated timestamp.
type ClientPayload struct {
	Action    string            `json:"action"`
	URLs      []string          `json:"urls"`
	Site      string            `json:"site"`
	Changes   []json.RawMessage `json:"changes"`
	Timestamp string            `json:"timestamp"`
}

// DispatchEnvelope is the body of the outbound repository_dispatch call.
type DispatchEnvelope struct {
	EventType     string        `json:"event_type"`
	ClientPayload ClientPayload `json:"client_payload"`
}

// NewDispatchEnvelope builds the outbound envelope from an already
// defaulted payload, stamping the given instant as a UTC RFC 3339 string.
func NewDispatchEnvelope(p TriggerPayload, now time.Time) DispatchEnvelope {
	return DispatchEnvelope{
		EventType: EventType,
		ClientPayload: ClientPayload{
			Action:    p.Action,
			URLs:      p.URLs,
			Site:      p.Site,
			Changes:   p.Changes,
			Timestamp: now.UTC().Format(time.RFC3339),
		},
	}
}
