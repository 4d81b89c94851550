package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = "https://www.mydiy.ie"

func TestApplyDefaultsOnEmptyPayload(t *testing.T) {
	p := TriggerPayload{}
	p.ApplyDefaults(testSite)

	assert.Equal(t, "product-updated", p.Action)
	assert.Equal(t, []string{}, p.URLs)
	assert.Equal(t, testSite, p.Site)
	assert.Equal(t, []json.RawMessage{}, p.Changes)
}

func TestApplyDefaultsKeepsProvidedFields(t *testing.T) {
	p := TriggerPayload{
		Action:  "product-added",
		URLs:    []string{"https://x/a"},
		Site:    "https://x",
		Changes: []json.RawMessage{json.RawMessage(`{"f":1}`)},
	}
	p.ApplyDefaults(testSite)

	assert.Equal(t, "product-added", p.Action)
	assert.Equal(t, []string{"https://x/a"}, p.URLs)
	assert.Equal(t, "https://x", p.Site)
	assert.Equal(t, []json.RawMessage{json.RawMessage(`{"f":1}`)}, p.Changes)
}

func TestEnvelopeEventTypeIsFixed(t *testing.T) {
	p := TriggerPayload{Action: "product-added"}
	p.ApplyDefaults(testSite)

	envelope := NewDispatchEnvelope(p, time.Now())

	// the inbound action travels in the payload but never changes the
	// dispatched event type
	assert.Equal(t, "product-updated", envelope.EventType)
	assert.Equal(t, "product-added", envelope.ClientPayload.Action)
}

func TestEnvelopeTimestampIsUTCRFC3339(t *testing.T) {
	stamp := time.Date(2025, 6, 1, 13, 30, 0, 0, time.FixedZone("IST", 60*60))

	envelope := NewDispatchEnvelope(TriggerPayload{}, stamp)

	parsed, err := time.Parse(time.RFC3339, envelope.ClientPayload.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.True(t, parsed.Equal(stamp))
}

func TestEnvelopeSerializesDefaultsAsEmptyArrays(t *testing.T) {
	p := TriggerPayload{}
	p.ApplyDefaults(testSite)

	body, err := json.Marshal(NewDispatchEnvelope(p, time.Now()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	payload, ok := decoded["client_payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, payload["urls"])
	assert.Equal(t, []any{}, payload["changes"])
}
