package gateway

import (
	"encoding/json"
	"testing"

	"github.com/mcdev12/mindmeld/go/internal/events"
)

func TestParseEventPayload(t *testing.T) {
	event := &GameEvent{
		Type: EventTypeRoundResolved,
		Data: json.RawMessage(`{
			"round_number": 3,
			"word": "ROSE",
			"is_match": true,
			"player1_choice": "Water",
			"player2_choice": "Water",
			"player1_score": 2,
			"player2_score": 2
		}`),
	}

	parsed, err := ParseEventPayload(event)
	if err != nil {
		t.Fatalf("ParseEventPayload: %v", err)
	}
	payload, ok := parsed.(events.RoundResolvedPayload)
	if !ok {
		t.Fatalf("parsed payload has type %T", parsed)
	}
	if payload.RoundNumber != 3 || !payload.IsMatch || payload.Player1Choice != "Water" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestParseEventPayloadUnknownType(t *testing.T) {
	event := &GameEvent{
		Type: EventType("SomethingElse"),
		Data: json.RawMessage(`{}`),
	}
	parsed, err := ParseEventPayload(event)
	if err != nil {
		t.Fatalf("unknown types should pass through: %v", err)
	}
	if parsed != nil {
		t.Errorf("unknown type parsed to %+v", parsed)
	}
}

func TestParseEventPayloadMalformed(t *testing.T) {
	event := &GameEvent{
		Type: EventTypeGameFinished,
		Data: json.RawMessage(`{"compatibility": "not a number"}`),
	}
	if _, err := ParseEventPayload(event); err == nil {
		t.Error("expected an error for a malformed payload")
	}
}
