package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/mindmeld/go/internal/events"
)

// GameEvent is the wire format pushed to websocket clients: the outbox
// envelope with the payload left raw for the client to decode by type.
type GameEvent struct {
	ID        string          `json:"id"`        // Event UUID
	GameID    string          `json:"game_id"`   // Game UUID
	Type      EventType       `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // Event-specific payload
}

// EventType represents the type of game event
type EventType string

const (
	EventTypePlayerJoined    EventType = events.TypePlayerJoined
	EventTypeGameStarted     EventType = events.TypeGameStarted
	EventTypeRoundStarted    EventType = events.TypeRoundStarted
	EventTypeChoiceSubmitted EventType = events.TypeChoiceSubmitted
	EventTypeRoundResolved   EventType = events.TypeRoundResolved
	EventTypeGameFinished    EventType = events.TypeGameFinished
)

// ParseEventPayload parses event data into the appropriate payload struct.
// Unknown event types return (nil, nil) and are forwarded untouched.
func ParseEventPayload(event *GameEvent) (interface{}, error) {
	switch event.Type {
	case EventTypePlayerJoined:
		var payload events.PlayerJoinedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", event.Type, err)
		}
		return payload, nil

	case EventTypeGameStarted:
		var payload events.GameStartedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", event.Type, err)
		}
		return payload, nil

	case EventTypeRoundStarted:
		var payload events.RoundStartedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", event.Type, err)
		}
		return payload, nil

	case EventTypeChoiceSubmitted:
		var payload events.ChoiceSubmittedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", event.Type, err)
		}
		return payload, nil

	case EventTypeRoundResolved:
		var payload events.RoundResolvedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", event.Type, err)
		}
		return payload, nil

	case EventTypeGameFinished:
		var payload events.GameFinishedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", event.Type, err)
		}
		return payload, nil

	default:
		return nil, nil // Unknown event type
	}
}
