// internal/model/event.go
package model

import (
	"encoding/json"
	"fmt"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionLinked   = "linked"
	ActionUnlinked = "unlinked"
)

// Event records one committed mutation. Seq and RecordedAt are assigned by
// the audit log.
type Event struct {
	Seq        int64           `db:"seq" json:"seq,omitempty"`
	ID         uuid.UUID       `db:"id" json:"id"`
	Entity     string          `db:"entity" json:"entity"`
	EntityID   int64           `db:"entity_id" json:"entity_id"`
	Action     string          `db:"action" json:"action"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
	RequestID  string          `db:"request_id" json:"request_id,omitempty"`
	OccurredAt time.Time       `db:"occurred_at" json:"occurred_at"`
	RecordedAt *time.Time      `db:"recorded_at" json:"recorded_at,omitempty"`
}

// NewEvent builds an event for entity/id with the JSON encoding of payload.
func NewEvent(entity string, id int64, action string, payload interface{}) (Event, error) {
	body, err := gojson.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s payload: %w", entity, err)
	}
	return Event{
		ID:         uuid.New(),
		Entity:     entity,
		EntityID:   id,
		Action:     action,
		Payload:    body,
		OccurredAt: time.Now().UTC(),
	}, nil
}
