package storage

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"property-management/internal/model"
)

var auditColumns = []string{"seq", "id", "entity", "entity_id", "action", "payload", "request_id", "occurred_at", "recorded_at"}

// InsertAuditEvent stores a change event. Redelivered events with a known id are ignored.
func (s *Storage) InsertAuditEvent(ctx context.Context, e model.Event) error {
	payload := string(e.Payload)
	if payload == "" {
		payload = "null"
	}
	b := psql.Insert("audit_event").
		Columns("id", "entity", "entity_id", "action", "payload", "request_id", "occurred_at").
		Values(e.ID, e.Entity, e.EntityID, e.Action, payload, e.RequestID, e.OccurredAt).
		Suffix("ON CONFLICT (id) DO NOTHING")
	if _, err := exec(ctx, s.DB, b); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListAuditEvents retrieves events using cursor-based pagination over seq.
func (s *Storage) ListAuditEvents(ctx context.Context, cursor string, limit int) ([]model.Event, string, error) {
	q := psql.Select(auditColumns...).From("audit_event").OrderBy("seq").Limit(uint64(limit))
	if cursor != "" {
		after, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			return nil, "", &InputError{Column: "cursor", Msg: "must be a sequence number"}
		}
		q = q.Where(sq.Gt{"seq": after})
	}

	events := []model.Event{}
	if err := selectAll(ctx, s.DB, &events, q); err != nil {
		return nil, "", fmt.Errorf("query failed: %w", err)
	}

	nextCursor := ""
	if len(events) == limit && limit > 0 {
		nextCursor = strconv.FormatInt(events[len(events)-1].Seq, 10)
	}
	return events, nextCursor, nil
}
