package syncx

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	EventQuizCompleted  = "QuizCompleted"
	EventCatalogUpdated = "CatalogUpdated"
	EventQuizUpdated    = "QuizUpdated"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// EventRepo appends to the append-only event_log table. Recording is
// best-effort; callers log failures and move on.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	if r == nil || r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// QuizCompleted records one finished quiz: the answers given and the item
// ids that were recommended.
func (r *EventRepo) QuizCompleted(ctx context.Context, requestID string, answers []string, resultIDs []string) error {
	data, _ := json.Marshal(map[string]interface{}{
		"answers": answers,
		"results": resultIDs,
	})
	return r.Append(ctx, Event{Type: EventQuizCompleted, Key: requestID, DataJSON: string(data)})
}
