package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventregistration/internal/domain"

	"github.com/lib/pq"
)

const (
	selectSessionsQuery = `
		SELECT id, title, duration, location
		FROM sessions
		ORDER BY id
	`
	// Session ids are aggregated in their declared position; events without
	// sessions get an empty array.
	selectEventsQuery = `
		SELECT e.id, e.name,
			COALESCE(array_agg(es.session_id ORDER BY es.position) FILTER (WHERE es.session_id IS NOT NULL), '{}')
		FROM events e
		LEFT JOIN event_sessions es ON es.event_id = e.id
		GROUP BY e.id, e.name
		ORDER BY e.id
	`
)

type catalogRepository struct {
	DB *sql.DB
}

// NewCatalogRepository returns a loader that reads the catalog from Postgres.
// It only ever reads.
func NewCatalogRepository(db *sql.DB) domain.CatalogLoader {
	return &catalogRepository{
		DB: db,
	}
}

func (r *catalogRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	sessions, err := r.listSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	events, err := r.listEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return domain.NewCatalog(events, sessions)
}

func (r *catalogRepository) listSessions(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, selectSessionsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Title, &s.Duration, &s.Location); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *catalogRepository) listEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, selectEventsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			id         int
			name       string
			sessionIDs pq.Int64Array
		)
		if err := rows.Scan(&id, &name, &sessionIDs); err != nil {
			return nil, err
		}
		ids := make([]int, len(sessionIDs))
		for i, sid := range sessionIDs {
			ids[i] = int(sid)
		}
		events = append(events, domain.NewEvent(id, name, ids...))
	}
	return events, rows.Err()
}
