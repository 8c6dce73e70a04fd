package postgres

import (
	"context"
	"database/sql"
	"testing"

	"eventregistration/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sessionsQueryPattern = `SELECT id, title, duration, location\s+FROM sessions`
	eventsQueryPattern   = `SELECT e\.id, e\.name`
)

func TestCatalogRepository_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		check   func(t *testing.T, c *domain.Catalog)
		wantErr string
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(sessionsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "duration", "location"}).
						AddRow(101, "Opening Keynote", 60, "Main Stage").
						AddRow(102, "Build Resilient Apps", 45, "Hall A"))
				mock.ExpectQuery(eventsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "session_ids"}).
						AddRow(1, "TechEd 2023", "{102,101}").
						AddRow(3, "Empty", "{}"))
			},
			check: func(t *testing.T, c *domain.Catalog) {
				events := c.Events()
				require.Len(t, events, 2)
				assert.Equal(t, domain.NewEvent(1, "TechEd 2023", 102, 101), events[0])
				assert.Equal(t, 3, events[1].ID)
				assert.Empty(t, events[1].SessionIDs)
				s, ok := c.Session(101)
				require.True(t, ok)
				assert.Equal(t, domain.NewSession(101, "Opening Keynote", 60, "Main Stage"), s)
			},
		},
		{
			name: "dangling session reference is tolerated",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(sessionsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "duration", "location"}))
				mock.ExpectQuery(eventsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "session_ids"}).
						AddRow(1, "TechEd 2023", "{101}"))
			},
			check: func(t *testing.T, c *domain.Catalog) {
				assert.Equal(t, []domain.DanglingRef{{EventID: 1, SessionID: 101}}, c.DanglingSessionIDs())
			},
		},
		{
			name: "sessions query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(sessionsQueryPattern).WillReturnError(sql.ErrConnDone)
			},
			wantErr: "list sessions",
		},
		{
			name: "events query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(sessionsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "duration", "location"}))
				mock.ExpectQuery(eventsQueryPattern).WillReturnError(sql.ErrConnDone)
			},
			wantErr: "list events",
		},
		{
			name: "duplicate ids",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(sessionsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "duration", "location"}).
						AddRow(101, "A", 10, "X").
						AddRow(101, "B", 20, "Y"))
				mock.ExpectQuery(eventsQueryPattern).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "session_ids"}))
			},
			wantErr: "duplicate session id 101",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewCatalogRepository(db)
			catalog, err := repo.Load(ctx)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.check(t, catalog)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
