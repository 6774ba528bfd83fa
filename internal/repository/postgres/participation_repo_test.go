package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"mentorhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestParticipationRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	lockQuery := `SELECT seats, canceled, end_at <= now\(\)`
	countQuery := `SELECT COUNT\(\*\) FROM participations WHERE event_id = \$1`
	insertQuery := `INSERT INTO participations \(event_id, user_id, created_at\)`

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"seats", "canceled", "ended"}).AddRow(5, false, false))
				mock.ExpectQuery(countQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(10), int64(7), createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
				mock.ExpectCommit()
			},
			wantID: 42,
		},
		{
			name: "event not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(int64(10)).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "event ended",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"seats", "canceled", "ended"}).AddRow(5, false, true))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventEnded,
		},
		{
			name: "event full under lock",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"seats", "canceled", "ended"}).AddRow(5, false, false))
				mock.ExpectQuery(countQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventFull,
		},
		{
			name: "event canceled",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"seats", "canceled", "ended"}).AddRow(5, true, false))
				mock.ExpectQuery(countQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventCanceled,
		},
		{
			name: "duplicate participation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"seats", "canceled", "ended"}).AddRow(5, false, false))
				mock.ExpectQuery(countQuery).
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(10), int64(7), createdAt).
					WillReturnError(&pq.Error{Code: uniqueViolation})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrDuplicateParticipation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipationRepository(db)
			p := &domain.Participation{EventID: 10, UserID: 7, CreatedAt: createdAt}
			err = repo.Create(ctx, p)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, p.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipationRepository_GetByEventAndUser(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Participation
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, user_id, created_at`).
					WithArgs(int64(10), int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "created_at"}).
						AddRow(int64(1), int64(10), int64(7), createdAt))
			},
			want: &domain.Participation{ID: 1, EventID: 10, UserID: 7, CreatedAt: createdAt},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, user_id, created_at`).
					WithArgs(int64(10), int64(7)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipationRepository(db)
			got, err := repo.GetByEventAndUser(ctx, 10, 7)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM participations WHERE event_id = \$1 AND user_id = \$2`).
					WithArgs(int64(10), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM participations WHERE event_id = \$1 AND user_id = \$2`).
					WithArgs(int64(10), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipationRepository(db)
			err = repo.Delete(ctx, 10, 7)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipationRepository_ListUserEmailsByEventID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT u.email`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).
			AddRow("a@example.org").
			AddRow("b@example.org"))

	repo := NewParticipationRepository(db)
	emails, err := repo.ListUserEmailsByEventID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"a@example.org", "b@example.org"}, emails)
	require.NoError(t, mock.ExpectationsWereMet())
}
