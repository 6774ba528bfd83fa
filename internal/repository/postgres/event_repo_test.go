package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"mentorhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func testEventRow(id int64, title string, startAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "address", "contact", "phone", "title", "description",
		"start_at", "end_at", "seats", "canceled", "city_id", "tag_id",
		"created_at", "updated_at",
	}).AddRow(
		id, "Main st 1", "Ann", "+70000000000", title, "desc",
		startAt, startAt.Add(2*time.Hour), 10, false, int64(1), int64(2),
		startAt, startAt,
	)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
			},
			wantID: 3,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
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
			repo := NewEventRepository(db)
			event := &domain.Event{
				Title:   "Museum visit",
				StartAt: now,
				EndAt:   now.Add(2 * time.Hour),
				Seats:   10,
				CityID:  1,
				TagID:   2,
			}
			err = repo.Create(ctx, event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	startAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, address, contact, phone, title, description`).
					WithArgs(int64(3)).
					WillReturnRows(testEventRow(3, "Museum visit", startAt))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, address, contact, phone, title, description`).
					WithArgs(int64(3)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, 3)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(3), got.ID)
			require.Equal(t, "Museum visit", got.Title)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	startAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter domain.EventListFilter
		mock   func(mock sqlmock.Sqlmock)
		want   int
	}{
		{
			name:   "city only",
			filter: domain.EventListFilter{CityID: 1},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE canceled = false AND end_at > now\(\) AND city_id = \$1`).
					WithArgs(int64(1)).
					WillReturnRows(testEventRow(3, "Museum visit", startAt))
			},
			want: 1,
		},
		{
			name:   "month and year filters",
			filter: domain.EventListFilter{CityID: 1, Months: []int{3}, Years: []int{2026}},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`EXTRACT\(MONTH FROM start_at\) = ANY\(\$2\).*EXTRACT\(YEAR FROM start_at\) = ANY\(\$3\)`).
					WillReturnRows(testEventRow(3, "Museum visit", startAt))
			},
			want: 1,
		},
		{
			name:   "empty",
			filter: domain.EventListFilter{CityID: 2},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE canceled = false`).
					WithArgs(int64(2)).
					WillReturnRows(sqlmock.NewRows([]string{
						"id", "address", "contact", "phone", "title", "description",
						"start_at", "end_at", "seats", "canceled", "city_id", "tag_id",
						"created_at", "updated_at",
					}))
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			require.Len(t, got, tt.want)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Cancel(t *testing.T) {
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
				mock.ExpectExec(`UPDATE events SET canceled = true`).
					WithArgs(int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events SET canceled = true`).
					WithArgs(int64(3)).
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
			repo := NewEventRepository(db)
			err = repo.Cancel(ctx, 3)
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

func TestEventRepository_CountParticipants(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM participations WHERE event_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewEventRepository(db)
	count, err := repo.CountParticipants(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 4, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
