package postgres

import (
	"context"
	"testing"

	"mentorhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func candidateRows(titles ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title"})
	for i, title := range titles {
		rows.AddRow(int64(i+1), title)
	}
	return rows
}

func TestSearchRepository_EventCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped to city", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events`).
			WithArgs(int64(1)).
			WillReturnRows(candidateRows("Museum visit"))

		repo := NewSearchRepository(db)
		cityID := int64(1)
		got, err := repo.EventCandidates(ctx, &cityID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Museum visit", got[0].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil city runs no query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewSearchRepository(db)
		got, err := repo.EventCandidates(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchRepository_PlaceCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped to city", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`moderation_flag = true AND city_id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(candidateRows("Planetarium"))

		repo := NewSearchRepository(db)
		cityID := int64(2)
		got, err := repo.PlaceCandidates(ctx, &cityID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all cities when nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE moderation_flag = true`).
			WillReturnRows(candidateRows("Planetarium", "Zoo"))

		repo := NewSearchRepository(db)
		got, err := repo.PlaceCandidates(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchRepository_VideoCandidates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name              string
		includeRestricted bool
		pattern           string
	}{
		{"anonymous excludes restricted", false, `WHERE resource_group = false`},
		{"authenticated sees all", true, `SELECT id, title FROM videos`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(tt.pattern).
				WillReturnRows(candidateRows("How to listen"))

			repo := NewSearchRepository(db)
			got, err := repo.VideoCandidates(ctx, tt.includeRestricted)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSearchRepository_QuestionCandidates(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`answer IS NOT NULL AND answer <> ''`).
		WillReturnRows(candidateRows("How to start"))

	repo := NewSearchRepository(db)
	got, err := repo.QuestionCandidates(ctx)
	require.NoError(t, err)
	require.Equal(t, []*domain.SearchCandidate{{ID: 1, Title: "How to start"}}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
