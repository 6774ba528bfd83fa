package postgres

import (
	"context"
	"testing"
	"time"

	"mentorhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func historyRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "mentor_id", "child", "together_since",
		"description", "upper_body", "lower_body", "output_to_main",
		"first_name", "email",
	})
	for _, id := range ids {
		rows.AddRow(id, "Наша история", int64(10), "Миша",
			time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
			"desc", "upper", "lower", true, "Анна", "anna@example.com")
	}
	return rows
}

func TestHistoryRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM histories`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`JOIN users u ON u\.id = h\.mentor_id`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pair"}).
			AddRow(int64(2), "Анна и Миша").
			AddRow(int64(1), "Олег и Ваня"))

	repo := NewHistoryRepository(db)
	items, total, err := repo.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, []*domain.HistoryListItem{
		{ID: 2, Pair: "Анна и Миша"},
		{ID: 1, Pair: "Олег и Ваня"},
	}, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_GetByID(t *testing.T) {
	t.Run("found with mentor", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE h\.id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(historyRows(2))

		repo := NewHistoryRepository(db)
		story, err := repo.GetByID(context.Background(), 2)
		require.NoError(t, err)
		require.Equal(t, int64(2), story.ID)
		require.Equal(t, "Миша", story.Child)
		require.Equal(t, &domain.HistoryMentor{FirstName: "Анна", Email: "anna@example.com"}, story.Mentor)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE h\.id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(historyRows())

		repo := NewHistoryRepository(db)
		_, err = repo.GetByID(context.Background(), 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMainPageRepository_FirstHistory(t *testing.T) {
	t.Run("oldest flagged story", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE h\.output_to_main = true`).
			WillReturnRows(historyRows(1))

		repo := NewMainPageRepository(db)
		story, err := repo.FirstHistory(context.Background())
		require.NoError(t, err)
		require.Equal(t, int64(1), story.ID)
		require.True(t, story.OutputToMain)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none flagged", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE h\.output_to_main = true`).
			WillReturnRows(historyRows())

		repo := NewMainPageRepository(db)
		_, err = repo.FirstHistory(context.Background())
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
