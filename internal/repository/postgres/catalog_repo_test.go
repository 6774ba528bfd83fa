package postgres

import (
	"context"
	"testing"

	"mentorhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM catalogs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM catalogs`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "image_caption", "body"}).
			AddRow(int64(1), "Книги о дружбе", "подборка", nil, "text"))

	repo := NewCatalogRepository(db)
	catalogs, total, err := repo.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, catalogs, 1)
	require.Equal(t, "Книги о дружбе", catalogs[0].Title)
	require.Nil(t, catalogs[0].ImageCaption)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM catalogs`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "image_caption", "body"}))

	repo := NewCatalogRepository(db)
	_, err = repo.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityTypeRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM activity_types`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Активный отдых").
			AddRow(int64(2), "Творчество"))

	repo := NewActivityTypeRepository(db)
	types, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []*domain.ActivityType{
		{ID: 1, Name: "Активный отдых"},
		{ID: 2, Name: "Творчество"},
	}, types)
	require.NoError(t, mock.ExpectationsWereMet())
}
