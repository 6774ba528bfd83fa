package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain"
)

type fakeMainPageRepo struct {
	history    *domain.History
	historyErr error
}

func (f *fakeMainPageRepo) NextEvent(ctx context.Context, cityID int64) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeMainPageRepo) FirstPlace(ctx context.Context, cityID *int64) (*domain.Place, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeMainPageRepo) FirstVideo(ctx context.Context, includeRestricted bool) (*domain.Video, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeMainPageRepo) FirstHistory(ctx context.Context) (*domain.History, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history, nil
}

func (f *fakeMainPageRepo) MainArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	return []*domain.Article{}, nil
}

func (f *fakeMainPageRepo) MainMovies(ctx context.Context, limit int) ([]*domain.Movie, error) {
	return []*domain.Movie{}, nil
}

func (f *fakeMainPageRepo) MainQuestions(ctx context.Context, limit int) ([]*domain.Question, error) {
	return []*domain.Question{}, nil
}

func TestMainPageService_HistorySlot(t *testing.T) {
	ctx := context.Background()
	anonymous := domain.Requester{}

	t.Run("filled from flagged story", func(t *testing.T) {
		story := &domain.History{ID: 1, Title: "Наша история", OutputToMain: true}
		svc := NewMainPageService(&fakeMainPageRepo{history: story}, nil, nil, nil)

		page, err := svc.Get(ctx, anonymous)
		require.NoError(t, err)
		require.Equal(t, story, page.History)
	})

	t.Run("empty when none flagged", func(t *testing.T) {
		svc := NewMainPageService(&fakeMainPageRepo{historyErr: domain.ErrNotFound}, nil, nil, nil)

		page, err := svc.Get(ctx, anonymous)
		require.NoError(t, err)
		require.Nil(t, page.History)
	})
}
