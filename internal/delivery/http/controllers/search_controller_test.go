package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

type stubSearchService struct {
	gotText      string
	gotRequester domain.Requester
	results      []*domain.SearchResult
	err          error
}

func (s *stubSearchService) Search(ctx context.Context, text string, requester domain.Requester) ([]*domain.SearchResult, error) {
	s.gotText = text
	s.gotRequester = requester
	return s.results, s.err
}

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) AssignRole(ctx context.Context, userID, roleID int64) error { return nil }

func TestSearchController_AuthenticatedUsesHomeCity(t *testing.T) {
	homeCity := int64(5)
	svc := &stubSearchService{}
	c := NewSearchController(discardLogger(), svc, &stubUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, CityID: &homeCity},
	}})

	req := httptest.NewRequest(http.MethodGet, "/v1/search?text=музей", nil)
	req = req.WithContext(middleware.SetUserID(req.Context(), 7))
	rec := httptest.NewRecorder()

	c.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "музей", svc.gotText)
	require.True(t, svc.gotRequester.Authenticated)
	require.Equal(t, int64(7), svc.gotRequester.UserID)
	require.NotNil(t, svc.gotRequester.CityID)
	require.Equal(t, homeCity, *svc.gotRequester.CityID)
}

func TestSearchController_AnonymousCityParam(t *testing.T) {
	svc := &stubSearchService{}
	c := NewSearchController(discardLogger(), svc, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/search?text=help&city=3", nil)
	rec := httptest.NewRecorder()

	c.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, svc.gotRequester.Authenticated)
	require.NotNil(t, svc.gotRequester.CityID)
	require.Equal(t, int64(3), *svc.gotRequester.CityID)
}

func TestSearchController_AnonymousWithoutCity(t *testing.T) {
	svc := &stubSearchService{}
	c := NewSearchController(discardLogger(), svc, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/search?text=help", nil)
	rec := httptest.NewRecorder()

	c.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, svc.gotRequester.Authenticated)
	require.Nil(t, svc.gotRequester.CityID)
}

func TestSearchController_NilResultsSerializeAsArray(t *testing.T) {
	c := NewSearchController(discardLogger(), &stubSearchService{results: nil}, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/search?text=nothing", nil)
	rec := httptest.NewRecorder()

	c.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestSearchController_LookupFailureDegradesToAnonymous(t *testing.T) {
	// A stale token for a deleted user must not fail the request.
	svc := &stubSearchService{}
	c := NewSearchController(discardLogger(), svc, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/search?text=help", nil)
	req = req.WithContext(middleware.SetUserID(req.Context(), 99))
	rec := httptest.NewRecorder()

	c.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.gotRequester.Authenticated)
	require.Nil(t, svc.gotRequester.CityID)
}
