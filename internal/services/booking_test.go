package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain"
)

type mockEventRepository struct {
	events map[int64]*domain.Event
	counts map[int64]int
	err    error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error { return nil }

func (m *mockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context, filter domain.EventListFilter) ([]*domain.Event, error) {
	return nil, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) Cancel(ctx context.Context, id int64) error { return nil }
func (m *mockEventRepository) Delete(ctx context.Context, id int64) error { return nil }

func (m *mockEventRepository) CountParticipants(ctx context.Context, eventID int64) (int, error) {
	return m.counts[eventID], nil
}

type mockParticipationRepository struct {
	created   []*domain.Participation
	existing  map[string]*domain.Participation
	createErr error
}

func participationKey(eventID, userID int64) string {
	return fmt.Sprintf("%d:%d", eventID, userID)
}

func (m *mockParticipationRepository) Create(ctx context.Context, p *domain.Participation) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.existing[participationKey(p.EventID, p.UserID)]; ok {
		return domain.ErrDuplicateParticipation
	}
	m.created = append(m.created, p)
	return nil
}

func (m *mockParticipationRepository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Participation, error) {
	if p, ok := m.existing[participationKey(eventID, userID)]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockParticipationRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Participation, error) {
	var out []*domain.Participation
	for _, p := range m.existing {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockParticipationRepository) Delete(ctx context.Context, eventID, userID int64) error {
	key := participationKey(eventID, userID)
	if _, ok := m.existing[key]; !ok {
		return domain.ErrNotFound
	}
	delete(m.existing, key)
	return nil
}

func (m *mockParticipationRepository) ListUserEmailsByEventID(ctx context.Context, eventID int64) ([]string, error) {
	return nil, nil
}

func futureEvent(id int64, seats int) *domain.Event {
	return &domain.Event{
		ID:      id,
		Title:   "Поход в музей",
		StartAt: time.Now().Add(24 * time.Hour),
		EndAt:   time.Now().Add(26 * time.Hour),
		Seats:   seats,
		CityID:  1,
	}
}

func TestBookingService_Book(t *testing.T) {
	ctx := context.Background()

	endedEvent := futureEvent(2, 10)
	endedEvent.EndAt = time.Now().Add(-time.Hour)

	canceledEvent := futureEvent(3, 10)
	canceledEvent.Canceled = true

	// Ended AND canceled AND full: the lifetime rule must surface first.
	everythingWrong := futureEvent(4, 1)
	everythingWrong.EndAt = time.Now().Add(-time.Hour)
	everythingWrong.Canceled = true

	tests := []struct {
		name    string
		events  map[int64]*domain.Event
		counts  map[int64]int
		eventID int64
		userID  int64
		wantErr error
	}{
		{
			name:    "success",
			events:  map[int64]*domain.Event{1: futureEvent(1, 10)},
			counts:  map[int64]int{1: 3},
			eventID: 1,
			userID:  7,
			wantErr: nil,
		},
		{
			name:    "unknown event",
			events:  map[int64]*domain.Event{},
			eventID: 99,
			userID:  7,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "event already ended",
			events:  map[int64]*domain.Event{2: endedEvent},
			eventID: 2,
			userID:  7,
			wantErr: domain.ErrEventEnded,
		},
		{
			name:    "event full",
			events:  map[int64]*domain.Event{1: futureEvent(1, 10)},
			counts:  map[int64]int{1: 10},
			eventID: 1,
			userID:  7,
			wantErr: domain.ErrEventFull,
		},
		{
			name:    "overfull still rejected",
			events:  map[int64]*domain.Event{1: futureEvent(1, 10)},
			counts:  map[int64]int{1: 11},
			eventID: 1,
			userID:  7,
			wantErr: domain.ErrEventFull,
		},
		{
			name:    "event canceled",
			events:  map[int64]*domain.Event{3: canceledEvent},
			counts:  map[int64]int{3: 0},
			eventID: 3,
			userID:  7,
			wantErr: domain.ErrEventCanceled,
		},
		{
			name:    "lifetime rule surfaces before capacity and cancellation",
			events:  map[int64]*domain.Event{4: everythingWrong},
			counts:  map[int64]int{4: 1},
			eventID: 4,
			userID:  7,
			wantErr: domain.ErrEventEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{events: tt.events, counts: tt.counts}
			regRepo := &mockParticipationRepository{existing: map[string]*domain.Participation{}}
			svc := NewBookingService(eventRepo, regRepo)

			p, err := svc.Book(ctx, tt.eventID, tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, p)
				require.Empty(t, regRepo.created)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.eventID, p.EventID)
			require.Equal(t, tt.userID, p.UserID)
			require.Len(t, regRepo.created, 1)
		})
	}
}

func TestBookingService_Book_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	eventRepo := &mockEventRepository{
		events: map[int64]*domain.Event{1: futureEvent(1, 10)},
		counts: map[int64]int{1: 1},
	}
	regRepo := &mockParticipationRepository{existing: map[string]*domain.Participation{
		participationKey(1, 7): {ID: 5, EventID: 1, UserID: 7},
	}}
	svc := NewBookingService(eventRepo, regRepo)

	p, err := svc.Book(ctx, 1, 7)
	require.ErrorIs(t, err, domain.ErrDuplicateParticipation)
	require.Nil(t, p)
}

func TestBookingService_Book_LastSeat(t *testing.T) {
	// Capacity 1, zero participations: user A succeeds, user B gets
	// ErrEventFull immediately after.
	ctx := context.Background()
	eventRepo := &mockEventRepository{
		events: map[int64]*domain.Event{1: futureEvent(1, 1)},
		counts: map[int64]int{1: 0},
	}
	regRepo := &mockParticipationRepository{existing: map[string]*domain.Participation{}}
	svc := NewBookingService(eventRepo, regRepo)

	_, err := svc.Book(ctx, 1, 7)
	require.NoError(t, err)

	eventRepo.counts[1] = 1
	_, err = svc.Book(ctx, 1, 8)
	require.ErrorIs(t, err, domain.ErrEventFull)
}

func TestBookingService_Withdraw(t *testing.T) {
	ctx := context.Background()
	regRepo := &mockParticipationRepository{existing: map[string]*domain.Participation{
		participationKey(1, 7): {ID: 5, EventID: 1, UserID: 7},
	}}
	svc := NewBookingService(&mockEventRepository{}, regRepo)

	require.NoError(t, svc.Withdraw(ctx, 1, 7))
	require.ErrorIs(t, svc.Withdraw(ctx, 1, 7), domain.ErrNotFound)
}

func TestBookingService_ListMineAndArchive(t *testing.T) {
	ctx := context.Background()
	ended := futureEvent(2, 5)
	ended.EndAt = time.Now().Add(-time.Hour)
	eventRepo := &mockEventRepository{
		events: map[int64]*domain.Event{1: futureEvent(1, 5), 2: ended},
		counts: map[int64]int{1: 2, 2: 5},
	}
	regRepo := &mockParticipationRepository{existing: map[string]*domain.Participation{
		participationKey(1, 7): {ID: 10, EventID: 1, UserID: 7},
		participationKey(2, 7): {ID: 11, EventID: 2, UserID: 7},
	}}
	svc := NewBookingService(eventRepo, regRepo)

	mine, err := svc.ListMine(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, int64(1), mine[0].Event.ID)
	require.True(t, mine[0].Event.Booked)
	require.Equal(t, 3, mine[0].Event.RemainSeats)

	archive, err := svc.ListArchive(ctx, 7)
	require.NoError(t, err)
	require.Len(t, archive, 1)
	require.Equal(t, int64(2), archive[0].Event.ID)
}

func TestBookingService_Book_RepoRaceErrorsPassThrough(t *testing.T) {
	// The repository re-checks rules under a row lock; its verdict must
	// surface unchanged when it loses the race.
	ctx := context.Background()
	for _, sentinel := range []error{domain.ErrEventFull, domain.ErrEventEnded, domain.ErrEventCanceled} {
		eventRepo := &mockEventRepository{
			events: map[int64]*domain.Event{1: futureEvent(1, 10)},
			counts: map[int64]int{1: 0},
		}
		regRepo := &mockParticipationRepository{createErr: sentinel}
		svc := NewBookingService(eventRepo, regRepo)

		_, err := svc.Book(ctx, 1, 7)
		require.True(t, errors.Is(err, sentinel))
	}
}
