package service

import (
	"context"
	"testing"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type eventServiceMocks struct {
	eventRepo    *mocks.MockEventRepo
	requestRepo  *mocks.MockRequestRepo
	commentRepo  *mocks.MockCommentRepo
	userRepo     *mocks.MockUserRepo
	categoryRepo *mocks.MockCategoryRepo
	stats        *mocks.MockStatsClient
	notifier     *mocks.MockRequestNotifier
}

func newEventService(t *testing.T) (*EventService, *eventServiceMocks) {
	t.Helper()
	m := &eventServiceMocks{
		eventRepo:    mocks.NewMockEventRepo(t),
		requestRepo:  mocks.NewMockRequestRepo(t),
		commentRepo:  mocks.NewMockCommentRepo(t),
		userRepo:     mocks.NewMockUserRepo(t),
		categoryRepo: mocks.NewMockCategoryRepo(t),
		stats:        mocks.NewMockStatsClient(t),
		notifier:     mocks.NewMockRequestNotifier(t),
	}
	svc := NewEventService(
		m.eventRepo, m.requestRepo, m.commentRepo, m.userRepo, m.categoryRepo,
		m.stats, m.notifier, newTestLogger(t),
	)
	return svc, m
}

func TestEventService_Create_Success(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.categoryRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Category{ID: 2}, nil)
	m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), 1, domain.CreateEventInput{
		Title:      "Концерт",
		Annotation: "Живая музыка",
		CategoryID: 2,
		EventDate:  time.Now().Add(3 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePending, event.State)
	assert.True(t, event.RequestModeration, "default is moderated")
	assert.Equal(t, int64(1), event.InitiatorID)
}

func TestEventService_Create_ModerationDisabled(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.categoryRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Category{ID: 2}, nil)
	m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	disabled := false
	event, err := svc.Create(context.Background(), 1, domain.CreateEventInput{
		Title:             "Лекция",
		CategoryID:        2,
		EventDate:         time.Now().Add(3 * time.Hour),
		RequestModeration: &disabled,
	})

	require.NoError(t, err)
	assert.False(t, event.RequestModeration)
}

func TestEventService_Create_TooSoon(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Create(context.Background(), 1, domain.CreateEventInput{
		Title:      "Концерт",
		CategoryID: 2,
		EventDate:  time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.categoryRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), 1, domain.CreateEventInput{
		Title:      "Концерт",
		CategoryID: 99,
		EventDate:  time.Now().Add(3 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestEventService_AdminUpdate_Publish(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: 7, InitiatorID: 1, State: domain.EventStatePending}
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)
	m.eventRepo.EXPECT().Update(mock.Anything, event).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.notifier.EXPECT().NotifyEventPublished(mock.Anything, mock.Anything, event).Return()

	action := domain.AdminPublishEvent
	updated, err := svc.AdminUpdate(context.Background(), 7, domain.UpdateEventInput{}, &action)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePublished, updated.State)
	assert.NotNil(t, updated.PublishedOn)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_AdminUpdate_PublishNotPending(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: 7, State: domain.EventStateCanceled}
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)

	action := domain.AdminPublishEvent
	_, err := svc.AdminUpdate(context.Background(), 7, domain.UpdateEventInput{}, &action)

	assert.ErrorIs(t, err, domain.ErrEventNotPending)
}

func TestEventService_AdminUpdate_RejectPublished(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: 7, State: domain.EventStatePublished}
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)

	action := domain.AdminRejectEvent
	_, err := svc.AdminUpdate(context.Background(), 7, domain.UpdateEventInput{}, &action)

	assert.ErrorIs(t, err, domain.ErrEventPublished)
}

func TestEventService_AdminUpdate_DateTooSoon(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: 7, State: domain.EventStatePending}
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)

	soon := time.Now().Add(30 * time.Minute)
	_, err := svc.AdminUpdate(context.Background(), 7, domain.UpdateEventInput{EventDate: &soon}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_InitiatorUpdate_Published(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(1)).
		Return(&domain.Event{ID: 7, InitiatorID: 1, State: domain.EventStatePublished}, nil)

	title := "Новое название"
	_, err := svc.InitiatorUpdate(context.Background(), 1, 7, domain.UpdateEventInput{Title: &title}, nil)

	assert.ErrorIs(t, err, domain.ErrEventPublished)
}

func TestEventService_InitiatorUpdate_CancelReview(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: 7, InitiatorID: 1, State: domain.EventStatePending}
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(1)).Return(event, nil)
	m.eventRepo.EXPECT().Update(mock.Anything, event).Return(nil)

	action := domain.UserCancelReview
	updated, err := svc.InitiatorUpdate(context.Background(), 1, 7, domain.UpdateEventInput{}, &action)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStateCanceled, updated.State)
}

func TestEventService_GetPublished_HidesPending(t *testing.T) {
	svc, m := newEventService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Event{ID: 7, State: domain.EventStatePending}, nil)

	_, err := svc.GetPublished(context.Background(), 7, "10.0.0.1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetPublished_Success(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: 7, State: domain.EventStatePublished}
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)
	m.requestRepo.EXPECT().ConfirmedCount(mock.Anything, int64(7)).Return(int64(3), nil)
	m.commentRepo.EXPECT().ListPublishedByEvent(mock.Anything, int64(7)).Return(nil, nil)
	m.stats.EXPECT().ViewCounts(mock.Anything, []int64{7}).Return(map[int64]int64{7: 42}, nil)
	m.stats.EXPECT().RecordHit(mock.Anything, "/events/7", "10.0.0.1").Return().Maybe()

	details, err := svc.GetPublished(context.Background(), 7, "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), details.ConfirmedRequests)
	assert.Equal(t, int64(42), details.Views)

	time.Sleep(50 * time.Millisecond) // goroutine hit
}

func TestEventService_PublicSearch_InvalidRange(t *testing.T) {
	svc, _ := newEventService(t)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, err := svc.PublicSearch(context.Background(), domain.PublicEventFilter{
		RangeStart: &start,
		RangeEnd:   &end,
	}, "10.0.0.1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_PublicSearch_StatsUnavailable(t *testing.T) {
	svc, m := newEventService(t)

	events := []*domain.Event{{ID: 1, State: domain.EventStatePublished}}
	m.eventRepo.EXPECT().SearchPublic(mock.Anything, mock.Anything).Return(events, nil)
	m.requestRepo.EXPECT().ConfirmedCounts(mock.Anything, []int64{1}).Return(map[int64]int64{1: 2}, nil)
	m.stats.EXPECT().ViewCounts(mock.Anything, []int64{1}).Return(nil, assert.AnError)
	m.stats.EXPECT().RecordHit(mock.Anything, "/events", "10.0.0.1").Return().Maybe()

	// Недоступная статистика не валит выдачу: просмотры нулевые.
	res, err := svc.PublicSearch(context.Background(), domain.PublicEventFilter{}, "10.0.0.1")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(0), res[0].Views)
	assert.Equal(t, int64(2), res[0].ConfirmedRequests)

	time.Sleep(50 * time.Millisecond)
}
