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
)

type requestServiceMocks struct {
	requestRepo *mocks.MockRequestRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockRequestNotifier
}

func newRequestService(t *testing.T) (*RequestService, *requestServiceMocks) {
	t.Helper()
	m := &requestServiceMocks{
		requestRepo: mocks.NewMockRequestRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockRequestNotifier(t),
	}
	svc := NewRequestService(m.requestRepo, m.eventRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func publishedEvent(id, initiatorID int64) *domain.Event {
	return &domain.Event{
		ID:                id,
		InitiatorID:       initiatorID,
		State:             domain.EventStatePublished,
		ParticipantLimit:  10,
		RequestModeration: true,
	}
}

func TestRequestService_Create_Pending(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(publishedEvent(7, 1), nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	request, err := svc.Create(context.Background(), 2, 7)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusPending, request.Status)
}

func TestRequestService_Create_AutoConfirm_NoModeration(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent(7, 1)
	event.RequestModeration = false
	user := &domain.User{ID: 2}

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, user, event).Return()

	request, err := svc.Create(context.Background(), 2, 7)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusConfirmed, request.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRequestService_Create_AutoConfirm_NoLimit(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent(7, 1)
	event.ParticipantLimit = 0
	user := &domain.User{ID: 2}

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, user, event).Return()

	request, err := svc.Create(context.Background(), 2, 7)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusConfirmed, request.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Create_NotPublished(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent(7, 1)
	event.State = domain.EventStatePending

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil)

	_, err := svc.Create(context.Background(), 2, 7)

	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
}

func TestRequestService_Create_SelfParticipation(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(publishedEvent(7, 1), nil)

	_, err := svc.Create(context.Background(), 1, 7)

	assert.ErrorIs(t, err, domain.ErrSelfParticipation)
}

func TestRequestService_Create_LimitReached(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(publishedEvent(7, 1), nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrParticipantLimitReached)

	_, err := svc.Create(context.Background(), 2, 7)

	assert.ErrorIs(t, err, domain.ErrParticipantLimitReached)
}

func TestRequestService_Cancel_Unconditional(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Request{ID: 5, RequesterID: 2, Status: domain.ParticipationStatusConfirmed}, nil)
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, int64(5), domain.ParticipationStatusCanceled).Return(nil)

	request, err := svc.Cancel(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusCanceled, request.Status)
}

func TestRequestService_Cancel_ForeignRequest(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Request{ID: 5, RequesterID: 2}, nil)

	_, err := svc.Cancel(context.Background(), 3, 5)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_Moderate_Success(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent(7, 1)
	result := &domain.ModerationResult{
		Confirmed: []*domain.Request{{ID: 10, RequesterID: 2, Status: domain.ParticipationStatusConfirmed}},
		Rejected:  []*domain.Request{{ID: 11, RequesterID: 3, Status: domain.ParticipationStatusRejected}},
	}

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(1)).Return(event, nil)
	m.requestRepo.EXPECT().
		ModerateBatch(mock.Anything, int64(7), []int64{10, 11}, domain.ParticipationStatusConfirmed).
		Return(result, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil).Maybe()
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil).Maybe()
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, mock.Anything, event).Return().Maybe()
	m.notifier.EXPECT().NotifyRequestRejected(mock.Anything, mock.Anything, event).Return().Maybe()

	res, err := svc.Moderate(context.Background(), 1, 7, domain.ModerationInput{
		RequestIDs: []int64{10, 11},
		Status:     domain.ParticipationStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Len(t, res.Confirmed, 1)
	assert.Len(t, res.Rejected, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRequestService_Moderate_NotRequired(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent(7, 1)
	event.RequestModeration = false

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(1)).Return(event, nil)

	_, err := svc.Moderate(context.Background(), 1, 7, domain.ModerationInput{
		RequestIDs: []int64{10},
		Status:     domain.ParticipationStatusConfirmed,
	})

	assert.ErrorIs(t, err, domain.ErrModerationNotRequired)
}

func TestRequestService_Moderate_NoLimit(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent(7, 1)
	event.ParticipantLimit = 0

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(1)).Return(event, nil)

	_, err := svc.Moderate(context.Background(), 1, 7, domain.ModerationInput{
		RequestIDs: []int64{10},
		Status:     domain.ParticipationStatusConfirmed,
	})

	assert.ErrorIs(t, err, domain.ErrModerationNotRequired)
}

func TestRequestService_Moderate_InvalidTargetStatus(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(1)).Return(publishedEvent(7, 1), nil)

	_, err := svc.Moderate(context.Background(), 1, 7, domain.ModerationInput{
		RequestIDs: []int64{10},
		Status:     domain.ParticipationStatusPending,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidModerationStatus)
}

func TestRequestService_Moderate_ForeignEvent(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	m.eventRepo.EXPECT().GetByIDAndInitiator(mock.Anything, int64(7), int64(2)).
		Return(nil, domain.ErrEventNotFound)

	_, err := svc.Moderate(context.Background(), 2, 7, domain.ModerationInput{
		RequestIDs: []int64{10},
		Status:     domain.ParticipationStatusConfirmed,
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRequestService_RejectStale(t *testing.T) {
	svc, m := newRequestService(t)

	rejected := []*domain.Request{{ID: 5, EventID: 7, RequesterID: 2}}
	event := publishedEvent(7, 1)

	m.requestRepo.EXPECT().RejectStale(mock.Anything).Return(rejected, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil).Maybe()
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(event, nil).Maybe()
	m.notifier.EXPECT().NotifyRequestRejected(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	res, err := svc.RejectStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)

	time.Sleep(50 * time.Millisecond)
}
