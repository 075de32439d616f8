package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RequestService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.RequestNotifier
	logger      logger.Logger
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RequestNotifier,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create подает заявку на участие. События без модерации заявок или без лимита
// мест подтверждают заявку сразу; лимит проверяется в репозитории атомарно
// со вставкой.
func (s *RequestService) Create(ctx context.Context, requesterID, eventID int64) (*domain.Request, error) {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotPublished
	}
	if event.InitiatorID == requesterID {
		return nil, domain.ErrSelfParticipation
	}

	status := domain.ParticipationStatusPending
	if !event.RequestModeration || event.ParticipantLimit == 0 {
		status = domain.ParticipationStatusConfirmed
	}

	request := &domain.Request{
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		Created:     time.Now().UTC(),
	}
	if err = s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("participation request created",
		logger.Int64("request_id", request.ID),
		logger.Int64("event_id", eventID),
		logger.Int64("requester_id", requesterID),
		logger.String("status", string(request.Status)),
	)

	if request.Status == domain.ParticipationStatusConfirmed {
		go s.notifier.NotifyRequestConfirmed(context.WithoutCancel(ctx), user, event)
	}

	return request, nil
}

// Cancel — безусловный перевод собственной заявки в CANCELED, каким бы ни был
// ее предыдущий статус. Освободившееся место никому не переназначается:
// вместимость всегда пересчитывается по живым статусам.
func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID int64) (*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if request.RequesterID != requesterID {
		return nil, domain.ErrRequestNotFound
	}

	if err = s.requestRepo.UpdateStatus(ctx, requestID, domain.ParticipationStatusCanceled); err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}
	request.Status = domain.ParticipationStatusCanceled

	s.logger.Info("participation request cancelled",
		logger.Int64("request_id", requestID),
		logger.Int64("requester_id", requesterID),
	)

	return request, nil
}

func (s *RequestService) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	return s.requestRepo.ListByRequester(ctx, requesterID)
}

func (s *RequestService) ListForEvent(ctx context.Context, initiatorID, eventID int64) ([]*domain.Request, error) {
	if _, err := s.eventRepo.GetByIDAndInitiator(ctx, eventID, initiatorID); err != nil {
		return nil, fmt.Errorf("check event ownership: %w", err)
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

// Moderate — пакетное решение инициатора по PENDING-заявкам его события.
// Предусловия проверяются здесь, распределение вакансий и запись статусов —
// одной транзакцией в репозитории.
func (s *RequestService) Moderate(ctx context.Context, initiatorID, eventID int64, input domain.ModerationInput) (*domain.ModerationResult, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	event, err := s.eventRepo.GetByIDAndInitiator(ctx, eventID, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("check event ownership: %w", err)
	}
	if !event.RequestModeration || event.ParticipantLimit == 0 {
		return nil, domain.ErrModerationNotRequired
	}
	if input.Status != domain.ParticipationStatusConfirmed &&
		input.Status != domain.ParticipationStatusRejected {
		return nil, domain.ErrInvalidModerationStatus
	}

	result, err := s.requestRepo.ModerateBatch(ctx, eventID, input.RequestIDs, input.Status)
	if err != nil {
		return nil, fmt.Errorf("moderate requests: %w", err)
	}

	s.logger.Info("requests moderated",
		logger.Int64("event_id", eventID),
		logger.Int("confirmed", len(result.Confirmed)),
		logger.Int("rejected", len(result.Rejected)),
	)

	go s.notifyModerated(context.WithoutCancel(ctx), event, result)

	return result, nil
}

// RejectStale отклоняет заявки, зависшие в PENDING после начала события.
func (s *RequestService) RejectStale(ctx context.Context) ([]*domain.Request, error) {
	rejected, err := s.requestRepo.RejectStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject stale: %w", err)
	}

	if len(rejected) > 0 {
		s.logger.Info("stale requests rejected",
			logger.Int("count", len(rejected)),
		)

		go s.notifyRejected(context.WithoutCancel(ctx), rejected)
	}

	return rejected, nil
}

func (s *RequestService) notifyModerated(ctx context.Context, event *domain.Event, result *domain.ModerationResult) {
	for _, req := range result.Confirmed {
		if user, err := s.userRepo.GetByID(ctx, req.RequesterID); err == nil {
			s.notifier.NotifyRequestConfirmed(ctx, user, event)
		}
	}
	for _, req := range result.Rejected {
		if user, err := s.userRepo.GetByID(ctx, req.RequesterID); err == nil {
			s.notifier.NotifyRequestRejected(ctx, user, event)
		}
	}
}

func (s *RequestService) notifyRejected(ctx context.Context, requests []*domain.Request) {
	for _, req := range requests {
		user, err := s.userRepo.GetByID(ctx, req.RequesterID)
		if err != nil {
			s.logger.Error("failed to get user for reject notification",
				logger.Int64("user_id", req.RequesterID),
			)
			continue
		}

		event, err := s.eventRepo.GetByID(ctx, req.EventID)
		if err != nil {
			s.logger.Error("failed to get event for reject notification",
				logger.Int64("event_id", req.EventID),
			)
			continue
		}

		s.notifier.NotifyRequestRejected(ctx, user, event)
	}
}
