package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Минимальный зазор между текущим моментом и датой события: при создании и
// правке инициатором — 2 часа, при правке администратором — 1 час.
const (
	minLeadTimeUser  = 2 * time.Hour
	minLeadTimeAdmin = 1 * time.Hour
)

type EventService struct {
	eventRepo    ports.EventRepo
	requestRepo  ports.RequestRepo
	commentRepo  ports.CommentRepo
	userRepo     ports.UserRepo
	categoryRepo ports.CategoryRepo
	stats        ports.StatsClient
	notifier     ports.RequestNotifier
	logger       logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	requestRepo ports.RequestRepo,
	commentRepo ports.CommentRepo,
	userRepo ports.UserRepo,
	categoryRepo ports.CategoryRepo,
	stats ports.StatsClient,
	notifier ports.RequestNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		requestRepo:  requestRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		stats:        stats,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *EventService) Create(ctx context.Context, initiatorID int64, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.ParticipantLimit < 0 {
		return nil, fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
	}
	if err := checkLeadTime(input.EventDate, minLeadTimeUser); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	requestModeration := true
	if input.RequestModeration != nil {
		requestModeration = *input.RequestModeration
	}

	event := &domain.Event{
		Title:             input.Title,
		Annotation:        input.Annotation,
		Description:       input.Description,
		CategoryID:        input.CategoryID,
		InitiatorID:       initiatorID,
		EventDate:         input.EventDate,
		Paid:              input.Paid,
		ParticipantLimit:  input.ParticipantLimit,
		RequestModeration: requestModeration,
		State:             domain.EventStatePending,
		CreatedOn:         time.Now().UTC(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.Int64("event_id", event.ID),
		logger.Int64("initiator_id", initiatorID),
	)

	return event, nil
}

// AdminUpdate применяет частичное обновление и/или решение администратора.
// Публикация возможна только из PENDING; отклонение — пока событие не
// опубликовано.
func (s *EventService) AdminUpdate(ctx context.Context, eventID int64, input domain.UpdateEventInput, action *domain.AdminStateAction) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if input.EventDate != nil {
		if err = checkLeadTime(*input.EventDate, minLeadTimeAdmin); err != nil {
			return nil, err
		}
	}

	if action != nil {
		switch *action {
		case domain.AdminPublishEvent:
			if err = event.Publish(time.Now().UTC()); err != nil {
				return nil, err
			}
		case domain.AdminRejectEvent:
			if err = event.Reject(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown state action %q", domain.ErrValidation, *action)
		}
	}

	if err = s.applyPatch(ctx, event, input); err != nil {
		return nil, err
	}

	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated by admin",
		logger.Int64("event_id", event.ID),
		logger.String("state", string(event.State)),
	)

	if event.State == domain.EventStatePublished && action != nil && *action == domain.AdminPublishEvent {
		go s.notifyPublished(context.WithoutCancel(ctx), event)
	}

	return event, nil
}

// InitiatorUpdate — правка черновика его владельцем. Опубликованное событие
// инициатору больше не принадлежит: любая попытка изменения — конфликт.
func (s *EventService) InitiatorUpdate(ctx context.Context, initiatorID, eventID int64, input domain.UpdateEventInput, action *domain.UserStateAction) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	event, err := s.eventRepo.GetByIDAndInitiator(ctx, eventID, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.State == domain.EventStatePublished {
		return nil, domain.ErrEventPublished
	}

	if input.EventDate != nil {
		if err = checkLeadTime(*input.EventDate, minLeadTimeUser); err != nil {
			return nil, err
		}
	}

	if action != nil {
		switch *action {
		case domain.UserSendToReview:
			if err = event.SendToReview(); err != nil {
				return nil, err
			}
		case domain.UserCancelReview:
			if err = event.CancelReview(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown state action %q", domain.ErrValidation, *action)
		}
	}

	if err = s.applyPatch(ctx, event, input); err != nil {
		return nil, err
	}

	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetInitiatorEvent(ctx context.Context, initiatorID, eventID int64) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByIDAndInitiator(ctx, eventID, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return s.details(ctx, event)
}

func (s *EventService) ListInitiatorEvents(ctx context.Context, initiatorID int64, from, size int) ([]*domain.EventSummary, error) {
	events, err := s.eventRepo.ListByInitiator(ctx, initiatorID, from, size)
	if err != nil {
		return nil, fmt.Errorf("list initiator events: %w", err)
	}

	return s.summarize(ctx, events)
}

func (s *EventService) AdminSearch(ctx context.Context, f domain.AdminEventFilter) ([]*domain.EventSummary, error) {
	events, err := s.eventRepo.SearchAdmin(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("admin search: %w", err)
	}

	return s.summarize(ctx, events)
}

// PublicSearch фиксирует обращение в сервисе статистики и возвращает
// опубликованные события со счетчиками просмотров и подтвержденных заявок.
func (s *EventService) PublicSearch(ctx context.Context, f domain.PublicEventFilter, clientIP string) ([]*domain.EventSummary, error) {
	if f.RangeStart != nil && f.RangeEnd != nil && f.RangeEnd.Before(*f.RangeStart) {
		return nil, fmt.Errorf("%w: range end is before range start", domain.ErrValidation)
	}

	events, err := s.eventRepo.SearchPublic(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("public search: %w", err)
	}

	go s.stats.RecordHit(context.WithoutCancel(ctx), "/events", clientIP)

	return s.summarize(ctx, events)
}

// GetPublished возвращает опубликованное событие; неопубликованное для
// публичного обращения неотличимо от несуществующего.
func (s *EventService) GetPublished(ctx context.Context, eventID int64, clientIP string) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotFound
	}

	go s.stats.RecordHit(context.WithoutCancel(ctx), fmt.Sprintf("/events/%d", eventID), clientIP)

	return s.details(ctx, event)
}

func (s *EventService) applyPatch(ctx context.Context, event *domain.Event, input domain.UpdateEventInput) error {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Annotation != nil {
		event.Annotation = *input.Annotation
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		event.CategoryID = *input.CategoryID
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.Paid != nil {
		event.Paid = *input.Paid
	}
	if input.ParticipantLimit != nil {
		if *input.ParticipantLimit < 0 {
			return fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
		}
		event.ParticipantLimit = *input.ParticipantLimit
	}
	if input.RequestModeration != nil {
		event.RequestModeration = *input.RequestModeration
	}

	return nil
}

func (s *EventService) details(ctx context.Context, event *domain.Event) (*domain.EventDetails, error) {
	confirmed, err := s.requestRepo.ConfirmedCount(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("confirmed count: %w", err)
	}

	comments, err := s.commentRepo.ListPublishedByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &domain.EventDetails{
		Event:             event,
		Views:             s.views(ctx, []int64{event.ID})[event.ID],
		ConfirmedRequests: confirmed,
		Comments:          comments,
	}, nil
}

func (s *EventService) summarize(ctx context.Context, events []*domain.Event) ([]*domain.EventSummary, error) {
	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	confirmed, err := s.requestRepo.ConfirmedCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("confirmed counts: %w", err)
	}
	views := s.views(ctx, ids)

	res := make([]*domain.EventSummary, 0, len(events))
	for _, e := range events {
		res = append(res, &domain.EventSummary{
			Event:             e,
			Views:             views[e.ID],
			ConfirmedRequests: confirmed[e.ID],
		})
	}

	return res, nil
}

// views не валит выдачу при недоступной статистике: счетчики просмотров —
// только отображение.
func (s *EventService) views(ctx context.Context, eventIDs []int64) map[int64]int64 {
	views, err := s.stats.ViewCounts(ctx, eventIDs)
	if err != nil {
		s.logger.Error("failed to get view counts",
			logger.String("error", err.Error()),
		)
		return map[int64]int64{}
	}
	return views
}

func (s *EventService) notifyPublished(ctx context.Context, event *domain.Event) {
	initiator, err := s.userRepo.GetByID(ctx, event.InitiatorID)
	if err != nil {
		s.logger.Error("failed to get initiator for publish notification",
			logger.Int64("user_id", event.InitiatorID),
		)
		return
	}
	s.notifier.NotifyEventPublished(ctx, initiator, event)
}

func checkLeadTime(eventDate time.Time, lead time.Duration) error {
	if eventDate.Before(time.Now().Add(lead)) {
		return fmt.Errorf("%w: event_date must be at least %s in the future", domain.ErrValidation, lead)
	}
	return nil
}
