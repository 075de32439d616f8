package domain

import "time"

type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

// AdminStateAction управляет жизненным циклом события со стороны администратора.
type AdminStateAction string

const (
	AdminPublishEvent AdminStateAction = "PUBLISH_EVENT"
	AdminRejectEvent  AdminStateAction = "REJECT_EVENT"
)

// UserStateAction управляет жизненным циклом события со стороны инициатора.
type UserStateAction string

const (
	UserSendToReview UserStateAction = "SEND_TO_REVIEW"
	UserCancelReview UserStateAction = "CANCEL_REVIEW"
)

type Event struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Annotation        string     `json:"annotation"`
	Description       string     `json:"description"`
	CategoryID        int64      `json:"category_id"`
	InitiatorID       int64      `json:"initiator_id"`
	EventDate         time.Time  `json:"event_date"`
	Paid              bool       `json:"paid"`
	ParticipantLimit  int        `json:"participant_limit"` // 0 = unlimited
	RequestModeration bool       `json:"request_moderation"`
	State             EventState `json:"state"`
	CreatedOn         time.Time  `json:"created_on"`
	PublishedOn       *time.Time `json:"published_on"`
}

// Publish переводит событие PENDING -> PUBLISHED и фиксирует время публикации.
func (e *Event) Publish(now time.Time) error {
	if e.State != EventStatePending {
		return ErrEventNotPending
	}
	e.State = EventStatePublished
	e.PublishedOn = &now
	return nil
}

// Reject переводит событие в CANCELED. Опубликованное событие отклонить нельзя.
func (e *Event) Reject() error {
	if e.State == EventStatePublished {
		return ErrEventPublished
	}
	e.State = EventStateCanceled
	return nil
}

// SendToReview возвращает событие на модерацию после отмены инициатором.
func (e *Event) SendToReview() error {
	if e.State == EventStatePublished {
		return ErrEventPublished
	}
	e.State = EventStatePending
	return nil
}

// CancelReview отменяет неопубликованное событие по решению инициатора.
func (e *Event) CancelReview() error {
	if e.State == EventStatePublished {
		return ErrEventPublished
	}
	e.State = EventStateCanceled
	return nil
}

type CreateEventInput struct {
	Title             string
	Annotation        string
	Description       string
	CategoryID        int64
	EventDate         time.Time
	Paid              bool
	ParticipantLimit  int
	RequestModeration *bool
}

// UpdateEventInput — частичное обновление: nil-поле остается без изменений.
type UpdateEventInput struct {
	Title             *string
	Annotation        *string
	Description       *string
	CategoryID        *int64
	EventDate         *time.Time
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
}

// EventSummary — событие, дополненное живыми счетчиками для списочных выдач.
type EventSummary struct {
	Event             *Event `json:"event"`
	Views             int64  `json:"views"`
	ConfirmedRequests int64  `json:"confirmed_requests"`
}

type EventDetails struct {
	Event             *Event     `json:"event"`
	Views             int64      `json:"views"`
	ConfirmedRequests int64      `json:"confirmed_requests"`
	Comments          []*Comment `json:"comments"`
}

type AdminEventFilter struct {
	Initiators []int64
	States     []EventState
	Categories []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
	From       int
	Size       int
}

type PublicEventFilter struct {
	Text          string
	Categories    []int64
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	From          int
	Size          int
}
