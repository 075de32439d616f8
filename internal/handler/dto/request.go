package dto

type NewEventRequest struct {
	Title             string `json:"title" binding:"required"`
	Annotation        string `json:"annotation" binding:"required"`
	Description       string `json:"description" binding:"required"`
	Category          int64  `json:"category" binding:"required"`
	EventDate         string `json:"event_date" binding:"required"`
	Paid              bool   `json:"paid"`
	ParticipantLimit  int    `json:"participant_limit" binding:"gte=0"`
	RequestModeration *bool  `json:"request_moderation"`
}

type UpdateEventAdminRequest struct {
	Title             *string `json:"title"`
	Annotation        *string `json:"annotation"`
	Description       *string `json:"description"`
	Category          *int64  `json:"category"`
	EventDate         *string `json:"event_date"`
	Paid              *bool   `json:"paid"`
	ParticipantLimit  *int    `json:"participant_limit"`
	RequestModeration *bool   `json:"request_moderation"`
	StateAction       *string `json:"state_action" binding:"omitempty,oneof=PUBLISH_EVENT REJECT_EVENT"`
}

type UpdateEventUserRequest struct {
	Title             *string `json:"title"`
	Annotation        *string `json:"annotation"`
	Description       *string `json:"description"`
	Category          *int64  `json:"category"`
	EventDate         *string `json:"event_date"`
	Paid              *bool   `json:"paid"`
	ParticipantLimit  *int    `json:"participant_limit"`
	RequestModeration *bool   `json:"request_moderation"`
	StateAction       *string `json:"state_action" binding:"omitempty,oneof=SEND_TO_REVIEW CANCEL_REVIEW"`
}

// ModerationRequest: статус намеренно не ограничен на уровне binding —
// недопустимое целевое значение должно давать конфликт, а не 400.
type ModerationRequest struct {
	RequestIDs []int64 `json:"request_ids" binding:"required,min=1"`
	Status     string  `json:"status" binding:"required"`
}

type NewCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ModerateCommentRequest struct {
	Action string `json:"action" binding:"required,oneof=PUBLISH_COMMENT REJECT_COMMENT"`
}

type NewCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type NewUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
