package dto

import (
	"time"

	"github.com/mshevelin/afisha/internal/domain"
)

// DateTimeLayout — формат дат во внешнем API.
const DateTimeLayout = "2006-01-02 15:04:05"

type EventResponse struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Annotation        string            `json:"annotation"`
	Description       string            `json:"description"`
	Category          int64             `json:"category"`
	Initiator         int64             `json:"initiator"`
	EventDate         string            `json:"event_date"`
	Paid              bool              `json:"paid"`
	ParticipantLimit  int               `json:"participant_limit"`
	RequestModeration bool              `json:"request_moderation"`
	State             string            `json:"state"`
	CreatedOn         string            `json:"created_on"`
	PublishedOn       *string           `json:"published_on,omitempty"`
	Views             int64             `json:"views"`
	ConfirmedRequests int64             `json:"confirmed_requests"`
	Comments          []CommentResponse `json:"comments,omitempty"`
}

type RequestResponse struct {
	ID        int64  `json:"id"`
	Event     int64  `json:"event"`
	Requester int64  `json:"requester"`
	Status    string `json:"status"`
	Created   string `json:"created"`
}

type ModerationResultResponse struct {
	ConfirmedRequests []RequestResponse `json:"confirmed_requests"`
	RejectedRequests  []RequestResponse `json:"rejected_requests"`
}

type CommentResponse struct {
	ID        int64   `json:"id"`
	Event     int64   `json:"event"`
	Author    int64   `json:"author"`
	Text      string  `json:"text"`
	State     string  `json:"state"`
	Created   string  `json:"created"`
	Published *string `json:"published,omitempty"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		Category:          e.CategoryID,
		Initiator:         e.InitiatorID,
		EventDate:         e.EventDate.Format(DateTimeLayout),
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		State:             string(e.State),
		CreatedOn:         e.CreatedOn.Format(DateTimeLayout),
		PublishedOn:       formatOptional(e.PublishedOn),
	}
}

func ToEventSummaryResponse(s *domain.EventSummary) EventResponse {
	resp := ToEventResponse(s.Event)
	resp.Views = s.Views
	resp.ConfirmedRequests = s.ConfirmedRequests
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventResponse {
	resp := ToEventResponse(d.Event)
	resp.Views = d.Views
	resp.ConfirmedRequests = d.ConfirmedRequests
	resp.Comments = make([]CommentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(c))
	}
	return resp
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
		Created:   r.Created.Format(DateTimeLayout),
	}
}

func ToModerationResultResponse(res *domain.ModerationResult) ModerationResultResponse {
	confirmed := make([]RequestResponse, 0, len(res.Confirmed))
	for _, r := range res.Confirmed {
		confirmed = append(confirmed, ToRequestResponse(r))
	}
	rejected := make([]RequestResponse, 0, len(res.Rejected))
	for _, r := range res.Rejected {
		rejected = append(rejected, ToRequestResponse(r))
	}
	return ModerationResultResponse{
		ConfirmedRequests: confirmed,
		RejectedRequests:  rejected,
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Event:     c.EventID,
		Author:    c.AuthorID,
		Text:      c.Text,
		State:     string(c.State),
		Created:   c.Created.Format(DateTimeLayout),
		Published: formatOptional(c.Published),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateTimeLayout)
	return &s
}
