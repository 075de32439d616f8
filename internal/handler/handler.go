package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, initiatorID int64, input domain.CreateEventInput) (*domain.Event, error)
	AdminUpdate(ctx context.Context, eventID int64, input domain.UpdateEventInput, action *domain.AdminStateAction) (*domain.Event, error)
	InitiatorUpdate(ctx context.Context, initiatorID, eventID int64, input domain.UpdateEventInput, action *domain.UserStateAction) (*domain.Event, error)
	GetInitiatorEvent(ctx context.Context, initiatorID, eventID int64) (*domain.EventDetails, error)
	ListInitiatorEvents(ctx context.Context, initiatorID int64, from, size int) ([]*domain.EventSummary, error)
	AdminSearch(ctx context.Context, f domain.AdminEventFilter) ([]*domain.EventSummary, error)
	PublicSearch(ctx context.Context, f domain.PublicEventFilter, clientIP string) ([]*domain.EventSummary, error)
	GetPublished(ctx context.Context, eventID int64, clientIP string) (*domain.EventDetails, error)
}

type RequestSvc interface {
	Create(ctx context.Context, requesterID, eventID int64) (*domain.Request, error)
	Cancel(ctx context.Context, requesterID, requestID int64) (*domain.Request, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Request, error)
	ListForEvent(ctx context.Context, initiatorID, eventID int64) ([]*domain.Request, error)
	Moderate(ctx context.Context, initiatorID, eventID int64, input domain.ModerationInput) (*domain.ModerationResult, error)
}

type CommentSvc interface {
	Add(ctx context.Context, authorID, eventID int64, text string) (*domain.Comment, error)
	Update(ctx context.Context, authorID, commentID int64, text string) (*domain.Comment, error)
	Delete(ctx context.Context, authorID, commentID int64) error
	Moderate(ctx context.Context, commentID int64, action domain.AdminCommentAction) (*domain.Comment, error)
	ListPublishedByEvent(ctx context.Context, eventID int64) ([]*domain.Comment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context, ids []int64, from, size int) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type CategorySvc interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, from, size int) ([]*domain.Category, error)
}

type Handler struct {
	eventService    EventSvc
	requestService  RequestSvc
	commentService  CommentSvc
	userService     UserSvc
	categoryService CategorySvc
}

func NewHandler(
	eventService EventSvc,
	requestService RequestSvc,
	commentService CommentSvc,
	userService UserSvc,
	categoryService CategorySvc,
) *Handler {
	return &Handler{
		eventService:    eventService,
		requestService:  requestService,
		commentService:  commentService,
		userService:     userService,
		categoryService: categoryService,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotPending),
		errors.Is(err, domain.ErrEventPublished),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrSelfParticipation),
		errors.Is(err, domain.ErrParticipantLimitReached),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrModerationNotRequired),
		errors.Is(err, domain.ErrInvalidModerationStatus),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrCommentEditExpired),
		errors.Is(err, domain.ErrCategoryNotEmpty),
		errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func paging(c *ginext.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from"})
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid size"})
		return 0, 0, false
	}
	return from, size, true
}

func queryIDs(c *ginext.Context, name string) ([]int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func queryTime(c *ginext.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateTimeLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseEventDate(raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}
	t, err := time.Parse(dto.DateTimeLayout, *raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
