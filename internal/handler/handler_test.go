package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/handler/dto"
	hmocks "github.com/mshevelin/afisha/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	event    *hmocks.MockEventSvc
	request  *hmocks.MockRequestSvc
	comment  *hmocks.MockCommentSvc
	user     *hmocks.MockUserSvc
	category *hmocks.MockCategorySvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()
	m := &svcMocks{
		event:    hmocks.NewMockEventSvc(t),
		request:  hmocks.NewMockRequestSvc(t),
		comment:  hmocks.NewMockCommentSvc(t),
		user:     hmocks.NewMockUserSvc(t),
		category: hmocks.NewMockCategorySvc(t),
	}

	h := NewHandler(m.event, m.request, m.comment, m.user, m.category)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events/:eventId", h.GetPublishedEvent)

		users := api.Group("/users/:userId")
		{
			users.POST("/events", h.CreateEvent)
			users.PATCH("/events/:eventId", h.UpdateEventByInitiator)
			users.PATCH("/events/:eventId/requests", h.ModerateRequests)
			users.POST("/requests", h.CreateRequest)
			users.PATCH("/requests/:requestId/cancel", h.CancelRequest)
			users.PATCH("/comments/:commentId", h.UpdateComment)
		}

		admin := api.Group("/admin")
		{
			admin.PATCH("/events/:eventId", h.UpdateEventByAdmin)
			admin.POST("/users", h.CreateUser)
			admin.DELETE("/categories/:catId", h.DeleteCategory)
			admin.PATCH("/comments/:commentId", h.ModerateComment)
		}
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventDate := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	event := &domain.Event{
		ID:                7,
		Title:             "Концерт",
		Annotation:        "Живая музыка",
		Description:       "Большой зал",
		CategoryID:        2,
		InitiatorID:       1,
		EventDate:         eventDate,
		ParticipantLimit:  100,
		RequestModeration: true,
		State:             domain.EventStatePending,
		CreatedOn:         time.Now(),
	}
	m.event.EXPECT().Create(mock.Anything, int64(1), mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users/1/events", dto.NewEventRequest{
		Title:            "Концерт",
		Annotation:       "Живая музыка",
		Description:      "Большой зал",
		Category:         2,
		EventDate:        eventDate.Format(dto.DateTimeLayout),
		ParticipantLimit: 100,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "PENDING", resp.State)
}

func TestHandler_CreateEvent_MissingTitle(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/1/events", map[string]any{
		"annotation":  "Живая музыка",
		"description": "Большой зал",
		"category":    2,
		"event_date":  "2030-01-01 12:00:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/1/events", map[string]any{
		"title":       "Концерт",
		"annotation":  "Живая музыка",
		"description": "Большой зал",
		"category":    2,
		"event_date":  "01.01.2030",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AdminPublish_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().AdminUpdate(mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(nil, domain.ErrEventNotPending)

	action := "PUBLISH_EVENT"
	w := doJSON(t, r, http.MethodPatch, "/api/admin/events/7", dto.UpdateEventAdminRequest{
		StateAction: &action,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AdminUpdate_UnknownAction(t *testing.T) {
	_, r := setupRouter(t)

	action := "EXPLODE_EVENT"
	w := doJSON(t, r, http.MethodPatch, "/api/admin/events/7", dto.UpdateEventAdminRequest{
		StateAction: &action,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPublishedEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().GetPublished(mock.Anything, int64(7), mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetPublishedEvent_BadID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	request := &domain.Request{
		ID: 5, EventID: 7, RequesterID: 2,
		Status: domain.ParticipationStatusConfirmed, Created: time.Now(),
	}
	m.request.EXPECT().Create(mock.Anything, int64(2), int64(7)).Return(request, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users/2/requests?eventId=7", nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestHandler_CreateRequest_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.request.EXPECT().Create(mock.Anything, int64(2), int64(7)).
		Return(nil, domain.ErrDuplicateRequest)

	w := doJSON(t, r, http.MethodPost, "/api/users/2/requests?eventId=7", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateRequest_LimitReached(t *testing.T) {
	m, r := setupRouter(t)

	m.request.EXPECT().Create(mock.Anything, int64(2), int64(7)).
		Return(nil, domain.ErrParticipantLimitReached)

	w := doJSON(t, r, http.MethodPost, "/api/users/2/requests?eventId=7", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	request := &domain.Request{
		ID: 5, EventID: 7, RequesterID: 2,
		Status: domain.ParticipationStatusCanceled, Created: time.Now(),
	}
	m.request.EXPECT().Cancel(mock.Anything, int64(2), int64(5)).Return(request, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/users/2/requests/5/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestHandler_ModerateRequests_Success(t *testing.T) {
	m, r := setupRouter(t)

	result := &domain.ModerationResult{
		Confirmed: []*domain.Request{{ID: 10, EventID: 7, RequesterID: 2, Status: domain.ParticipationStatusConfirmed, Created: time.Now()}},
		Rejected:  []*domain.Request{{ID: 11, EventID: 7, RequesterID: 3, Status: domain.ParticipationStatusRejected, Created: time.Now()}},
	}
	m.request.EXPECT().Moderate(mock.Anything, int64(1), int64(7), domain.ModerationInput{
		RequestIDs: []int64{10, 11},
		Status:     domain.ParticipationStatusConfirmed,
	}).Return(result, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/users/1/events/7/requests", dto.ModerationRequest{
		RequestIDs: []int64{10, 11},
		Status:     "CONFIRMED",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModerationResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.ConfirmedRequests, 1)
	assert.Len(t, resp.RejectedRequests, 1)
}

func TestHandler_ModerateRequests_InvalidTarget(t *testing.T) {
	m, r := setupRouter(t)

	// Недопустимый целевой статус — конфликт доменного уровня, не 400.
	m.request.EXPECT().Moderate(mock.Anything, int64(1), int64(7), mock.Anything).
		Return(nil, domain.ErrInvalidModerationStatus)

	w := doJSON(t, r, http.MethodPatch, "/api/users/1/events/7/requests", dto.ModerationRequest{
		RequestIDs: []int64{10},
		Status:     "PENDING",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ModerateRequests_EmptyIDs(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/users/1/events/7/requests", map[string]any{
		"request_ids": []int64{},
		"status":      "CONFIRMED",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Comments ---

func TestHandler_UpdateComment_Expired(t *testing.T) {
	m, r := setupRouter(t)

	m.comment.EXPECT().Update(mock.Anything, int64(2), int64(3), "новый текст").
		Return(nil, domain.ErrCommentEditExpired)

	w := doJSON(t, r, http.MethodPatch, "/api/users/2/comments/3", dto.UpdateCommentRequest{
		Text: "новый текст",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ModerateComment_Success(t *testing.T) {
	m, r := setupRouter(t)

	published := time.Now()
	comment := &domain.Comment{
		ID: 3, EventID: 7, AuthorID: 2, Text: "текст",
		State: domain.CommentStatePublished, Created: time.Now(), Published: &published,
	}
	m.comment.EXPECT().Moderate(mock.Anything, int64(3), domain.AdminPublishComment).Return(comment, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/comments/3", dto.ModerateCommentRequest{
		Action: "PUBLISH_COMMENT",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PUBLISHED", resp.State)
}

func TestHandler_ModerateComment_UnknownAction(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/comments/3", dto.ModerateCommentRequest{
		Action: "BURN_COMMENT",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users and categories ---

func TestHandler_CreateUser_InvalidEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/users", dto.NewUserRequest{
		Name:  "Аня",
		Email: "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteCategory_InUse(t *testing.T) {
	m, r := setupRouter(t)

	m.category.EXPECT().Delete(mock.Anything, int64(2)).Return(domain.ErrCategoryNotEmpty)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/categories/2", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}
