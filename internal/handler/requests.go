package handler

import (
	"net/http"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := queryID(c, "eventId")
	if !ok {
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

func (h *Handler) ListUserRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *Handler) ListEventRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *Handler) ModerateRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.requestService.Moderate(c.Request.Context(), userID, eventID, domain.ModerationInput{
		RequestIDs: req.RequestIDs,
		Status:     domain.ParticipationStatus(req.Status),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModerationResultResponse(result))
}

func toRequestResponses(requests []*domain.Request) []dto.RequestResponse {
	res := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, dto.ToRequestResponse(r))
	}
	return res
}
