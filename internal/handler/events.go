package handler

import (
	"net/http"
	"strings"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.NewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	eventDate, ok := parseEventDate(&req.EventDate)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event_date"})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, domain.CreateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.Category,
		EventDate:         *eventDate,
		Paid:              req.Paid,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEventByInitiator(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	eventDate, ok := parseEventDate(req.EventDate)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event_date"})
		return
	}

	var action *domain.UserStateAction
	if req.StateAction != nil {
		a := domain.UserStateAction(*req.StateAction)
		action = &a
	}

	event, err := h.eventService.InitiatorUpdate(c.Request.Context(), userID, eventID, domain.UpdateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.Category,
		EventDate:         eventDate,
		Paid:              req.Paid,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}, action)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEventByAdmin(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	eventDate, ok := parseEventDate(req.EventDate)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event_date"})
		return
	}

	var action *domain.AdminStateAction
	if req.StateAction != nil {
		a := domain.AdminStateAction(*req.StateAction)
		action = &a
	}

	event, err := h.eventService.AdminUpdate(c.Request.Context(), eventID, domain.UpdateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.Category,
		EventDate:         eventDate,
		Paid:              req.Paid,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}, action)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetInitiatorEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	details, err := h.eventService.GetInitiatorEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListInitiatorEvents(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListInitiatorEvents(c.Request.Context(), userID, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventSummaryResponses(events))
}

func (h *Handler) SearchEventsAdmin(c *ginext.Context) {
	from, size, ok := paging(c)
	if !ok {
		return
	}

	initiators, err := queryIDs(c, "users")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid users"})
		return
	}
	categories, err := queryIDs(c, "categories")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid categories"})
		return
	}
	rangeStart, err := queryTime(c, "rangeStart")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rangeStart"})
		return
	}
	rangeEnd, err := queryTime(c, "rangeEnd")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rangeEnd"})
		return
	}

	var states []domain.EventState
	if raw := c.Query("states"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			states = append(states, domain.EventState(strings.TrimSpace(s)))
		}
	}

	events, err := h.eventService.AdminSearch(c.Request.Context(), domain.AdminEventFilter{
		Initiators: initiators,
		States:     states,
		Categories: categories,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		From:       from,
		Size:       size,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventSummaryResponses(events))
}

func (h *Handler) SearchEventsPublic(c *ginext.Context) {
	from, size, ok := paging(c)
	if !ok {
		return
	}

	categories, err := queryIDs(c, "categories")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid categories"})
		return
	}
	rangeStart, err := queryTime(c, "rangeStart")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rangeStart"})
		return
	}
	rangeEnd, err := queryTime(c, "rangeEnd")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rangeEnd"})
		return
	}

	var paid *bool
	if raw := c.Query("paid"); raw != "" {
		v := raw == "true"
		paid = &v
	}

	events, err := h.eventService.PublicSearch(c.Request.Context(), domain.PublicEventFilter{
		Text:          c.Query("text"),
		Categories:    categories,
		Paid:          paid,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		OnlyAvailable: c.Query("onlyAvailable") == "true",
		From:          from,
		Size:          size,
	}, c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventSummaryResponses(events))
}

func (h *Handler) GetPublishedEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	details, err := h.eventService.GetPublished(c.Request.Context(), eventID, c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func toEventSummaryResponses(events []*domain.EventSummary) []dto.EventResponse {
	res := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, dto.ToEventSummaryResponse(e))
	}
	return res
}
