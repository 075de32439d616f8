package handler

import (
	"net/http"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AddComment(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := queryID(c, "eventId")
	if !ok {
		return
	}

	var req dto.NewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), userID, eventID, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *Handler) UpdateComment(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), userID, commentID, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *Handler) DeleteComment(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ModerateComment(c *ginext.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	comment, err := h.commentService.Moderate(c.Request.Context(), commentID, domain.AdminCommentAction(req.Action))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *Handler) ListEventComments(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListPublishedByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		res = append(res, dto.ToCommentResponse(cm))
	}

	c.JSON(http.StatusOK, res)
}
