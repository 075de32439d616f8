package handler

import (
	"net/http"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.NewUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	from, size, ok := paging(c)
	if !ok {
		return
	}
	ids, err := queryIDs(c, "ids")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ids"})
		return
	}

	users, err := h.userService.List(c.Request.Context(), ids, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
