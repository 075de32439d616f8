package handler

import (
	"net/http"

	"github.com/mshevelin/afisha/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.NewCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(c *ginext.Context) {
	catID, ok := pathID(c, "catId")
	if !ok {
		return
	}

	var req dto.NewCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), catID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	catID, ok := pathID(c, "catId")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), catID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetCategory(c *ginext.Context) {
	catID, ok := pathID(c, "catId")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), catID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	from, size, ok := paging(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		res = append(res, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, res)
}
