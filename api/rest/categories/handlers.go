package categories

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/reclaim/server/internal/errors"
	"codeberg.org/reclaim/server/reclaim/categories"
	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler godoc
// @Summary List item categories
// @Tags categories
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/categories [get]
func ListCategoriesHandler(store CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list categories", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Categories: list})
	}
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body categories.CreateCategoryRequest true "Category"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/categories [post]
// @Security BearerAuth
func CreateCategoryHandler(store CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categories.CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		category, err := store.Create(c.Request.Context(), req)
		if stderrors.Is(err, categories.ErrCategoryExists) {
			errors.Conflict(c, "category already exists")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to create category", err)
			return
		}

		c.JSON(http.StatusCreated, CreateResponse{Message: "category created successfully", Category: category})
	}
}

// ListTagsHandler godoc
// @Summary List tags in use
// @Tags categories
// @Produce json
// @Success 200 {object} TagsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/tags [get]
func ListTagsHandler(store CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := store.ListTags(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list tags", err)
			return
		}

		c.JSON(http.StatusOK, TagsResponse{Tags: tags})
	}
}
