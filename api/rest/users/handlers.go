package users

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/internal/errors"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/me [get]
// @Security BearerAuth
func GetMe(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		user, err := store.FindByID(c.Request.Context(), userID)
		if stderrors.Is(err, users.ErrUserNotFound) {
			errors.NotFound(c, "user")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch user", err)
			return
		}

		c.JSON(http.StatusOK, MeResponse{User: user})
	}
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Description Only full_name, phone, bio and location can be changed; omitted fields are kept.
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/me [put]
// @Security BearerAuth
func UpdateMe(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req users.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := store.UpdateProfile(c.Request.Context(), userID, req)
		if stderrors.Is(err, users.ErrUserNotFound) {
			errors.NotFound(c, "user")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, UpdateResponse{Message: "profile updated successfully", User: user})
	}
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/{id} [get]
func GetProfile(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id", "user")
		if !ok {
			return
		}

		profile, err := store.FindProfile(c.Request.Context(), id)
		if stderrors.Is(err, users.ErrUserNotFound) {
			errors.NotFound(c, "user")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch user", err)
			return
		}

		c.JSON(http.StatusOK, ProfileResponse{User: profile})
	}
}
