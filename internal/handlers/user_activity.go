package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/dto"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
	"github.com/hiboard/hiboard-api/internal/services"
)

// UserActivityHandler serves the /api/:userId/activities routes.
type UserActivityHandler struct {
	service *services.UserActivityService
}

// NewUserActivityHandler creates a new UserActivityHandler
func NewUserActivityHandler(service *services.UserActivityService) *UserActivityHandler {
	return &UserActivityHandler{service: service}
}

// ListUserActivities returns all activity assignments of a user
func (h *UserActivityHandler) ListUserActivities(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	userActivities, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, userActivities)
}

// GetUserActivity returns one user activity by ID
func (h *UserActivityHandler) GetUserActivity(c *gin.Context) {
	activityID, err := parseIDParam(c, "activityId")
	if err != nil {
		return
	}

	userActivity, err := h.service.Get(c.Request.Context(), activityID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, userActivity)
}

// CreateUserActivity associates a user with an activity
func (h *UserActivityHandler) CreateUserActivity(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	var req dto.UserActivityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userActivity, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, userActivity)
}

// UpdateUserActivity patches the mutable fields of a user activity
func (h *UserActivityHandler) UpdateUserActivity(c *gin.Context) {
	activityID, err := parseIDParam(c, "activityId")
	if err != nil {
		return
	}

	var req dto.UserActivityPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userActivity, err := h.service.Patch(c.Request.Context(), activityID, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, userActivity)
}

// DeleteUserActivity soft deletes a user activity
func (h *UserActivityHandler) DeleteUserActivity(c *gin.Context) {
	activityID, err := parseIDParam(c, "activityId")
	if err != nil {
		return
	}

	if err := h.service.Delete(c.Request.Context(), activityID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignTemplate creates one assignment per template activity for the user
// given in the user_id query parameter.
func (h *UserActivityHandler) AssignTemplate(c *gin.Context) {
	templateID, err := parseIDParam(c, "templateId")
	if err != nil {
		return
	}

	userID, parseErr := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if parseErr != nil {
		apierrors.BadRequest(c, "Invalid user_id")
		return
	}

	if err := h.service.AssignTemplate(c.Request.Context(), userID, templateID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter, responding with 400 on
// failure.
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, err
	}
	return id, nil
}
