package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/dto"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
	"github.com/hiboard/hiboard-api/internal/middleware"
	"github.com/hiboard/hiboard-api/internal/repository"
)

// UserHandler serves the /api/users routes.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetUser returns a user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, user)
}

// GetUserByEmail returns a user by email, with activity counts
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apierrors.BadRequest(c, "email query parameter is required")
		return
	}

	user, err := h.userRepo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, user)
}

// ListEmployees returns the users reporting to the given manager, with
// activity counts
func (h *UserHandler) ListEmployees(c *gin.Context) {
	managerID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	employees, err := h.userRepo.ListEmployeesOf(c.Request.Context(), managerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, employees)
}

// CreateUser registers a new user with the identity provider and persists
// the local row. The manager comes from the manager_id query parameter.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		apierrors.BadRequest(c, "email and password are required")
		return
	}

	var managerID uint64
	if raw := c.Query("manager_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid manager_id")
			return
		}
		managerID = parsed
	}

	user, err := h.userRepo.Create(c.Request.Context(), req, managerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, user)
}

// UpdateUser updates a user, forwarding credential changes to the identity
// provider with the caller's bearer token.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idToken, _ := middleware.GetIDToken(c)

	user, err := h.userRepo.Update(c.Request.Context(), userID, req, idToken)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, user)
}

// DeleteUser soft deletes a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	if err := h.userRepo.Delete(c.Request.Context(), userID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
