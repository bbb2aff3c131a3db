package handlers

import (
	"errors"
	"net/http"
	"strings"

	"Bookmarker/internal/auth"
	"Bookmarker/internal/dto"
	"Bookmarker/internal/repo"
	"Bookmarker/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the current user's profile.
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	profile, err := h.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileToResponse(profile))
}

// Edit godoc
// @Summary      Edit current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EditUserRequest  true  "Sparse patch"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users [patch]
func (h *UserHandler) Edit(c *gin.Context) {
	var req dto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// omitempty lets an explicit empty string through binding
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email must not be empty"})
		return
	}
	userID := auth.UserIDFromContext(c)
	profile, err := h.userSvc.EditProfile(c.Request.Context(), userID, repo.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusForbidden, gin.H{"error": "email already exists"})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileToResponse(profile))
}
