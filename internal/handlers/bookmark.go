package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"Bookmarker/internal/auth"
	dom "Bookmarker/internal/domain"
	"Bookmarker/internal/dto"
	"Bookmarker/internal/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

// Create godoc
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBookmarkRequest  true  "Bookmark body"
// @Success      201   {object}  dto.BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c *gin.Context) {
	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Title, req.Description, req.Link)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bookmarkToResponse(b))
}

// List godoc
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListBookmarksResponse
// @Failure      500  {object}  map[string]string
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListBookmarksResponse{Items: bookmarksToResponses(list)})
}

// GetByID godoc
// @Summary      Get a bookmark by ID
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Bookmark ID"
// @Success      200  {object}  dto.BookmarkResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bookmarks/{id} [get]
func (h *BookmarkHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookmarkToResponse(b))
}

// Update godoc
// @Summary      Update a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Bookmark ID"
// @Param        body  body      dto.UpdateBookmarkRequest  true  "Partial update"
// @Success      200   {object}  dto.BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /bookmarks/{id} [patch]
func (h *BookmarkHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, req.Title, req.Description, req.Link)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookmarkToResponse(b))
}

// Delete godoc
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id   path  int  true  "Bookmark ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func bookmarkToResponse(b dom.Bookmark) dto.BookmarkResponse {
	return dto.BookmarkResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func bookmarksToResponses(list []dom.Bookmark) []dto.BookmarkResponse {
	out := make([]dto.BookmarkResponse, len(list))
	for i := range list {
		out[i] = bookmarkToResponse(list[i])
	}
	return out
}
