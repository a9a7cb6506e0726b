package handlers

import (
	"errors"
	"net/http"

	"bookmarkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/error constants to avoid magic strings and typos.
const (
	errListBookmarks  = "failed to load bookmarks"
	errCreateBookmark = "failed to create bookmark"
	errGetBookmark    = "failed to load bookmark"
	errUpdateBookmark = "failed to update bookmark"
	errDeleteBookmark = "failed to delete bookmark"

	msgBookmarkDeleted = "bookmark deleted"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for creating a bookmark.
type createBookmarkRequest struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	IsPublic    bool    `json:"isPublic,omitempty"`
}

// Request DTO for updating a bookmark. Pointer fields distinguish "absent"
// from explicit zero values; a "url" key in the payload is simply ignored.
type updateBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	IsRead      *bool   `json:"isRead,omitempty"`
}

// @Summary      List own bookmarks
// @Tags         bookmarks
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "bookmarks"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/bookmarks [get]
// @Security     CookieAuth
func (h *Handler) listBookmarks(c *gin.Context) {
	ident := identityFromContext(c)

	bookmarks, err := h.services.Bookmarks.ListOwned(c.Request.Context(), ident.ID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListBookmarks, "bookmarks_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body   createBookmarkRequest  true  "Bookmark payload"
// @Success      201   {object}  map[string]interface{}  "bookmark"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/bookmarks [post]
// @Security     CookieAuth
func (h *Handler) createBookmark(c *gin.Context) {
	ident := identityFromContext(c)

	var req createBookmarkRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	bookmark, err := h.services.Bookmarks.Create(c.Request.Context(), ident.ID, service.CreateBookmarkInput{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errCreateBookmark, "bookmark_create_failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bookmark": bookmark})
}

// @Summary      Get one bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        id   path   string  true  "Bookmark id"
// @Success      200  {object}  map[string]interface{}  "bookmark"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/bookmarks/{id} [get]
// @Security     CookieAuth
func (h *Handler) getBookmark(c *gin.Context) {
	ident := identityFromContext(c)

	bookmark, err := h.services.Bookmarks.Get(c.Request.Context(), ident.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetBookmark, "bookmark_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmark": bookmark})
}

// @Summary      Update a bookmark
// @Description  Partial update; fields absent from the payload keep their value. The url is immutable.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path   string                 true  "Bookmark id"
// @Param        body  body   updateBookmarkRequest  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}  "bookmark"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/bookmarks/{id} [put]
// @Security     CookieAuth
func (h *Handler) updateBookmark(c *gin.Context) {
	ident := identityFromContext(c)

	var req updateBookmarkRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	bookmark, err := h.services.Bookmarks.Update(c.Request.Context(), ident.ID, c.Param("id"), service.UpdateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		IsRead:      req.IsRead,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateBookmark, "bookmark_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmark": bookmark})
}

// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        id   path   string  true  "Bookmark id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/bookmarks/{id} [delete]
// @Security     CookieAuth
func (h *Handler) deleteBookmark(c *gin.Context) {
	ident := identityFromContext(c)

	if err := h.services.Bookmarks.Delete(c.Request.Context(), ident.ID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteBookmark, "bookmark_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgBookmarkDeleted})
}
