package handlers

import (
	"net/http"
	"strconv"

	"bookmarkhub/internal/service"

	"github.com/gin-gonic/gin"
)

const errListPublic = "failed to load public bookmarks"

// parsePositiveInt reads a positive integer query parameter, falling back to
// def when the parameter is absent or malformed.
func parsePositiveInt(c *gin.Context, key string, def int) int {
	s := c.Query(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// @Summary      List public bookmarks
// @Description  No authentication. Filters: q (case-sensitive substring over title or description), userId (owner). Filters combine with AND. Pages are 1-based.
// @Tags         public
// @Produce      json
// @Param        q       query   string  false  "Keyword"
// @Param        userId  query   string  false  "Owner id"
// @Param        page    query   int     false  "Page (1-based)"  default(1)
// @Param        limit   query   int     false  "Page size"       default(20)
// @Success      200     {object}  map[string]interface{}  "bookmarks, pagination"
// @Failure      500     {object}  map[string]string
// @Router       /api/public/bookmarks [get]
func (h *Handler) listPublicBookmarks(c *gin.Context) {
	query := service.PublicQuery{
		Query:   c.Query("q"),
		OwnerID: c.Query("userId"),
		Page:    parsePositiveInt(c, "page", 1),
		Limit:   parsePositiveInt(c, "limit", 0), // 0 → service default
	}

	bookmarks, pagination, err := h.services.PublicFeed.List(c.Request.Context(), query)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPublic, "public_list_failed", err,
			"q", query.Query, "userId", query.OwnerID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookmarks":  bookmarks,
		"pagination": pagination,
	})
}
