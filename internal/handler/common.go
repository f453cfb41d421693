package handler

import (
	"net/http"
	"strconv"

	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user set by AuthMiddleware; replies 401 and
// returns false when it is missing.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return nil, false
	}
	return user, true
}

// formatCents renders cents as a two-decimal string for API responses.
func formatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100.0, 'f', 2, 64)
}

// pageParams reads page / page_size query parameters with sane bounds.
func pageParams(c *gin.Context, defaultSize int) (page, size, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if size <= 0 || size > 100 {
		size = defaultSize
	}
	return page, size, (page - 1) * size
}
