package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelkov/bookshelf/internal/auth"
)

// GetUserID extracts the authenticated user's ID from the Gin context.
// Returns 0 when no user is authenticated.
func GetUserID(c *gin.Context) uint {
	return auth.GetUserID(c)
}

// GetUsername extracts the authenticated user's name from the Gin context.
func GetUsername(c *gin.Context) string {
	return auth.GetUsername(c)
}

// pageData assembles the template data every page needs, merged with
// page-specific values.
func pageData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Username"] = GetUsername(c)
	data["LoggedIn"] = GetUserID(c) != 0
	data["CSRFToken"] = auth.GetCSRFToken(c)
	return data
}

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with 400 and returns false on malformed input.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid %s", paramName)
		return 0, false
	}
	return uint(id), true
}

// parseOptionalRating parses a rating form value. An empty value means
// unrated; anything unparsable is treated the same way.
func parseOptionalRating(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	rating, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &rating
}

// parseOptionalDate parses a yyyy-mm-dd form value. Empty or malformed
// values mean no date.
func parseOptionalDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &d
}
