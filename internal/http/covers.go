package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelkov/bookshelf/internal/covers"
)

// CoversController serves cached book cover images.
type CoversController struct {
	cache *covers.Cache
	store BookStore
}

// NewCoversController creates a new CoversController.
func NewCoversController(cache *covers.Cache, store BookStore) *CoversController {
	return &CoversController{
		cache: cache,
		store: store,
	}
}

// GetCover serves the cover image for one of the user's books, fetching it
// into the local cache on first access.
// GET /books/:id/cover
func (cc *CoversController) GetCover(c *gin.Context) {
	userID := GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := cc.store.GetBook(userID, id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if book.CoverURL == "" {
		c.Status(http.StatusNotFound)
		return
	}

	cachePath, err := cc.cache.GetCover(book.ID, book.CoverURL)
	if err != nil || cachePath == "" {
		// Fallback: let the browser fetch it from the source
		c.Redirect(http.StatusTemporaryRedirect, book.CoverURL)
		return
	}

	c.File(cachePath)
}
