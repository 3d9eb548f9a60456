package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeController renders the public landing page.
type HomeController struct{}

// NewHomeController creates a new HomeController.
func NewHomeController() *HomeController {
	return &HomeController{}
}

// HomePage renders the landing page. Logged-in visitors see links into
// their collection, anonymous ones get register/login links.
// GET /
func (hc *HomeController) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home", pageData(c, gin.H{
		"Title": "Bookshelf",
	}))
}
