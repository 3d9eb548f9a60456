package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelkov/bookshelf/internal/covers"
	"github.com/avelkov/bookshelf/internal/entities"
)

// DemoController serves the public showcase page with a fixed set of books,
// no account required.
type DemoController struct {
	books []entities.Book
}

// NewDemoController creates a new DemoController.
func NewDemoController() *DemoController {
	return &DemoController{books: demoBooks()}
}

// DemoPage renders the showcase book list.
// GET /demo
func (dc *DemoController) DemoPage(c *gin.Context) {
	c.HTML(http.StatusOK, "demo-books", pageData(c, gin.H{
		"Title":    "Demo",
		"Books":    dc.books,
		"DemoUser": "Demo User",
	}))
}

func demoBooks() []entities.Book {
	mustDate := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			panic(err)
		}
		return &d
	}
	rating := func(r int) *int { return &r }

	return []entities.Book{
		{
			ID:       1,
			Title:    "To Kill a Mockingbird",
			Author:   "Harper Lee",
			Review:   "A classic novel about racial injustice and childhood innocence.",
			Rating:   rating(5),
			DateRead: mustDate("2024-01-15"),
			ISBN:     "9780061120084",
			CoverURL: covers.ResolveCoverURL("9780061120084"),
		},
		{
			ID:       2,
			Title:    "1984",
			Author:   "George Orwell",
			Review:   "A dystopian masterpiece depicting a totalitarian society.",
			Rating:   rating(5),
			DateRead: mustDate("2024-02-20"),
			ISBN:     "9780451524935",
			CoverURL: covers.ResolveCoverURL("9780451524935"),
		},
		{
			ID:       3,
			Title:    "The Great Gatsby",
			Author:   "F. Scott Fitzgerald",
			Review:   "An elegant tale of wealth, love, and the American Dream.",
			Rating:   rating(4),
			DateRead: mustDate("2024-03-10"),
			ISBN:     "9780743273565",
			CoverURL: covers.ResolveCoverURL("9780743273565"),
		},
		{
			ID:       4,
			Title:    "Pride and Prejudice",
			Author:   "Jane Austen",
			Review:   "A timeless romance with witty dialogue and social commentary.",
			Rating:   rating(5),
			DateRead: mustDate("2024-04-05"),
			ISBN:     "9780141439518",
			CoverURL: covers.ResolveCoverURL("9780141439518"),
		},
	}
}
