package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/tasks"
)

// BooksController handles the read-books collection pages.
type BooksController struct {
	store      BookStore
	auditor    *audit.Service
	taskClient *tasks.Client
}

// NewBooksController creates a new BooksController. The task client is
// optional; without it covers are fetched lazily on first view.
func NewBooksController(store BookStore, auditor *audit.Service, taskClient *tasks.Client) *BooksController {
	return &BooksController{
		store:      store,
		auditor:    auditor,
		taskClient: taskClient,
	}
}

// ListBooks renders the user's book collection, most recently read first.
// GET /books
func (bc *BooksController) ListBooks(c *gin.Context) {
	userID := GetUserID(c)

	bookList, err := bc.store.ListBooks(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error fetching books")
		return
	}

	c.HTML(http.StatusOK, "books", pageData(c, gin.H{
		"Title": "My Books",
		"Books": bookList,
	}))
}

// NewBookForm renders the empty add-book form.
// GET /books/new
func (bc *BooksController) NewBookForm(c *gin.Context) {
	c.HTML(http.StatusOK, "book-form", pageData(c, gin.H{
		"Title": "Add Book",
		"Book":  nil,
	}))
}

// CreateBook adds a book to the user's collection.
// POST /books
func (bc *BooksController) CreateBook(c *gin.Context) {
	userID := GetUserID(c)
	fields := bookFieldsFromForm(c)

	book, err := bc.store.CreateBook(userID, fields)
	if err != nil {
		bc.auditor.LogBook(userID, "book_create", 0, fields.Title, err)
		c.String(http.StatusInternalServerError, "Error adding book")
		return
	}

	bc.auditor.LogBook(userID, "book_create", book.ID, book.Title, nil)
	bc.prefetchCover(book.ID, book.CoverURL)
	c.Redirect(http.StatusFound, "/books")
}

// EditBookForm renders the edit form pre-filled with the book's fields.
// GET /books/:id/edit
func (bc *BooksController) EditBookForm(c *gin.Context) {
	userID := GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBook(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book")
		return
	}

	c.HTML(http.StatusOK, "book-form", pageData(c, gin.H{
		"Title": "Edit Book",
		"Book":  book,
	}))
}

// UpdateBook overwrites all user-editable fields of a book.
// POST /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	userID := GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fields := bookFieldsFromForm(c)

	book, err := bc.store.UpdateBook(userID, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}
		bc.auditor.LogBook(userID, "book_update", id, fields.Title, err)
		c.String(http.StatusInternalServerError, "Error updating book")
		return
	}

	bc.auditor.LogBook(userID, "book_update", book.ID, book.Title, nil)
	bc.prefetchCover(book.ID, book.CoverURL)
	c.Redirect(http.StatusFound, "/books")
}

// DeleteBook removes a book from the user's collection. Deleting a book
// that doesn't exist (or isn't yours) is a no-op.
// POST /books/:id/delete
func (bc *BooksController) DeleteBook(c *gin.Context) {
	userID := GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBook(userID, id); err != nil {
		bc.auditor.LogBook(userID, "book_delete", id, "", err)
		c.String(http.StatusInternalServerError, "Error deleting book")
		return
	}

	bc.auditor.LogBook(userID, "book_delete", id, "", nil)
	c.Redirect(http.StatusFound, "/books")
}

func (bc *BooksController) prefetchCover(bookID uint, coverURL string) {
	if bc.taskClient == nil || coverURL == "" {
		return
	}
	_, _ = bc.taskClient.Add(tasks.PrefetchCoverTask{BookID: bookID, CoverURL: coverURL}).Save()
}

func bookFieldsFromForm(c *gin.Context) books.Fields {
	return books.Fields{
		Title:    c.PostForm("title"),
		Author:   c.PostForm("author"),
		Review:   c.PostForm("review"),
		Rating:   parseOptionalRating(c.PostForm("rating")),
		DateRead: parseOptionalDate(c.PostForm("date_read")),
		ISBN:     c.PostForm("isbn"),
	}
}
