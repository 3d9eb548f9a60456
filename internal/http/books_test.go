package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/auth"
	"github.com/avelkov/bookshelf/internal/database"
	dbaudit "github.com/avelkov/bookshelf/internal/database/audit"
	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
)

const testTemplates = `
{{define "home"}}home {{.Username}}{{end}}
{{define "books"}}books:{{range .Books}}[{{.Title}}]{{end}}{{end}}
{{define "book-form"}}book-form{{end}}
{{define "wishlist"}}wishlist:{{range .WishlistItems}}[{{.Title}}]{{end}}{{end}}
{{define "wishlist-form"}}wishlist-form{{end}}
{{define "demo-books"}}demo:{{range .Books}}[{{.Title}}]{{end}}{{end}}
{{define "login"}}login{{end}}
{{define "register"}}register{{end}}
`

// fakeAuth injects a fixed user into the request context, standing in for
// the session middleware.
func fakeAuth(userID uint, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, userID)
		c.Set(auth.ContextKeyUsername, username)
		c.Next()
	}
}

type testEnv struct {
	db       *database.Database
	books    *books.Repository
	wishlist *wishlist.Repository
	auditor  *audit.Service
	router   *gin.Engine
}

func setupControllerTest(t *testing.T, userID uint) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	env := &testEnv{
		db:       db,
		books:    books.NewRepository(db.DB),
		wishlist: wishlist.NewRepository(db.DB),
		auditor:  audit.NewService(dbaudit.NewRepository(db.DB)),
	}

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	router.Use(fakeAuth(userID, "alice"))

	bc := NewBooksController(env.books, env.auditor, nil)
	router.GET("/books", bc.ListBooks)
	router.GET("/books/new", bc.NewBookForm)
	router.POST("/books", bc.CreateBook)
	router.GET("/books/:id/edit", bc.EditBookForm)
	router.POST("/books/:id", bc.UpdateBook)
	router.POST("/books/:id/delete", bc.DeleteBook)

	wc := NewWishlistController(env.wishlist, env.auditor, nil)
	router.GET("/wishlist", wc.ListItems)
	router.GET("/wishlist/new", wc.NewItemForm)
	router.POST("/wishlist", wc.CreateItem)
	router.POST("/wishlist/:id/read", wc.PromoteItem)
	router.POST("/wishlist/:id/delete", wc.DeleteItem)

	env.router = router

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return env, cleanup
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestBooksController_CreateBook(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	w := postForm(env.router, "/books", url.Values{
		"title":     {"Dune"},
		"author":    {"Frank Herbert"},
		"review":    {"Spice and sand."},
		"rating":    {"5"},
		"date_read": {"2024-03-10"},
		"isbn":      {"9780441013593"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/books", w.Header().Get("Location"))

	bookList, err := env.books.ListBooks(1)
	require.NoError(t, err)
	require.Len(t, bookList, 1)
	assert.Equal(t, "Dune", bookList[0].Title)
	require.NotNil(t, bookList[0].Rating)
	assert.Equal(t, 5, *bookList[0].Rating)
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780441013593-L.jpg", bookList[0].CoverURL)
}

func TestBooksController_CreateBookOptionalFields(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	w := postForm(env.router, "/books", url.Values{
		"title":  {"Untitled Draft"},
		"author": {"Anonymous"},
	})

	assert.Equal(t, http.StatusFound, w.Code)

	bookList, err := env.books.ListBooks(1)
	require.NoError(t, err)
	require.Len(t, bookList, 1)
	assert.Nil(t, bookList[0].Rating)
	assert.Nil(t, bookList[0].DateRead)
	assert.Empty(t, bookList[0].CoverURL)
}

func TestBooksController_ListBooks(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	_, err := env.books.CreateBook(1, books.Fields{Title: "Mine", Author: "Me"})
	require.NoError(t, err)
	_, err = env.books.CreateBook(2, books.Fields{Title: "Theirs", Author: "Them"})
	require.NoError(t, err)

	w := get(env.router, "/books")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[Mine]")
	assert.NotContains(t, w.Body.String(), "[Theirs]")
}

func TestBooksController_UpdateBook(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	book, err := env.books.CreateBook(1, books.Fields{Title: "Old Title", Author: "A", ISBN: "9780061120084"})
	require.NoError(t, err)

	w := postForm(env.router, "/books/"+itoa(book.ID), url.Values{
		"title":  {"New Title"},
		"author": {"A"},
	})

	assert.Equal(t, http.StatusFound, w.Code)

	updated, err := env.books.GetBook(1, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	// Clearing the ISBN clears the cover too
	assert.Empty(t, updated.ISBN)
	assert.Empty(t, updated.CoverURL)
}

func TestBooksController_UpdateForeignBookNotFound(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	book, err := env.books.CreateBook(2, books.Fields{Title: "Theirs", Author: "Them"})
	require.NoError(t, err)

	w := postForm(env.router, "/books/"+itoa(book.ID), url.Values{
		"title": {"Hijacked"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	untouched, err := env.books.GetBook(2, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Theirs", untouched.Title)
}

func TestBooksController_DeleteBook(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	book, err := env.books.CreateBook(1, books.Fields{Title: "Doomed", Author: "A"})
	require.NoError(t, err)

	w := postForm(env.router, "/books/"+itoa(book.ID)+"/delete", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	bookList, err := env.books.ListBooks(1)
	require.NoError(t, err)
	assert.Empty(t, bookList)
}

func TestBooksController_DeleteForeignBookIsNoop(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	book, err := env.books.CreateBook(2, books.Fields{Title: "Theirs", Author: "Them"})
	require.NoError(t, err)

	w := postForm(env.router, "/books/"+itoa(book.ID)+"/delete", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	remaining, err := env.books.ListBooks(2)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestBooksController_InvalidID(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	w := get(env.router, "/books/abc/edit")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
