package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
	"github.com/avelkov/bookshelf/internal/tasks"
)

// WishlistController handles the wishlist pages.
type WishlistController struct {
	store      WishlistStore
	auditor    *audit.Service
	taskClient *tasks.Client
}

// NewWishlistController creates a new WishlistController.
func NewWishlistController(store WishlistStore, auditor *audit.Service, taskClient *tasks.Client) *WishlistController {
	return &WishlistController{
		store:      store,
		auditor:    auditor,
		taskClient: taskClient,
	}
}

// ListItems renders the user's wishlist, most recently added first.
// GET /wishlist
func (wc *WishlistController) ListItems(c *gin.Context) {
	userID := GetUserID(c)

	items, err := wc.store.ListItems(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error fetching wishlist")
		return
	}

	c.HTML(http.StatusOK, "wishlist", pageData(c, gin.H{
		"Title":         "My Wishlist",
		"WishlistItems": items,
	}))
}

// NewItemForm renders the empty add-to-wishlist form.
// GET /wishlist/new
func (wc *WishlistController) NewItemForm(c *gin.Context) {
	c.HTML(http.StatusOK, "wishlist-form", pageData(c, gin.H{
		"Title": "Add to Wishlist",
	}))
}

// CreateItem adds a book to the user's wishlist.
// POST /wishlist
func (wc *WishlistController) CreateItem(c *gin.Context) {
	userID := GetUserID(c)
	fields := wishlist.Fields{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
		ISBN:   c.PostForm("isbn"),
		Reason: c.PostForm("reason"),
	}

	item, err := wc.store.CreateItem(userID, fields)
	if err != nil {
		wc.auditor.LogWishlist(userID, "wishlist_add", 0, fields.Title, err)
		c.String(http.StatusInternalServerError, "Error adding book to wishlist")
		return
	}

	wc.auditor.LogWishlist(userID, "wishlist_add", item.ID, item.Title, nil)
	c.Redirect(http.StatusFound, "/wishlist")
}

// PromoteItem moves a wishlist item into the book collection. The new book
// starts without a rating, review or read date; the item disappears from
// the wishlist in the same transaction.
// POST /wishlist/:id/read
func (wc *WishlistController) PromoteItem(c *gin.Context) {
	userID := GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := wc.store.PromoteItem(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Item not found")
			return
		}
		wc.auditor.LogWishlist(userID, "wishlist_promote", id, "", err)
		c.String(http.StatusInternalServerError, "Error moving book to library")
		return
	}

	wc.auditor.LogWishlist(userID, "wishlist_promote", id, book.Title, nil)
	if wc.taskClient != nil && book.CoverURL != "" {
		_, _ = wc.taskClient.Add(tasks.PrefetchCoverTask{BookID: book.ID, CoverURL: book.CoverURL}).Save()
	}
	c.Redirect(http.StatusFound, "/wishlist")
}

// DeleteItem removes a wishlist item. Missing or foreign items are a no-op.
// POST /wishlist/:id/delete
func (wc *WishlistController) DeleteItem(c *gin.Context) {
	userID := GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := wc.store.DeleteItem(userID, id); err != nil {
		wc.auditor.LogWishlist(userID, "wishlist_delete", id, "", err)
		c.String(http.StatusInternalServerError, "Error deleting wishlist item")
		return
	}

	wc.auditor.LogWishlist(userID, "wishlist_delete", id, "", nil)
	c.Redirect(http.StatusFound, "/wishlist")
}
