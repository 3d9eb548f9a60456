package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkov/bookshelf/internal/database/wishlist"
)

func TestWishlistController_CreateItem(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	w := postForm(env.router, "/wishlist", url.Values{
		"title":  {"Anathem"},
		"author": {"Neal Stephenson"},
		"isbn":   {"9780061474095"},
		"reason": {"Recommended by a friend"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/wishlist", w.Header().Get("Location"))

	items, err := env.wishlist.ListItems(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Anathem", items[0].Title)
	assert.Equal(t, "Recommended by a friend", items[0].Reason)
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780061474095-L.jpg", items[0].CoverURL)
	assert.False(t, items[0].AddedDate.IsZero())
}

func TestWishlistController_ListItemsOwnerScoped(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	_, err := env.wishlist.CreateItem(1, wishlist.Fields{Title: "Mine", Author: "Me"})
	require.NoError(t, err)
	_, err = env.wishlist.CreateItem(2, wishlist.Fields{Title: "Theirs", Author: "Them"})
	require.NoError(t, err)

	w := get(env.router, "/wishlist")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[Mine]")
	assert.NotContains(t, w.Body.String(), "[Theirs]")
}

func TestWishlistController_PromoteItem(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	item, err := env.wishlist.CreateItem(1, wishlist.Fields{
		Title:  "Anathem",
		Author: "Neal Stephenson",
		ISBN:   "9780061474095",
	})
	require.NoError(t, err)

	w := postForm(env.router, "/wishlist/"+itoa(item.ID)+"/read", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/wishlist", w.Header().Get("Location"))

	// Item left the wishlist
	items, err := env.wishlist.ListItems(1)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Book arrived, unrated and unread
	bookList, err := env.books.ListBooks(1)
	require.NoError(t, err)
	require.Len(t, bookList, 1)
	assert.Equal(t, "Anathem", bookList[0].Title)
	assert.Equal(t, "9780061474095", bookList[0].ISBN)
	assert.Nil(t, bookList[0].Rating)
	assert.Nil(t, bookList[0].DateRead)
}

func TestWishlistController_PromoteMissingItem(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	w := postForm(env.router, "/wishlist/9999/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Item not found")
}

func TestWishlistController_PromoteForeignItem(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	item, err := env.wishlist.CreateItem(2, wishlist.Fields{Title: "Theirs", Author: "Them"})
	require.NoError(t, err)

	w := postForm(env.router, "/wishlist/"+itoa(item.ID)+"/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The other user's wishlist is untouched and no book appeared anywhere
	items, err := env.wishlist.ListItems(2)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	bookList, err := env.books.ListBooks(1)
	require.NoError(t, err)
	assert.Empty(t, bookList)
}

func TestWishlistController_DeleteItem(t *testing.T) {
	env, cleanup := setupControllerTest(t, 1)
	defer cleanup()

	item, err := env.wishlist.CreateItem(1, wishlist.Fields{Title: "Doomed", Author: "A"})
	require.NoError(t, err)

	w := postForm(env.router, "/wishlist/"+itoa(item.ID)+"/delete", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	items, err := env.wishlist.ListItems(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
