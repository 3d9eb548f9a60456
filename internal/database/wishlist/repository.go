// Package wishlist provides database operations for a user's wishlist,
// including the promotion of wishlist items into the books table.
package wishlist

import (
	"gorm.io/gorm"

	"github.com/avelkov/bookshelf/internal/covers"
	"github.com/avelkov/bookshelf/internal/entities"
)

// Fields carries the user-editable attributes of a wishlist item.
type Fields struct {
	Title  string
	Author string
	ISBN   string
	Reason string
}

// Repository handles all wishlist database operations, owner-scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new wishlist repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListItems returns the user's wishlist, most recently added first.
func (r *Repository) ListItems(userID uint) ([]entities.WishlistItem, error) {
	var items []entities.WishlistItem
	err := r.db.Where("user_id = ?", userID).
		Order("added_date DESC, id DESC").
		Find(&items).Error
	return items, err
}

// GetItem retrieves a single wishlist item owned by the user.
// Returns gorm.ErrRecordNotFound for missing or foreign-owned ids.
func (r *Repository) GetItem(userID, id uint) (*entities.WishlistItem, error) {
	var item entities.WishlistItem
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new wishlist item for the user. The added date is
// assigned by the server and the cover URL derived from the ISBN.
func (r *Repository) CreateItem(userID uint, fields Fields) (*entities.WishlistItem, error) {
	item := &entities.WishlistItem{
		UserID:   userID,
		Title:    fields.Title,
		Author:   fields.Author,
		ISBN:     fields.ISBN,
		CoverURL: covers.ResolveCoverURL(fields.ISBN),
		Reason:   fields.Reason,
	}

	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes a wishlist item owned by the user. Deleting a missing
// or foreign-owned id is a no-op, not an error.
func (r *Repository) DeleteItem(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&entities.WishlistItem{}, id).Error
}

// PromoteItem marks a wishlist item as read: it inserts a book copying the
// item's title, author, ISBN and cover URL, and removes the item. Both
// mutations run in one transaction, so a failure leaves the item promotable
// and never yields a duplicate or a lost book.
// Returns gorm.ErrRecordNotFound for missing or foreign-owned ids.
func (r *Repository) PromoteItem(userID, id uint) (*entities.Book, error) {
	var book *entities.Book

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item entities.WishlistItem
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
			return err
		}

		book = &entities.Book{
			UserID:   userID,
			Title:    item.Title,
			Author:   item.Author,
			ISBN:     item.ISBN,
			CoverURL: item.CoverURL,
		}
		if err := tx.Create(book).Error; err != nil {
			return err
		}

		return tx.Delete(&entities.WishlistItem{}, item.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}
