// Package books provides database operations for a user's read books.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	owned, err := repo.ListBooks(userID)
package books

import (
	"time"

	"gorm.io/gorm"

	"github.com/avelkov/bookshelf/internal/covers"
	"github.com/avelkov/bookshelf/internal/entities"
)

// Fields carries the user-editable attributes of a book. The cover URL is
// never supplied by callers; it is derived from the ISBN on every write.
type Fields struct {
	Title    string
	Author   string
	Review   string
	Rating   *int
	DateRead *time.Time
	ISBN     string
}

// Repository handles all book database operations. Every method is scoped
// to the owning user; rows belonging to other users are invisible.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks returns the user's books, most recently read first. Books
// without a read date sort last; the id tiebreaker keeps the order stable.
func (r *Repository) ListBooks(userID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("user_id = ?", userID).
		Order("date_read DESC, id DESC").
		Find(&books).Error
	return books, err
}

// GetBook retrieves a single book owned by the user.
// Returns gorm.ErrRecordNotFound for missing or foreign-owned ids.
func (r *Repository) GetBook(userID, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook inserts a new book for the user, deriving the cover URL from
// the supplied ISBN.
func (r *Repository) CreateBook(userID uint, fields Fields) (*entities.Book, error) {
	book := &entities.Book{
		UserID:   userID,
		Title:    fields.Title,
		Author:   fields.Author,
		Review:   fields.Review,
		Rating:   fields.Rating,
		DateRead: fields.DateRead,
		ISBN:     fields.ISBN,
		CoverURL: covers.ResolveCoverURL(fields.ISBN),
	}

	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}

	return book, nil
}

// UpdateBook replaces the editable fields of a book owned by the user and
// re-derives the cover URL from the (possibly changed) ISBN.
// Returns gorm.ErrRecordNotFound for missing or foreign-owned ids.
func (r *Repository) UpdateBook(userID, id uint, fields Fields) (*entities.Book, error) {
	book, err := r.GetBook(userID, id)
	if err != nil {
		return nil, err
	}

	book.Title = fields.Title
	book.Author = fields.Author
	book.Review = fields.Review
	book.Rating = fields.Rating
	book.DateRead = fields.DateRead
	book.ISBN = fields.ISBN
	book.CoverURL = covers.ResolveCoverURL(fields.ISBN)

	// Select lists the columns explicitly so a cleared rating or read date
	// is written back as NULL instead of being skipped.
	err = r.db.Model(book).
		Select("title", "author", "review", "rating", "date_read", "isbn", "cover_url").
		Updates(book).Error
	if err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook removes a book owned by the user. Deleting a missing or
// foreign-owned id is a no-op, not an error.
func (r *Repository) DeleteBook(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&entities.Book{}, id).Error
}
