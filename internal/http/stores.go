package http

import (
	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
	"github.com/avelkov/bookshelf/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the operations it actually performs;
// the concrete implementations live under internal/database.

// BookStore provides owner-scoped access to a user's book collection.
type BookStore interface {
	ListBooks(userID uint) ([]entities.Book, error)
	GetBook(userID, id uint) (*entities.Book, error)
	CreateBook(userID uint, fields books.Fields) (*entities.Book, error)
	UpdateBook(userID, id uint, fields books.Fields) (*entities.Book, error)
	DeleteBook(userID, id uint) error
}

// WishlistStore provides owner-scoped access to a user's wishlist.
type WishlistStore interface {
	ListItems(userID uint) ([]entities.WishlistItem, error)
	CreateItem(userID uint, fields wishlist.Fields) (*entities.WishlistItem, error)
	DeleteItem(userID, id uint) error
	PromoteItem(userID, id uint) (*entities.Book, error)
}
