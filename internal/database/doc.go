// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── books/           # Read-books CRUD operations
//	├── wishlist/        # Wishlist CRUD and promotion into books
//	└── audit/           # Audit event trail
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookshelf.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	wishlistRepo := wishlist.NewRepository(db.DB)
//
//	// Use repositories
//	owned, err := booksRepo.ListBooks(userID)
//
// Every book and wishlist operation takes the owning user's ID and only
// touches rows belonging to that user.
package database
