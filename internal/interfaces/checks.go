package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/avelkov/bookshelf/internal/audit"
	"github.com/avelkov/bookshelf/internal/covers"
	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
	"github.com/avelkov/bookshelf/internal/http"
	"github.com/avelkov/bookshelf/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)

// WishlistStore implementations
var _ http.WishlistStore = (*wishlist.Repository)(nil)

// =============================================================================
// Background Work
// =============================================================================

// CoverFetcher implementations
var _ tasks.CoverFetcher = (*covers.Cache)(nil)

// AuditEventCleaner implementations
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
