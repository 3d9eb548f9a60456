// Package interfaces documents the core abstractions used throughout the
// application and holds their compile-time implementation checks.
//
// # Data Access Interfaces
//
//   - BookStore: owner-scoped book collection access (internal/http/stores.go)
//   - WishlistStore: owner-scoped wishlist access (internal/http/stores.go)
//
// The concrete implementations are the gorm repositories under
// internal/database.
//
// # Background Work Interfaces
//
//   - CoverFetcher: downloads cover images into the local cache
//     (internal/tasks/prefetch_cover.go)
//   - AuditEventCleaner: prunes old audit trail entries
//     (internal/tasks/cleanup_audit.go)
//
// # Adding a New Database Domain
//
// To add a new data domain:
//
//  1. Create a sub-package: internal/database/<domain>/
//
//  2. Define the repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the operations a controller needs as an interface in
//     internal/http/stores.go
//
//  4. Add a compile-time check to checks.go:
//
//     var _ SomeStore = (*Repository)(nil)
//
// Compile-time checks catch missing methods at build time rather than at
// runtime. See checks.go for the current set.
package interfaces
