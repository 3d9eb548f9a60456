// Command seed_demo creates a database with a demo account and sample data,
// useful for local development and screenshots.
// Usage: go run cmd/seed_demo/main.go [-db path/to/bookshelf.db]
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/avelkov/bookshelf/internal/auth"
	"github.com/avelkov/bookshelf/internal/config"
	"github.com/avelkov/bookshelf/internal/database"
	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
)

const (
	demoUsername = "demo"
	demoPassword = "demo-password"
)

func main() {
	dbPath := flag.String("db", "./demo-bookshelf.db", "path to the database file")
	flag.Parse()

	log.Printf("Seeding demo database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	authService := auth.NewService(db.DB, config.Auth{BcryptCost: bcrypt.DefaultCost})
	user, err := authService.Register(demoUsername, demoPassword)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created user %q (password %q)", demoUsername, demoPassword)

	bookRepo := books.NewRepository(db.DB)
	for _, fields := range demoReadBooks() {
		book, err := bookRepo.CreateBook(user.ID, fields)
		if err != nil {
			log.Printf("Failed to save book %s: %v", fields.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", book.Title, book.Author)
	}

	wishlistRepo := wishlist.NewRepository(db.DB)
	for _, fields := range demoWishlist() {
		item, err := wishlistRepo.CreateItem(user.ID, fields)
		if err != nil {
			log.Printf("Failed to save wishlist item %s: %v", fields.Title, err)
			continue
		}
		log.Printf("Wishlisted: %s by %s", item.Title, item.Author)
	}

	log.Println("Demo database seeded successfully!")
}
