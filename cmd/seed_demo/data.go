package main

import (
	"time"

	"github.com/avelkov/bookshelf/internal/database/books"
	"github.com/avelkov/bookshelf/internal/database/wishlist"
)

func rating(r int) *int { return &r }

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func demoReadBooks() []books.Fields {
	return []books.Fields{
		{
			Title:    "To Kill a Mockingbird",
			Author:   "Harper Lee",
			Review:   "A classic novel about racial injustice and childhood innocence.",
			Rating:   rating(5),
			DateRead: date("2024-01-15"),
			ISBN:     "9780061120084",
		},
		{
			Title:    "1984",
			Author:   "George Orwell",
			Review:   "A dystopian masterpiece depicting a totalitarian society.",
			Rating:   rating(5),
			DateRead: date("2024-02-20"),
			ISBN:     "9780451524935",
		},
		{
			Title:    "The Great Gatsby",
			Author:   "F. Scott Fitzgerald",
			Review:   "An elegant tale of wealth, love, and the American Dream.",
			Rating:   rating(4),
			DateRead: date("2024-03-10"),
			ISBN:     "9780743273565",
		},
		{
			Title:    "Pride and Prejudice",
			Author:   "Jane Austen",
			Review:   "A timeless romance with witty dialogue and social commentary.",
			Rating:   rating(5),
			DateRead: date("2024-04-05"),
			ISBN:     "9780141439518",
		},
	}
}

func demoWishlist() []wishlist.Fields {
	return []wishlist.Fields{
		{
			Title:  "Brave New World",
			Author: "Aldous Huxley",
			ISBN:   "9780060850524",
			Reason: "Pairs well with 1984.",
		},
		{
			Title:  "Middlemarch",
			Author: "George Eliot",
			ISBN:   "9780141439549",
			Reason: "Keeps coming up in best-novel lists.",
		},
	}
}
