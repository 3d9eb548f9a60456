package entities

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100" json:"username"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Book is a finished read owned by exactly one user.
type Book struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	UserID   uint       `gorm:"index" json:"user_id"`
	Title    string     `gorm:"index;size:512" json:"title"`
	Author   string     `gorm:"index;size:256" json:"author"`
	Review   string     `gorm:"type:text" json:"review,omitempty"`
	Rating   *int       `json:"rating,omitempty"`
	DateRead *time.Time `gorm:"index" json:"date_read,omitempty"`
	ISBN     string     `gorm:"index;size:20" json:"isbn,omitempty"`
	CoverURL string     `gorm:"size:2048" json:"cover_url,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WishlistItem is a book a user intends to read. Promotion copies it into
// the books table and removes it from the wishlist.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Author    string    `gorm:"index;size:256" json:"author"`
	ISBN      string    `gorm:"index;size:20" json:"isbn,omitempty"`
	CoverURL  string    `gorm:"size:2048" json:"cover_url,omitempty"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	AddedDate time.Time `gorm:"index;autoCreateTime" json:"added_date"`

	User User `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
