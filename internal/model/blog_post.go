package model

import "time"

// BlogPost is an editorial entry, optionally linked to a product. The link is
// a plain id: deleting the product leaves the post intact with a dangling
// reference that readers resolve to "no product".
type BlogPost struct {
	ID        int       `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	Excerpt   string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	Image     string    `gorm:"not null"`
	ProductID *int      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

func (BlogPost) TableName() string { return "blog_posts" }
