package dto

import "time"

type CreateBlogPostRequest struct {
	Title     string `json:"title"   validate:"required,min=1"`
	Excerpt   string `json:"excerpt" validate:"required,min=1"`
	Content   string `json:"content" validate:"required,min=1"`
	Image     string `json:"image"   validate:"required,min=1"`
	ProductID *int   `json:"productId"`
}

// BlogPostFilter carries pagination; zero values are filled in by the
// handler (page 1, configured default limit).
type BlogPostFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type BlogPostResponse struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	ProductID *int      `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogListResponse is the paginated listing envelope. The listing is always
// newest-first.
type BlogListResponse struct {
	Posts []BlogPostResponse `json:"posts"`
	Total int64              `json:"total"`
}
