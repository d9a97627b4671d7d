package repository

import "gorm.io/gorm"

// Repositories bundles the four per-entity contracts so the router and tests
// can swap the whole storage layer at once (postgres in production, the
// in-memory store in tests and DATABASE_URL-less development).
type Repositories struct {
	Products ProductRepository
	Leads    LeadRepository
	Viewed   ViewedProductRepository
	Blog     BlogPostRepository
}

// NewGorm builds the relational implementation on a shared gorm handle.
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Products: NewProductRepository(db),
		Leads:    NewLeadRepository(db),
		Viewed:   NewViewedProductRepository(db),
		Blog:     NewBlogPostRepository(db),
	}
}
