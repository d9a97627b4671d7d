package repository

import (
	"context"
	"errors"

	"github.com/waltinho0807/perfumariaCalegari/internal/model"

	"gorm.io/gorm"
)

// ViewedProductRepository stores wishlist pairs. The (lead_id, product_id)
// unique index makes Create fail on a duplicate pair; callers look the pair
// up first and treat a constraint hit on the race as "already exists".
type ViewedProductRepository interface {
	FindPair(ctx context.Context, leadID, productID int) (*model.ViewedProduct, error)
	Create(ctx context.Context, v *model.ViewedProduct) error
	ListByLead(ctx context.Context, leadID int) ([]model.ViewedProduct, error)
	// DeletePair reports whether the pair existed and was removed.
	DeletePair(ctx context.Context, leadID, productID int) (bool, error)
}

type viewedRepo struct{ db *gorm.DB }

func NewViewedProductRepository(db *gorm.DB) ViewedProductRepository { return &viewedRepo{db: db} }

func (r *viewedRepo) FindPair(ctx context.Context, leadID, productID int) (*model.ViewedProduct, error) {
	var v model.ViewedProduct
	err := r.db.WithContext(ctx).
		Where("lead_id = ? AND product_id = ?", leadID, productID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *viewedRepo) Create(ctx context.Context, v *model.ViewedProduct) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *viewedRepo) ListByLead(ctx context.Context, leadID int) ([]model.ViewedProduct, error) {
	var viewed []model.ViewedProduct
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("viewed_at DESC, id DESC").
		Find(&viewed).Error
	return viewed, err
}

func (r *viewedRepo) DeletePair(ctx context.Context, leadID, productID int) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("lead_id = ? AND product_id = ?", leadID, productID).
		Delete(&model.ViewedProduct{})
	return res.RowsAffected > 0, res.Error
}
