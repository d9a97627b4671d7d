package repository

import (
	"context"
	"errors"

	"github.com/waltinho0807/perfumariaCalegari/internal/model"

	"gorm.io/gorm"
)

// LeadRepository persists captured customer identities. Leads are insert-only
// through the public surface; there is no update or delete.
type LeadRepository interface {
	Create(ctx context.Context, l *model.Lead) error
	FindByID(ctx context.Context, id int) (*model.Lead, error)
	FindByPhone(ctx context.Context, phone string) (*model.Lead, error)
	List(ctx context.Context) ([]model.Lead, error)
}

type leadRepo struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) LeadRepository { return &leadRepo{db: db} }

func (r *leadRepo) Create(ctx context.Context, l *model.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leadRepo) FindByID(ctx context.Context, id int) (*model.Lead, error) {
	var l model.Lead
	err := r.db.WithContext(ctx).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leadRepo) FindByPhone(ctx context.Context, phone string) (*model.Lead, error) {
	var l model.Lead
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leadRepo) List(ctx context.Context) ([]model.Lead, error) {
	var leads []model.Lead
	err := r.db.WithContext(ctx).Order("id ASC").Find(&leads).Error
	return leads, err
}
