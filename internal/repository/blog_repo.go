package repository

import (
	"context"
	"errors"

	"github.com/waltinho0807/perfumariaCalegari/internal/model"

	"gorm.io/gorm"
)

// BlogPostRepository persists editorial posts. Listing is always paginated
// and newest-first; id breaks ties between posts created in the same tick.
type BlogPostRepository interface {
	List(ctx context.Context, page, limit int) ([]model.BlogPost, int64, error)
	FindByID(ctx context.Context, id int) (*model.BlogPost, error)
	Create(ctx context.Context, p *model.BlogPost) error
	Delete(ctx context.Context, id int) (bool, error)
}

type blogRepo struct{ db *gorm.DB }

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository { return &blogRepo{db: db} }

func (r *blogRepo) List(ctx context.Context, page, limit int) ([]model.BlogPost, int64, error) {
	var posts []model.BlogPost
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.BlogPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

func (r *blogRepo) FindByID(ctx context.Context, id int) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogRepo) Create(ctx context.Context, p *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *blogRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.BlogPost{}, id)
	return res.RowsAffected > 0, res.Error
}
