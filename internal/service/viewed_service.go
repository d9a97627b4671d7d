package service

import (
	"context"
	"errors"
	"time"

	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/model"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"

	"gorm.io/gorm"
)

// ViewedProductService maintains per-lead wishlists. Add is idempotent: the
// same (lead, product) pair always resolves to the same record.
type ViewedProductService interface {
	Add(ctx context.Context, req dto.AddViewedProductRequest) (*dto.ViewedProductResponse, error)
	ListProducts(ctx context.Context, leadID int) ([]dto.ProductResponse, error)
	Remove(ctx context.Context, leadID, productID int) error
}

type viewedService struct {
	viewed   repository.ViewedProductRepository
	products repository.ProductRepository
}

func NewViewedProductService(viewed repository.ViewedProductRepository, products repository.ProductRepository) ViewedProductService {
	return &viewedService{viewed: viewed, products: products}
}

func mapViewed(v model.ViewedProduct) dto.ViewedProductResponse {
	return dto.ViewedProductResponse{
		ID:        v.ID,
		LeadID:    v.LeadID,
		ProductID: v.ProductID,
		ViewedAt:  v.ViewedAt,
	}
}

// Add returns the stored pair, inserting it when absent. A duplicate-key
// failure means another request inserted the pair between our lookup and
// insert; the existing record wins either way.
func (s *viewedService) Add(ctx context.Context, req dto.AddViewedProductRequest) (*dto.ViewedProductResponse, error) {
	existing, err := s.viewed.FindPair(ctx, req.LeadID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		resp := mapViewed(*existing)
		return &resp, nil
	}

	v := &model.ViewedProduct{
		LeadID:    req.LeadID,
		ProductID: req.ProductID,
		ViewedAt:  time.Now(),
	}
	if err := s.viewed.Create(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			raced, ferr := s.viewed.FindPair(ctx, req.LeadID, req.ProductID)
			if ferr != nil {
				return nil, ferr
			}
			if raced != nil {
				resp := mapViewed(*raced)
				return &resp, nil
			}
		}
		return nil, err
	}
	resp := mapViewed(*v)
	return &resp, nil
}

// ListProducts resolves the wishlist to full products, silently dropping
// pairs whose product has since been deleted from the catalog.
func (s *viewedService) ListProducts(ctx context.Context, leadID int) ([]dto.ProductResponse, error) {
	viewed, err := s.viewed.ListByLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(viewed))
	for _, v := range viewed {
		p, err := s.products.FindByID(ctx, v.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		result = append(result, mapProduct(*p))
	}
	return result, nil
}

func (s *viewedService) Remove(ctx context.Context, leadID, productID int) error {
	deleted, err := s.viewed.DeletePair(ctx, leadID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
