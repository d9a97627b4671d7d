package service

import (
	"context"
	"fmt"

	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/model"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService owns catalog business rules: decimal price parsing,
// creation defaults and the partial-patch merge.
type ProductService interface {
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id int) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
		Category:    p.Category,
		Notes:       p.Notes,
		Stock:       p.Stock,
		IsPromotion: p.IsPromotion,
	}
	if p.PromoPrice != nil {
		promo := p.PromoPrice.StringFixed(2)
		resp.PromoPrice = &promo
	}
	return resp
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a decimal string", ErrInvalid, field)
	}
	return d, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter.Category)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Get(ctx context.Context, id int) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price, err := parsePrice("price", req.Price)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:     req.Name,
		Brand:    req.Brand,
		Price:    price,
		Image:    req.Image,
		Category: req.Category,
		Notes:    req.Notes,
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsPromotion != nil {
		p.IsPromotion = *req.IsPromotion
	}
	if req.PromoPrice != nil {
		promo, err := parsePrice("promoPrice", *req.PromoPrice)
		if err != nil {
			return nil, err
		}
		p.PromoPrice = &promo
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.Price != nil {
		price, err := parsePrice("price", *req.Price)
		if err != nil {
			return nil, err
		}
		p.Price = price
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsPromotion != nil {
		p.IsPromotion = *req.IsPromotion
	}
	if req.PromoPrice != nil {
		promo, err := parsePrice("promoPrice", *req.PromoPrice)
		if err != nil {
			return nil, err
		}
		p.PromoPrice = &promo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
