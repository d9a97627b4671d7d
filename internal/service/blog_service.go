package service

import (
	"context"

	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/model"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"
)

// BlogService exposes the editorial content. Posts may link a product by id;
// the link is advisory and survives product deletion.
type BlogService interface {
	List(ctx context.Context, filter dto.BlogPostFilter) (*dto.BlogListResponse, error)
	Get(ctx context.Context, id int) (*dto.BlogPostResponse, error)
	Create(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	Delete(ctx context.Context, id int) error
}

type blogService struct {
	repo repository.BlogPostRepository
}

func NewBlogService(repo repository.BlogPostRepository) BlogService {
	return &blogService{repo: repo}
}

func mapBlogPost(p model.BlogPost) dto.BlogPostResponse {
	return dto.BlogPostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Image:     p.Image,
		ProductID: p.ProductID,
		CreatedAt: p.CreatedAt,
	}
}

func (s *blogService) List(ctx context.Context, filter dto.BlogPostFilter) (*dto.BlogListResponse, error) {
	posts, total, err := s.repo.List(ctx, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.BlogListResponse{
		Posts: make([]dto.BlogPostResponse, 0, len(posts)),
		Total: total,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, mapBlogPost(p))
	}
	return resp, nil
}

func (s *blogService) Get(ctx context.Context, id int) (*dto.BlogPostResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	resp := mapBlogPost(*p)
	return &resp, nil
}

func (s *blogService) Create(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	p := &model.BlogPost{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		ProductID: req.ProductID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapBlogPost(*p)
	return &resp, nil
}

func (s *blogService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
