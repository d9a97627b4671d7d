package service

import (
	"context"
	"errors"

	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/model"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"

	"gorm.io/gorm"
)

// LeadService captures and looks up the passwordless customer identity.
// "Login" is just a phone lookup; the client keeps the returned lead as its
// only session state.
type LeadService interface {
	Register(ctx context.Context, req dto.RegisterLeadRequest) (*dto.LeadResponse, error)
	Login(ctx context.Context, req dto.LoginLeadRequest) (*dto.LeadResponse, error)
	List(ctx context.Context) ([]dto.LeadResponse, error)
	Get(ctx context.Context, id int) (*dto.LeadResponse, error)
}

type leadService struct {
	repo repository.LeadRepository
}

func NewLeadService(repo repository.LeadRepository) LeadService {
	return &leadService{repo: repo}
}

func mapLead(l model.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Phone:     l.Phone,
		CreatedAt: l.CreatedAt,
	}
}

// Register rejects a phone that is already captured. The read-first check
// gives the friendly rejection; the unique index on leads.phone closes the
// race window, and a constraint hit maps to the same ErrPhoneTaken.
func (s *leadService) Register(ctx context.Context, req dto.RegisterLeadRequest) (*dto.LeadResponse, error) {
	existing, err := s.repo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	l := &model.Lead{Name: req.Name, Phone: req.Phone}
	if err := s.repo.Create(ctx, l); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}
	resp := mapLead(*l)
	return &resp, nil
}

func (s *leadService) Login(ctx context.Context, req dto.LoginLeadRequest) (*dto.LeadResponse, error) {
	l, err := s.repo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}
	resp := mapLead(*l)
	return &resp, nil
}

func (s *leadService) List(ctx context.Context) ([]dto.LeadResponse, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		result = append(result, mapLead(l))
	}
	return result, nil
}

func (s *leadService) Get(ctx context.Context, id int) (*dto.LeadResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}
	resp := mapLead(*l)
	return &resp, nil
}
