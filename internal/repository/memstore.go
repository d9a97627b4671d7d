package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/waltinho0807/perfumariaCalegari/internal/model"

	"gorm.io/gorm"
)

// memStore is the map-backed storage backend. One mutex serializes every
// operation, so the read-then-insert guards in the services cannot race here.
// Ids are monotonic per entity and never reused.
type memStore struct {
	mu sync.Mutex

	products map[int]model.Product
	leads    map[int]model.Lead
	viewed   map[int]model.ViewedProduct
	posts    map[int]model.BlogPost

	nextProductID int
	nextLeadID    int
	nextViewedID  int
	nextPostID    int
}

// NewMemory returns a fresh in-memory Repositories bundle. Duplicate phone
// and duplicate viewed-pair inserts fail with gorm.ErrDuplicatedKey, matching
// what the relational backend reports on a unique-index hit.
func NewMemory() *Repositories {
	s := &memStore{
		products:      make(map[int]model.Product),
		leads:         make(map[int]model.Lead),
		viewed:        make(map[int]model.ViewedProduct),
		posts:         make(map[int]model.BlogPost),
		nextProductID: 1,
		nextLeadID:    1,
		nextViewedID:  1,
		nextPostID:    1,
	}
	return &Repositories{
		Products: &memProductRepo{s},
		Leads:    &memLeadRepo{s},
		Viewed:   &memViewedRepo{s},
		Blog:     &memBlogRepo{s},
	}
}

// ─── Products ────────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) List(_ context.Context, category string) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products := make([]model.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if category == "" || p.Category == category {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextProductID
	r.s.nextProductID++
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

// ─── Leads ───────────────────────────────────────────────────────────────────

type memLeadRepo struct{ s *memStore }

func (r *memLeadRepo) Create(_ context.Context, l *model.Lead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.leads {
		if existing.Phone == l.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	l.ID = r.s.nextLeadID
	r.s.nextLeadID++
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.s.leads[l.ID] = *l
	return nil
}

func (r *memLeadRepo) FindByID(_ context.Context, id int) (*model.Lead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.leads[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *memLeadRepo) FindByPhone(_ context.Context, phone string) (*model.Lead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.leads {
		if l.Phone == phone {
			lead := l
			return &lead, nil
		}
	}
	return nil, nil
}

func (r *memLeadRepo) List(_ context.Context) ([]model.Lead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	leads := make([]model.Lead, 0, len(r.s.leads))
	for _, l := range r.s.leads {
		leads = append(leads, l)
	}
	sort.Slice(leads, func(i, j int) bool { return leads[i].ID < leads[j].ID })
	return leads, nil
}

// ─── Viewed products ─────────────────────────────────────────────────────────

type memViewedRepo struct{ s *memStore }

func (r *memViewedRepo) FindPair(_ context.Context, leadID, productID int) (*model.ViewedProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.findPairLocked(leadID, productID), nil
}

func (r *memViewedRepo) findPairLocked(leadID, productID int) *model.ViewedProduct {
	for _, v := range r.s.viewed {
		if v.LeadID == leadID && v.ProductID == productID {
			pair := v
			return &pair
		}
	}
	return nil
}

func (r *memViewedRepo) Create(_ context.Context, v *model.ViewedProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.findPairLocked(v.LeadID, v.ProductID) != nil {
		return gorm.ErrDuplicatedKey
	}
	v.ID = r.s.nextViewedID
	r.s.nextViewedID++
	if v.ViewedAt.IsZero() {
		v.ViewedAt = time.Now()
	}
	r.s.viewed[v.ID] = *v
	return nil
}

func (r *memViewedRepo) ListByLead(_ context.Context, leadID int) ([]model.ViewedProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var viewed []model.ViewedProduct
	for _, v := range r.s.viewed {
		if v.LeadID == leadID {
			viewed = append(viewed, v)
		}
	}
	sort.Slice(viewed, func(i, j int) bool {
		if !viewed[i].ViewedAt.Equal(viewed[j].ViewedAt) {
			return viewed[i].ViewedAt.After(viewed[j].ViewedAt)
		}
		return viewed[i].ID > viewed[j].ID
	})
	return viewed, nil
}

func (r *memViewedRepo) DeletePair(_ context.Context, leadID, productID int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, v := range r.s.viewed {
		if v.LeadID == leadID && v.ProductID == productID {
			delete(r.s.viewed, id)
			return true, nil
		}
	}
	return false, nil
}

// ─── Blog posts ──────────────────────────────────────────────────────────────

type memBlogRepo struct{ s *memStore }

func (r *memBlogRepo) List(_ context.Context, page, limit int) ([]model.BlogPost, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]model.BlogPost, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []model.BlogPost{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memBlogRepo) FindByID(_ context.Context, id int) (*model.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memBlogRepo) Create(_ context.Context, p *model.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextPostID
	r.s.nextPostID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.s.posts[p.ID] = *p
	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return false, nil
	}
	delete(r.s.posts, id)
	return true, nil
}
