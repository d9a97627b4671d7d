package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/waltinho0807/perfumariaCalegari/internal/config"
	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"
	"github.com/waltinho0807/perfumariaCalegari/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newServer spins up the full router over a fresh in-memory store.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Env:                "test",
		RateLimitPerMinute: 10000,
		BlogPageSize:       6,
	}
	srv := httptest.NewServer(router.New(cfg, repository.NewMemory(), nil))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func validProduct() map[string]any {
	return map[string]any{
		"name":     "Test",
		"brand":    "X",
		"price":    "100.00",
		"image":    "http://i",
		"category": "Masculino",
		"notes":    "n",
	}
}

// Create → patch stock → delete → 404, end to end.
func TestProductLifecycle(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodPost, "/api/products", validProduct())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	decode(t, resp, &created)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 0, created.Stock)
	assert.False(t, created.IsPromotion)

	resp = do(t, srv, http.MethodPatch, "/api/products/1", map[string]any{"stock": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched dto.ProductResponse
	decode(t, resp, &patched)
	assert.Equal(t, 5, patched.Stock)
	assert.Equal(t, "Test", patched.Name)
	assert.Equal(t, "100.00", patched.Price)

	resp = do(t, srv, http.MethodDelete, "/api/products/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductValidation(t *testing.T) {
	srv := newServer(t)

	p := validProduct()
	delete(p, "brand")
	resp := do(t, srv, http.MethodPost, "/api/products", p)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	p = validProduct()
	p["price"] = "caro"
	resp = do(t, srv, http.MethodPost, "/api/products", p)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodPatch, "/api/products/99", map[string]any{"stock": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestLeadRegisterAndLogin(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodPost, "/api/leads/register", map[string]any{"name": "Maria", "phone": "11987654321"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lead dto.LeadResponse
	decode(t, resp, &lead)
	assert.Equal(t, 1, lead.ID)

	// Duplicate phone → 400, no second record.
	resp = do(t, srv, http.MethodPost, "/api/leads/register", map[string]any{"name": "Outra", "phone": "11987654321"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Short fields → 400.
	resp = do(t, srv, http.MethodPost, "/api/leads/register", map[string]any{"name": "M", "phone": "123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodPost, "/api/leads/login", map[string]any{"phone": "11987654321"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logged dto.LeadResponse
	decode(t, resp, &logged)
	assert.Equal(t, lead.ID, logged.ID)

	resp = do(t, srv, http.MethodPost, "/api/leads/login", map[string]any{"phone": "11900000000"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var leads []dto.LeadResponse
	resp = do(t, srv, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &leads)
	assert.Len(t, leads, 1)
}

func TestViewedProductsFlow(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodPost, "/api/products", validProduct())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	pair := map[string]any{"leadId": 1, "productId": 1}

	resp = do(t, srv, http.MethodPost, "/api/viewed-products", pair)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first dto.ViewedProductResponse
	decode(t, resp, &first)

	// Idempotent add: same record comes back.
	resp = do(t, srv, http.MethodPost, "/api/viewed-products", pair)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second dto.ViewedProductResponse
	decode(t, resp, &second)
	assert.Equal(t, first.ID, second.ID)

	var list []dto.ProductResponse
	resp = do(t, srv, http.MethodGet, "/api/viewed-products/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &list)
	assert.Len(t, list, 1)

	// Missing leadId → 400.
	resp = do(t, srv, http.MethodPost, "/api/viewed-products", map[string]any{"productId": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodDelete, "/api/viewed-products/1/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodDelete, "/api/viewed-products/1/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBlogEndpoints(t *testing.T) {
	srv := newServer(t)

	post := map[string]any{
		"title":   "Lançamento",
		"excerpt": "resumo",
		"content": "parágrafo um\nparágrafo dois",
		"image":   "http://i",
	}
	resp := do(t, srv, http.MethodPost, "/api/blog", post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.BlogPostResponse
	decode(t, resp, &created)
	assert.Nil(t, created.ProductID)

	resp = do(t, srv, http.MethodGet, "/api/blog", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.BlogListResponse
	decode(t, resp, &list)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Posts, 1)
	assert.Equal(t, "Lançamento", list.Posts[0].Title)

	resp = do(t, srv, http.MethodGet, "/api/blog/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Missing excerpt → 400.
	resp = do(t, srv, http.MethodPost, "/api/blog", map[string]any{"title": "x", "content": "y", "image": "z"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodDelete, "/api/blog/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodDelete, "/api/blog/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestHealth(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "memory", body["store"])
}
