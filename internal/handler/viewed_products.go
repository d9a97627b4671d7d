package handler

import (
	"errors"
	"net/http"

	"github.com/waltinho0807/perfumariaCalegari/internal/apierror"
	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/service"

	"github.com/gin-gonic/gin"
)

type ViewedProductsHandler struct{ svc service.ViewedProductService }

func NewViewedProductsHandler(svc service.ViewedProductService) *ViewedProductsHandler {
	return &ViewedProductsHandler{svc: svc}
}

// Add responds 201 whether the pair was inserted or already existed — the
// operation is idempotent and the body carries the stored record either way.
func (h *ViewedProductsHandler) Add(c *gin.Context) {
	var req dto.AddViewedProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to add viewed product"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ViewedProductsHandler) ListByLead(c *gin.Context) {
	leadID, ok := intParam(c, "leadId")
	if !ok {
		return
	}
	resp, err := h.svc.ListProducts(c.Request.Context(), leadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch viewed products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViewedProductsHandler) Remove(c *gin.Context) {
	leadID, ok := intParam(c, "leadId")
	if !ok {
		return
	}
	productID, ok := intParam(c, "productId")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), leadID, productID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Viewed product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to remove viewed product"))
		return
	}
	c.Status(http.StatusNoContent)
}
