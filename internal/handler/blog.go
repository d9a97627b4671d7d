package handler

import (
	"errors"
	"net/http"

	"github.com/waltinho0807/perfumariaCalegari/internal/apierror"
	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/service"

	"github.com/gin-gonic/gin"
)

const maxBlogPageSize = 50

type BlogHandler struct {
	svc      service.BlogService
	pageSize int
}

func NewBlogHandler(svc service.BlogService, pageSize int) *BlogHandler {
	return &BlogHandler{svc: svc, pageSize: pageSize}
}

func (h *BlogHandler) List(c *gin.Context) {
	var filter dto.BlogPostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = h.pageSize
	}
	if filter.Limit > maxBlogPageSize {
		filter.Limit = maxBlogPageSize
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch blog posts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Blog post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch blog post"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create blog post"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Blog post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete blog post"))
		return
	}
	c.Status(http.StatusNoContent)
}
