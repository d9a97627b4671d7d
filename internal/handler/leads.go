package handler

import (
	"errors"
	"net/http"

	"github.com/waltinho0807/perfumariaCalegari/internal/apierror"
	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/service"

	"github.com/gin-gonic/gin"
)

type LeadsHandler struct{ svc service.LeadService }

func NewLeadsHandler(svc service.LeadService) *LeadsHandler {
	return &LeadsHandler{svc: svc}
}

func (h *LeadsHandler) Register(c *gin.Context) {
	var req dto.RegisterLeadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPhoneTaken) {
			c.JSON(http.StatusBadRequest, apierror.New("Telefone já cadastrado. Faça login."))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Falha ao cadastrar"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LeadsHandler) Login(c *gin.Context) {
	var req dto.LoginLeadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Telefone não encontrado. Cadastre-se primeiro."))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Falha ao fazer login"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LeadsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch leads"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LeadsHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Lead not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch lead"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
