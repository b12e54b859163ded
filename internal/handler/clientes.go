package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercus/internal/dto"
	"mercus/internal/middleware"
	"mercus/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.Listar(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, clientes)
}

func (h *ClientesHandler) BuscarPorID(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	cliente, err := h.svc.BuscarPorID(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, cliente)
}

func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Criar(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, cliente)
}

func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Atualizar(c.Request.Context(), middleware.GetClaims(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, cliente)
}

func (h *ClientesHandler) Excluir(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), middleware.GetClaims(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
