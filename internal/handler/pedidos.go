package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercus/internal/dto"
	"mercus/internal/middleware"
	"mercus/internal/service"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	pedidos, err := h.svc.Listar(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, pedidos)
}

func (h *PedidosHandler) BuscarPorID(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	pedido, itens, err := h.svc.BuscarPorID(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"pedido": pedido, "itens": itens})
}

func (h *PedidosHandler) Criar(c *gin.Context) {
	var req dto.CriarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, itens, err := h.svc.Criar(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"pedido": pedido, "itens": itens})
}

func (h *PedidosHandler) AtualizarStatus(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req dto.AtualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.AtualizarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, pedido)
}

func (h *PedidosHandler) Excluir(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
