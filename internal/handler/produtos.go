package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercus/internal/dto"
	"mercus/internal/service"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

func (h *ProdutosHandler) Listar(c *gin.Context) {
	produtos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, produtos)
}

func (h *ProdutosHandler) BuscarPorID(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	produto, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, produto)
}

func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	produto, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, produto)
}

func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	produto, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, produto)
}

func (h *ProdutosHandler) Excluir(c *gin.Context) {
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
