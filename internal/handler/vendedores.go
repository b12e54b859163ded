package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercus/internal/dto"
	"mercus/internal/service"
)

type VendedoresHandler struct{ svc service.VendedorService }

func NewVendedoresHandler(svc service.VendedorService) *VendedoresHandler {
	return &VendedoresHandler{svc: svc}
}

func (h *VendedoresHandler) Listar(c *gin.Context) {
	vendedores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, vendedores)
}

func (h *VendedoresHandler) BuscarPorID(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	vendedor, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, vendedor)
}

func (h *VendedoresHandler) Criar(c *gin.Context) {
	var req dto.CriarVendedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vendedor, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, vendedor)
}

func (h *VendedoresHandler) Atualizar(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req dto.AtualizarVendedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vendedor, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, vendedor)
}

// Desativar is the soft delete: the profile and its login stop working but
// history stays intact.
func (h *VendedoresHandler) Desativar(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Excluir removes the seller permanently; refused while orders reference it.
func (h *VendedoresHandler) Excluir(c *gin.Context) {
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
