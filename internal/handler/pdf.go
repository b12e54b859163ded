package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mercus/internal/infra"
	"mercus/internal/middleware"
	"mercus/internal/service"
)

type PDFHandler struct{ svc service.PedidoService }

func NewPDFHandler(svc service.PedidoService) *PDFHandler {
	return &PDFHandler{svc: svc}
}

// Pedido renders the order document and streams it as a download. The PDF is
// fully built in memory first, so the client always gets either a complete
// document with a correct Content-Length or a JSON error — never a truncated
// byte stream.
func (h *PDFHandler) Pedido(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}

	doc, err := h.svc.Documento(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := infra.GeneratePedidoPDF(*doc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pedido_%s.pdf", doc.Pedido.NumeroPedido))
	c.Data(http.StatusOK, "application/pdf", data)
}
