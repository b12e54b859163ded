package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mercus/internal/apierror"
	"mercus/internal/service"
)

const maxUploadBytes = 5 << 20 // 5 MB

type UploadHandler struct {
	svc service.ProdutoService
	dir string
}

func NewUploadHandler(svc service.ProdutoService, dir string) *UploadHandler {
	return &UploadHandler{svc: svc, dir: dir}
}

// ImagemProduto receives a multipart image, stores it under a random name and
// records its public URL on the product.
func (h *UploadHandler) ImagemProduto(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}

	file, err := c.FormFile("imagem")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Arquivo de imagem ausente"))
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, apierror.New("Imagem excede o limite de 5MB"))
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, apierror.New("Arquivo deve ser uma imagem"))
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		respondError(c, err)
		return
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		respondError(c, err)
		return
	}

	produto, err := h.svc.AtualizarImagem(c.Request.Context(), id, "/uploads/"+name)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, produto)
}
