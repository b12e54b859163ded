package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercus/internal/dto"
)

type validationResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func bindJSON(t *testing.T, body string, req interface{}) (bool, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return bindAndValidate(c, req), w
}

func TestBindAndValidateMissingFieldsReturn400(t *testing.T) {
	valid, w := bindJSON(t, `{}`, &dto.CriarClienteRequest{})
	assert.False(t, valid)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Erro de validacao", resp.Error)
	assert.Equal(t, "required", resp.Fields["CNPJ"])
	assert.Equal(t, "required", resp.Fields["RazaoSocial"])
}

func TestBindAndValidateDescontoAcimaDe100(t *testing.T) {
	body := `{"cliente_id":1,"itens":[{"produto_id":1,"quantidade":1,"desconto":150}]}`
	valid, w := bindJSON(t, body, &dto.CriarPedidoRequest{})
	assert.False(t, valid)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "lte", resp.Fields["Desconto"])
}

func TestBindAndValidateDescontoNegativo(t *testing.T) {
	body := `{"cliente_id":1,"itens":[{"produto_id":1,"quantidade":1,"desconto":-5}]}`
	valid, w := bindJSON(t, body, &dto.CriarPedidoRequest{})
	assert.False(t, valid)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "min", resp.Fields["Desconto"])
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	body := `{"cliente_id":1,"itens":[{"produto_id":1,"quantidade":2,"desconto":10}]}`
	valid, w := bindJSON(t, body, &dto.CriarPedidoRequest{})
	assert.True(t, valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
