package infra

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercus/internal/model"
)

func docWithItems(n int) PedidoDocumento {
	itens := make([]model.PedidoItem, n)
	for i := range itens {
		itens[i] = model.PedidoItem{
			ID:            int64(i + 1),
			ProdutoID:     int64(i + 1),
			ProdutoCodigo: fmt.Sprintf("P%03d", i+1),
			ProdutoNome:   fmt.Sprintf("Produto %d", i+1),
			Quantidade:    decimal.NewFromInt(2),
			PrecoUnitario: decimal.NewFromInt(10),
			Subtotal:      decimal.NewFromInt(20),
		}
	}
	return PedidoDocumento{
		Empresa: "Icebound Foods",
		Pedido: model.Pedido{
			ID:           1,
			NumeroPedido: "PD1700000000000",
			ValorTotal:   decimal.NewFromInt(20 * int64(n)),
			Status:       model.StatusPendente,
			DataEmissao:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Cliente: model.Cliente{RazaoSocial: "ACME Alimentos LTDA", CNPJ: "11.222.333/0001-44"},
		Itens:   itens,
	}
}

// pageCount counts page objects in the raw PDF output.
func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

// contentText inflates every compressed content stream and returns the
// concatenated text, so tests can assert on rendered strings.
func contentText(t *testing.T, data []byte) string {
	t.Helper()
	var out bytes.Buffer
	rest := data
	for {
		i := bytes.Index(rest, []byte("\nstream\n"))
		if i < 0 {
			break
		}
		rest = rest[i+len("\nstream\n"):]
		j := bytes.Index(rest, []byte("\nendstream"))
		if j < 0 {
			break
		}
		if zr, err := zlib.NewReader(bytes.NewReader(rest[:j])); err == nil {
			_, _ = out.ReadFrom(zr)
			_ = zr.Close()
		}
		rest = rest[j:]
	}
	return out.String()
}

func TestGeneratePedidoPDFProducesDocument(t *testing.T) {
	data, err := GeneratePedidoPDF(docWithItems(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(data))
}

func TestGeneratePedidoPDFPaginatesLongOrders(t *testing.T) {
	data, err := GeneratePedidoPDF(docWithItems(120))
	require.NoError(t, err)

	pages := pageCount(data)
	assert.GreaterOrEqual(t, pages, 3)

	// The column header is redrawn on every page that carries table rows;
	// only a trailing totals-only page can lack one.
	headers := strings.Count(contentText(t, data), "Preco Tab.")
	assert.GreaterOrEqual(t, headers, 2)
	assert.GreaterOrEqual(t, headers, pages-1)
}

func TestGeneratePedidoPDFTotaisEVendedor(t *testing.T) {
	doc := docWithItems(2)
	doc.Pedido.VendedorNome = "Ana"
	doc.Itens[1].Desconto = decimal.NewFromInt(10)
	doc.Itens[1].Subtotal = decimal.NewFromInt(18)

	data, err := GeneratePedidoPDF(doc)
	require.NoError(t, err)

	text := contentText(t, data)
	assert.Contains(t, text, "2 UN") // quantity column carries the unit
	assert.Contains(t, text, "Qtde total:")
	assert.Contains(t, text, "4.00") // 2 + 2
	assert.Contains(t, text, "R$ 40.00")
	assert.Contains(t, text, "Total de descontos:")
	assert.Contains(t, text, "R$ 2.00") // 40 list price - 38 sold
	assert.Contains(t, text, "Valor total em produtos:")
	assert.Contains(t, text, "TOTAL:")
	assert.Contains(t, text, "Vendedor: Ana")
}

func TestGeneratePedidoPDFTruncatesNamesOnRunes(t *testing.T) {
	doc := docWithItems(1)
	doc.Itens[0].ProdutoNome = strings.Repeat("Açaí ", 12)

	data, err := GeneratePedidoPDF(doc)
	require.NoError(t, err)

	want := string([]rune(doc.Itens[0].ProdutoNome)[:37]) + "."
	assert.Contains(t, contentText(t, data), want)
}

func TestGeneratePedidoPDFEmptyOrder(t *testing.T) {
	data, err := GeneratePedidoPDF(docWithItems(0))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(data))
}
