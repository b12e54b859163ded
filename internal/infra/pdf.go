package infra

// pdf.go — Order document generation using go-pdf/fpdf.
// Renders an A4 sales order with:
//   - Company name header and order number
//   - Two-column client identification block
//   - Item table (code, product, qty+unit, list price, discount, net price,
//     subtotal) with header redrawn on every page break
//   - Totals block (qty total, list-price total, discount total, product total,
//     tax, grand total) kept on one page
//   - Payment condition, seller and free-form notes
//
// Output is returned fully in memory so handlers can set Content-Length and
// stream the complete document in one write.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"mercus/internal/model"
)

// A4 layout constants, in millimetres.
const (
	pdfMargin     = 10.0
	pdfContentW   = 190.0 // 210mm page minus both margins
	pdfRowH       = 6.0
	pdfBottomY    = 270.0 // last usable Y for a table row
	pdfTotalsNeed = 75.0  // vertical space the totals block requires
)

// Item table column widths (sum = pdfContentW).
var pdfColW = [8]float64{8, 20, 62, 15, 25, 15, 20, 25}

var pdfColTitles = [8]string{"#", "Codigo", "Produto", "Qtde", "Preco Tab.", "Desc %", "Preco Liq.", "Subtotal"}

// PedidoDocumento bundles everything the order PDF needs. Itens carry
// ProdutoNome/ProdutoCodigo enrichment filled by the service.
type PedidoDocumento struct {
	Empresa string
	Pedido  model.Pedido
	Cliente model.Cliente
	Itens   []model.PedidoItem
}

// GeneratePedidoPDF renders the order document and returns the finished bytes.
func GeneratePedidoPDF(doc PedidoDocumento) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	drawPedidoHeader(pdf, doc)
	drawClienteBlock(pdf, doc.Cliente)

	drawItemHeader(pdf)
	if len(doc.Itens) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(pdfContentW, pdfRowH, "Nenhum item encontrado", "1", 1, "C", false, 0, "")
	}

	var tot pedidoTotais
	for i, item := range doc.Itens {
		if pdf.GetY()+pdfRowH > pdfBottomY {
			pdf.AddPage()
			drawItemHeader(pdf)
		}
		drawItemRow(pdf, i+1, item)
		tot.Quantidade = tot.Quantidade.Add(item.Quantidade)
		tot.PrecoTabela = tot.PrecoTabela.Add(item.Quantidade.Mul(item.PrecoUnitario))
		tot.Subtotal = tot.Subtotal.Add(item.Subtotal)
	}

	if pdf.GetY()+pdfTotalsNeed > pdfBottomY {
		pdf.AddPage()
	}
	drawTotaisBlock(pdf, doc.Pedido, tot)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render pedido %s: %w", doc.Pedido.NumeroPedido, err)
	}
	return buf.Bytes(), nil
}

func drawPedidoHeader(pdf *fpdf.Fpdf, doc PedidoDocumento) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(pdfContentW, 9, doc.Empresa, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pdfContentW, 7, "Pedido de Venda "+doc.Pedido.NumeroPedido, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	emissao := doc.Pedido.DataEmissao
	if emissao.IsZero() {
		emissao = doc.Pedido.CreatedAt
	}
	linha := fmt.Sprintf("Emissao: %s    Status: %s", emissao.Format("02/01/2006"), doc.Pedido.Status)
	pdf.CellFormat(pdfContentW, 5, linha, "", 1, "C", false, 0, "")
	pdf.Ln(3)
}

// drawClienteBlock renders the client identification in two columns.
func drawClienteBlock(pdf *fpdf.Fpdf, c model.Cliente) {
	half := pdfContentW / 2

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(pdfContentW, 6, "Cliente", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	left := [][2]string{
		{"Razao Social", c.RazaoSocial},
		{"CNPJ", c.CNPJ},
		{"Endereco", c.Endereco},
		{"Cidade", c.Cidade + " - " + c.Estado},
	}
	right := [][2]string{
		{"Nome Fantasia", c.NomeFantasia},
		{"Insc. Estadual", c.InscricaoEstadual},
		{"Telefone", c.Telefone},
		{"CEP", c.CEP},
	}
	for i := range left {
		pdf.CellFormat(half, 5, left[i][0]+": "+left[i][1], "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5, right[i][0]+": "+right[i][1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func drawItemHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range pdfColTitles {
		align := "C"
		last := 0
		if i == len(pdfColTitles)-1 {
			last = 1
		}
		pdf.CellFormat(pdfColW[i], pdfRowH, title, "1", last, align, true, 0, "")
	}
}

func drawItemRow(pdf *fpdf.Fpdf, n int, item model.PedidoItem) {
	// Truncate on runes, not bytes, so accented names keep valid characters.
	nome := item.ProdutoNome
	if r := []rune(nome); len(r) > 38 {
		nome = string(r[:37]) + "."
	}
	unidade := item.UnidadeMedida
	if unidade == "" {
		unidade = "UN"
	}
	cem := decimal.NewFromInt(100)
	liquido := item.PrecoUnitario.Mul(cem.Sub(item.Desconto)).Div(cem)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(pdfColW[0], pdfRowH, fmt.Sprintf("%d", n), "1", 0, "C", false, 0, "")
	pdf.CellFormat(pdfColW[1], pdfRowH, item.ProdutoCodigo, "1", 0, "C", false, 0, "")
	pdf.CellFormat(pdfColW[2], pdfRowH, nome, "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColW[3], pdfRowH, item.Quantidade.String()+" "+unidade, "1", 0, "C", false, 0, "")
	pdf.CellFormat(pdfColW[4], pdfRowH, "R$ "+item.PrecoUnitario.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfColW[5], pdfRowH, item.Desconto.StringFixed(1), "1", 0, "C", false, 0, "")
	pdf.CellFormat(pdfColW[6], pdfRowH, "R$ "+liquido.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfColW[7], pdfRowH, "R$ "+item.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
}

// pedidoTotais accumulates the item columns the totals block summarizes.
type pedidoTotais struct {
	Quantidade  decimal.Decimal
	PrecoTabela decimal.Decimal
	Subtotal    decimal.Decimal
}

func drawTotaisBlock(pdf *fpdf.Fpdf, p model.Pedido, tot pedidoTotais) {
	pdf.Ln(4)
	labelW := pdfContentW - 40.0

	descontos := tot.PrecoTabela.Sub(tot.Subtotal)
	impostos := p.ValorTotal.Sub(tot.Subtotal)

	linha := func(label, valor string) {
		pdf.CellFormat(labelW, 5, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 5, valor, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	linha("Qtde total:", tot.Quantidade.StringFixed(2))
	linha("Total (Preco Tabela):", "R$ "+tot.PrecoTabela.StringFixed(2))
	linha("Total de descontos:", "R$ "+descontos.StringFixed(2))
	linha("Valor total em produtos:", "R$ "+tot.Subtotal.StringFixed(2))
	linha("Impostos (6,5%):", "R$ "+impostos.StringFixed(2))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "R$ "+p.ValorTotal.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	if p.CondicaoPagamento != "" {
		pdf.CellFormat(pdfContentW, 5, "Condicao de pagamento: "+p.CondicaoPagamento+" dias", "", 1, "L", false, 0, "")
	}
	vendedor := p.VendedorNome
	if vendedor == "" {
		vendedor = "N/A"
	}
	pdf.CellFormat(pdfContentW, 5, "Vendedor: "+vendedor, "", 1, "L", false, 0, "")
	if p.Observacoes != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(pdfContentW, 5, "Obs: "+p.Observacoes, "", "L", false)
	}
}
