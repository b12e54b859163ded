package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSubtotalItem(t *testing.T) {
	tests := []struct {
		name       string
		quantidade string
		preco      string
		desconto   string
		want       string
	}{
		{"sem desconto", "2", "100", "0", "200"},
		{"com desconto", "1", "50", "10", "45"},
		{"desconto cem por cento", "3", "80", "100", "0"},
		{"desconto acima de cem fica negativo", "1", "100", "110", "-10"},
		{"quantidade zero", "0", "99.90", "5", "0"},
		{"quantidade fracionada", "1.5", "10", "0", "15"},
		{"arredondamento em duas casas", "1", "10.99", "33", "7.36"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtotalItem(dec(tt.quantidade), dec(tt.preco), dec(tt.desconto))
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestTotalPedidoAppliesTax(t *testing.T) {
	// 2x100 + 1x50 with 10% = 245.00; * 1.065 = 260.925 -> 260.93
	subtotais := []decimal.Decimal{
		SubtotalItem(dec("2"), dec("100"), dec("0")),
		SubtotalItem(dec("1"), dec("50"), dec("10")),
	}
	total := TotalPedido(subtotais)
	assert.True(t, dec("260.93").Equal(total), "got %s", total)
}

func TestTotalPedidoEmptyOrder(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(TotalPedido(nil)))
}
