package service

import "github.com/shopspring/decimal"

// Order pricing rules. All money math uses decimals; floats never touch a
// price. Intermediate subtotals are rounded to 2 decimal places before they
// are summed, so the stored lines always add up to the printed document.

var (
	cem = decimal.NewFromInt(100)

	// taxaImposto is the flat tax multiplier applied over the item subtotal.
	taxaImposto = decimal.RequireFromString("1.065")
)

// SubtotalItem computes quantidade * preco * (1 - desconto/100), rounded to
// 2 decimal places. Desconto is a percentage; values above 100 are applied
// as-is and produce a negative subtotal.
func SubtotalItem(quantidade, preco, desconto decimal.Decimal) decimal.Decimal {
	bruto := quantidade.Mul(preco)
	fator := cem.Sub(desconto).Div(cem)
	return bruto.Mul(fator).Round(2)
}

// TotalPedido applies the tax multiplier over the sum of item subtotals and
// rounds to 2 decimal places.
func TotalPedido(subtotais []decimal.Decimal) decimal.Decimal {
	soma := decimal.Zero
	for _, s := range subtotais {
		soma = soma.Add(s)
	}
	return soma.Mul(taxaImposto).Round(2)
}
