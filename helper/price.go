package helper

import "github.com/shopspring/decimal"

// Subtotal = jumlah * harga, làm tròn half away from zero về đơn vị nguyên.
func Subtotal(harga decimal.Decimal, jumlah int) int64 {
	return harga.Mul(decimal.NewFromInt(int64(jumlah))).Round(0).IntPart()
}

func Total(subtotals ...int64) int64 {
	var total int64
	for _, s := range subtotals {
		total += s
	}
	return total
}
