// Package aggregating reúne as agregações puras sobre uma tabela de vendas.
// Os arredondamentos usam decimal.Round, ou seja, metade para longe do zero.
package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// TotalSales soma o Total de todas as linhas; zero para tabela vazia
func TotalSales(table *domain.Table) decimal.Decimal {
	total := decimal.Zero
	for i := 0; i < table.Len(); i++ {
		total = total.Add(table.Row(i).Total)
	}
	return total
}

// AverageRating é a média de Rating com uma casa decimal.
// ok é falso quando a tabela está vazia.
func AverageRating(table *domain.Table) (avg decimal.Decimal, ok bool) {
	m, ok := mean(table, func(t domain.Transaction) decimal.Decimal { return t.Rating })
	if !ok {
		return decimal.Zero, false
	}
	return m.Round(1), true
}

// StarRating converte a média de avaliação em quantidade de estrelas
func StarRating(avg decimal.Decimal) int {
	stars := avg.Round(0).IntPart()
	if stars < 0 {
		return 0
	}
	return int(stars)
}

// AverageSalePerTransaction é a média de Total com duas casas decimais.
// ok é falso quando a tabela está vazia.
func AverageSalePerTransaction(table *domain.Table) (avg decimal.Decimal, ok bool) {
	m, ok := mean(table, func(t domain.Transaction) decimal.Decimal { return t.Total })
	if !ok {
		return decimal.Zero, false
	}
	return utils.RoundWithTwoDecimalPlace(m), true
}

func mean(table *domain.Table, value func(domain.Transaction) decimal.Decimal) (decimal.Decimal, bool) {
	n := table.Len()
	if n == 0 {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	for i := 0; i < n; i++ {
		sum = sum.Add(value(table.Row(i)))
	}
	return sum.Div(decimal.NewFromInt(int64(n))), true
}
