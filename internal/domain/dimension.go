package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DateKeyLayout é o formato usado para chaves de agrupamento por data
const DateKeyLayout = "2006-01-02"

// Dimension é uma coluna categórica usada para filtrar ou agrupar.
// O valor é o nome do cabeçalho da coluna na planilha.
type Dimension string

const (
	DimensionCity         Dimension = "City"
	DimensionCustomerType Dimension = "Customer_type"
	DimensionGender       Dimension = "Gender"
	DimensionProductLine  Dimension = "Product line"
	DimensionHour         Dimension = "hour"
	DimensionDate         Dimension = "Date"
)

// FilterDimensions são as dimensões ajustáveis pelo usuário
var FilterDimensions = []Dimension{
	DimensionCity,
	DimensionCustomerType,
	DimensionGender,
}

// Value extrai o valor da dimensão de uma transação
func (d Dimension) Value(t Transaction) (string, error) {
	switch d {
	case DimensionCity:
		return t.City, nil
	case DimensionCustomerType:
		return t.CustomerType, nil
	case DimensionGender:
		return t.Gender, nil
	case DimensionProductLine:
		return t.ProductLine, nil
	case DimensionHour:
		return strconv.Itoa(t.Hour), nil
	case DimensionDate:
		return t.Date.Format(DateKeyLayout), nil
	default:
		return "", NewColumnError(string(d))
	}
}

// Less compara duas chaves na ordem natural da dimensão:
// hora é numérica, data é cronológica e o resto é lexical.
func (d Dimension) Less(a, b string) bool {
	if d == DimensionHour {
		ai, errA := strconv.Atoi(a)
		bi, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return ai < bi
		}
	}

	// Chaves de data em DateKeyLayout já ordenam cronologicamente
	return a < b
}

// Measure é uma coluna numérica sujeita a agregação
type Measure string

const (
	MeasureTotal     Measure = "Total"
	MeasureUnitPrice Measure = "Unit price"
	MeasureQuantity  Measure = "Quantity"
	MeasureRating    Measure = "Rating"
)

// Value extrai o valor da medida de uma transação
func (m Measure) Value(t Transaction) (decimal.Decimal, error) {
	switch m {
	case MeasureTotal:
		return t.Total, nil
	case MeasureUnitPrice:
		return t.UnitPrice, nil
	case MeasureQuantity:
		return decimal.NewFromInt(int64(t.Quantity)), nil
	case MeasureRating:
		return t.Rating, nil
	default:
		return decimal.Zero, NewColumnError(string(m))
	}
}
