package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupOrder define a ordenação de um resultado agrupado
type GroupOrder string

const (
	// OrderByValue ordena pelo valor agregado, crescente
	OrderByValue GroupOrder = "value"
	// OrderByKey ordena pela ordem natural da chave, crescente
	OrderByKey GroupOrder = "key"
)

// GroupTotal é a soma de uma medida para uma combinação de chaves
type GroupTotal struct {
	Key   []string        `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

// GroupShare é a soma de um grupo e sua participação no total geral.
// Percent é nulo quando o total geral é zero.
type GroupShare struct {
	Key     string              `json:"key"`
	Value   decimal.Decimal     `json:"value"`
	Percent decimal.NullDecimal `json:"percent"`
}

// TreeNode é um nó da árvore de distribuição; Value é sempre a soma dos filhos
type TreeNode struct {
	Dimension Dimension       `json:"dimension,omitempty"`
	Key       string          `json:"key"`
	Value     decimal.Decimal `json:"value"`
	Count     int             `json:"count"`
	Children  []*TreeNode     `json:"children,omitempty"`
}

// ScatterPoint é a projeção de uma linha para gráficos de dispersão
type ScatterPoint struct {
	X     decimal.Decimal `json:"x"`
	Y     decimal.Decimal `json:"y"`
	Size  decimal.Decimal `json:"size"`
	Color string          `json:"color"`
	Label string          `json:"label"`
}

// KPIs são os indicadores do cabeçalho do painel
type KPIs struct {
	TotalSales                decimal.Decimal     `json:"total_sales"`
	TotalSalesLabel           string              `json:"total_sales_label"`
	AverageRating             decimal.NullDecimal `json:"average_rating"`
	StarRating                int                 `json:"star_rating"`
	StarRatingLabel           string              `json:"star_rating_label"`
	AverageSalePerTransaction decimal.NullDecimal `json:"average_sale_per_transaction"`
	AverageSaleLabel          string              `json:"average_sale_label"`
	Transactions              int                 `json:"transactions"`
}

// Dashboard reúne os indicadores e todos os gráficos para uma seleção
type Dashboard struct {
	DatasetID            string         `json:"dataset_id"`
	LoadedAt             time.Time      `json:"loaded_at"`
	Selections           Selections     `json:"selections"`
	KPIs                 KPIs           `json:"kpis"`
	SalesByProductLine   []GroupTotal   `json:"sales_by_product_line"`
	SalesByHour          []GroupTotal   `json:"sales_by_hour"`
	SalesByGender        []GroupShare   `json:"sales_by_gender"`
	SalesByCustomerType  []GroupShare   `json:"sales_by_customer_type"`
	SalesOverTime        []GroupTotal   `json:"sales_over_time"`
	ProductLineTree      *TreeNode      `json:"product_line_tree"`
	CityCustomerGender   *TreeNode      `json:"city_customer_gender_tree"`
	PriceQuantityBubbles []ScatterPoint `json:"price_quantity_bubbles"`
}
