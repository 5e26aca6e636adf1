package dashboarding

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
)

// Nomes dos gráficos expostos pelo painel
const (
	ChartSalesByProductLine   = "sales_by_product_line"
	ChartSalesByHour          = "sales_by_hour"
	ChartSalesByGender        = "sales_by_gender"
	ChartSalesByCustomerType  = "sales_by_customer_type"
	ChartSalesOverTime        = "sales_over_time"
	ChartProductLineTree      = "product_line_tree"
	ChartCityCustomerGender   = "city_customer_gender_tree"
	ChartPriceQuantityBubbles = "price_quantity_bubbles"
)

type chartDef struct {
	title string
	kind  domain.ChartKind
	build func(table *domain.Table) (interface{}, error)
}

var charts = map[string]chartDef{
	ChartSalesByProductLine: {
		title: "Sales by Product Line",
		kind:  domain.ChartBar,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.GroupSum(t, []domain.Dimension{domain.DimensionProductLine}, domain.MeasureTotal, domain.OrderByValue)
		},
	},
	ChartSalesByHour: {
		title: "Sales by hour",
		kind:  domain.ChartBar,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.GroupSum(t, []domain.Dimension{domain.DimensionHour}, domain.MeasureTotal, domain.OrderByKey)
		},
	},
	ChartSalesByGender: {
		title: "Sales by Gender",
		kind:  domain.ChartDonut,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.GroupShare(t, domain.DimensionGender, domain.MeasureTotal)
		},
	},
	ChartSalesByCustomerType: {
		title: "Sales by Customer Type",
		kind:  domain.ChartPie,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.GroupShare(t, domain.DimensionCustomerType, domain.MeasureTotal)
		},
	},
	ChartSalesOverTime: {
		title: "Sales Over Time",
		kind:  domain.ChartLine,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.GroupSum(t, []domain.Dimension{domain.DimensionDate}, domain.MeasureTotal, domain.OrderByKey)
		},
	},
	ChartProductLineTree: {
		title: "Sales Distribution by Product Line",
		kind:  domain.ChartTreemap,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.DistributionTree(t, []domain.Dimension{domain.DimensionProductLine}, domain.MeasureTotal)
		},
	},
	ChartCityCustomerGender: {
		title: "Sales Distribution by City, Customer Type, and Gender",
		kind:  domain.ChartSunburst,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.DistributionTree(t, []domain.Dimension{domain.DimensionCity, domain.DimensionCustomerType, domain.DimensionGender}, domain.MeasureTotal)
		},
	},
	ChartPriceQuantityBubbles: {
		title: "Sales, Unit Price, and Quantity by Product Line",
		kind:  domain.ChartBubble,
		build: func(t *domain.Table) (interface{}, error) {
			return aggregating.ScatterPoints(t, domain.MeasureUnitPrice, domain.MeasureQuantity, domain.MeasureTotal, domain.DimensionProductLine)
		},
	},
}

// ChartNames lista os gráficos na ordem em que aparecem no painel
var ChartNames = []string{
	ChartSalesByHour,
	ChartSalesByProductLine,
	ChartSalesByGender,
	ChartSalesByCustomerType,
	ChartProductLineTree,
	ChartCityCustomerGender,
	ChartSalesOverTime,
	ChartPriceQuantityBubbles,
}
