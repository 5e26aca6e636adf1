package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sourcemocks "github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func salesTable() *domain.Table {
	return domain.NewTable("carga-1", "supermarkt_sales.xlsx", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), []domain.Transaction{
		{
			City: "Yangon", CustomerType: "Member", Gender: "Female", ProductLine: "Health and beauty",
			UnitPrice: dec("14.29"), Quantity: 7, Total: dec("100"), Rating: dec("8"),
			Date: time.Date(2019, time.January, 5, 0, 0, 0, 0, time.UTC), Time: "13:23:00", Hour: 13,
		},
		{
			City: "Mandalay", CustomerType: "Normal", Gender: "Male", ProductLine: "Sports and travel",
			UnitPrice: dec("10"), Quantity: 5, Total: dec("50"), Rating: dec("6"),
			Date: time.Date(2019, time.January, 3, 0, 0, 0, 0, time.UTC), Time: "10:00:00", Hour: 10,
		},
	})
}

func newTestService(t *testing.T, ctrl *gomock.Controller, table *domain.Table, err error) Dashboarder {
	t.Helper()

	source := sourcemocks.NewMockSource(ctrl)
	loader := mocks.NewMockTableLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), source).Return(table, err).AnyTimes()

	return NewService(loader, source)
}

func TestService_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl, salesTable(), nil)

	options, err := service.Options(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Yangon", "Mandalay"}, options.City)
	assert.Equal(t, []string{"Member", "Normal"}, options.CustomerType)
	assert.Equal(t, []string{"Female", "Male"}, options.Gender)
}

func TestService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl, salesTable(), nil)

	dashboard, err := service.Build(context.Background(), domain.Selections{
		domain.DimensionCity:         {"Yangon", "Mandalay"},
		domain.DimensionCustomerType: {"Member", "Normal"},
		domain.DimensionGender:       {"Female", "Male"},
	})
	require.NoError(t, err)

	assert.Equal(t, "carga-1", dashboard.DatasetID)

	k := dashboard.KPIs
	assert.True(t, dec("150").Equal(k.TotalSales))
	assert.Equal(t, "US $ 150", k.TotalSalesLabel)
	require.True(t, k.AverageRating.Valid)
	assert.True(t, dec("7.0").Equal(k.AverageRating.Decimal))
	assert.Equal(t, 7, k.StarRating)
	assert.Equal(t, "7.0 ⭐⭐⭐⭐⭐⭐⭐", k.StarRatingLabel)
	require.True(t, k.AverageSalePerTransaction.Valid)
	assert.Equal(t, "75.00", k.AverageSalePerTransaction.Decimal.StringFixed(2))
	assert.Equal(t, "US $ 75.00", k.AverageSaleLabel)
	assert.Equal(t, 2, k.Transactions)

	require.Len(t, dashboard.SalesByHour, 2)
	assert.Equal(t, "10", dashboard.SalesByHour[0].Label)
	assert.Equal(t, "13", dashboard.SalesByHour[1].Label)

	require.Len(t, dashboard.SalesByProductLine, 2)
	assert.Equal(t, "Sports and travel", dashboard.SalesByProductLine[0].Label)

	require.Len(t, dashboard.SalesOverTime, 2)
	assert.Equal(t, "2019-01-03", dashboard.SalesOverTime[0].Label)

	require.Len(t, dashboard.SalesByGender, 2)
	require.Len(t, dashboard.SalesByCustomerType, 2)
	assert.True(t, dec("150").Equal(dashboard.ProductLineTree.Value))
	assert.Len(t, dashboard.CityCustomerGender.Children, 2)
	assert.Len(t, dashboard.PriceQuantityBubbles, 2)
}

func TestService_Build_FiltraCidade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl, salesTable(), nil)

	dashboard, err := service.Build(context.Background(), domain.Selections{
		domain.DimensionCity: {"Yangon"},
	})
	require.NoError(t, err)

	assert.True(t, dec("100").Equal(dashboard.KPIs.TotalSales))
	assert.Equal(t, 1, dashboard.KPIs.Transactions)
	assert.Equal(t, []string{"Yangon"}, dashboard.Selections[domain.DimensionCity])
	assert.Equal(t, []string{"Female", "Male"}, dashboard.Selections[domain.DimensionGender])
}

func TestService_Build_SelecaoVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl, salesTable(), nil)

	dashboard, err := service.Build(context.Background(), domain.Selections{
		domain.DimensionGender: {},
	})
	require.NoError(t, err)

	k := dashboard.KPIs
	assert.True(t, k.TotalSales.IsZero())
	assert.Equal(t, "US $ 0", k.TotalSalesLabel)
	assert.False(t, k.AverageRating.Valid)
	assert.Equal(t, 0, k.StarRating)
	assert.Equal(t, "-", k.StarRatingLabel)
	assert.False(t, k.AverageSalePerTransaction.Valid)
	assert.Equal(t, "-", k.AverageSaleLabel)
	assert.Empty(t, dashboard.SalesByHour)
	assert.Empty(t, dashboard.PriceQuantityBubbles)
	assert.Empty(t, dashboard.ProductLineTree.Children)
}

func TestService_Build_ErroDeCarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl, nil, domain.NewColumnError("Time"))

	_, err := service.Build(context.Background(), nil)

	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Time", schemaErr.Name)
}

func TestService_Chart(t *testing.T) {
	tests := []struct {
		name     string
		chart    string
		validate func(t *testing.T, chart *domain.Chart, err error)
	}{
		{
			name:  "Vendas por hora",
			chart: ChartSalesByHour,
			validate: func(t *testing.T, chart *domain.Chart, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ChartBar, chart.Kind)
				assert.Equal(t, "Sales by hour", chart.Title)
				data, ok := chart.Data.([]domain.GroupTotal)
				require.True(t, ok)
				require.Len(t, data, 2)
				assert.Equal(t, "10", data[0].Label)
			},
		},
		{
			name:  "Participação por gênero",
			chart: ChartSalesByGender,
			validate: func(t *testing.T, chart *domain.Chart, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ChartDonut, chart.Kind)
				data, ok := chart.Data.([]domain.GroupShare)
				require.True(t, ok)
				require.Len(t, data, 2)
				assert.Equal(t, "66.67", data[0].Percent.Decimal.StringFixed(2))
			},
		},
		{
			name:  "Sunburst",
			chart: ChartCityCustomerGender,
			validate: func(t *testing.T, chart *domain.Chart, err error) {
				require.NoError(t, err)
				root, ok := chart.Data.(*domain.TreeNode)
				require.True(t, ok)
				assert.Equal(t, "Mandalay", root.Children[0].Key)
			},
		},
		{
			name:  "Gráfico desconhecido",
			chart: "pizza",
			validate: func(t *testing.T, chart *domain.Chart, err error) {
				assert.Nil(t, chart)
				assert.ErrorIs(t, err, ErrUnknownChart)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := newTestService(t, ctrl, salesTable(), nil)

			chart, err := service.Chart(context.Background(), tt.chart, nil)
			tt.validate(t, chart, err)
		})
	}
}

func TestChartNames_TodosRegistrados(t *testing.T) {
	assert.Len(t, ChartNames, len(charts))
	for _, name := range ChartNames {
		_, ok := charts[name]
		assert.True(t, ok, name)
	}
}
