package dashboarding

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"golang.org/x/sync/errgroup"
)

// Service executa carga, filtro e agregação a cada solicitação.
// A tabela carregada é compartilhada; nada mais é mantido entre chamadas.
type Service struct {
	loader loading.TableLoader
	source spreadsheet.Source
}

// NewService cria o serviço do painel para uma planilha
func NewService(loader loading.TableLoader, source spreadsheet.Source) Dashboarder {
	return &Service{
		loader: loader,
		source: source,
	}
}

func (s *Service) Options(ctx context.Context) (*domain.DimensionOptions, error) {
	table, err := s.loader.Load(ctx, s.source)
	if err != nil {
		return nil, err
	}

	defaults, err := domain.DefaultSelections(table)
	if err != nil {
		return nil, err
	}

	return &domain.DimensionOptions{
		City:         defaults[domain.DimensionCity],
		CustomerType: defaults[domain.DimensionCustomerType],
		Gender:       defaults[domain.DimensionGender],
	}, nil
}

func (s *Service) Build(ctx context.Context, selections domain.Selections) (*domain.Dashboard, error) {
	table, resolved, err := s.filtered(ctx, selections)
	if err != nil {
		return nil, err
	}

	data, err := buildCharts(ctx, table)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		DatasetID:            table.ID(),
		LoadedAt:             table.LoadedAt(),
		Selections:           resolved,
		KPIs:                 kpis(table),
		SalesByProductLine:   data[ChartSalesByProductLine].([]domain.GroupTotal),
		SalesByHour:          data[ChartSalesByHour].([]domain.GroupTotal),
		SalesByGender:        data[ChartSalesByGender].([]domain.GroupShare),
		SalesByCustomerType:  data[ChartSalesByCustomerType].([]domain.GroupShare),
		SalesOverTime:        data[ChartSalesOverTime].([]domain.GroupTotal),
		ProductLineTree:      data[ChartProductLineTree].(*domain.TreeNode),
		CityCustomerGender:   data[ChartCityCustomerGender].(*domain.TreeNode),
		PriceQuantityBubbles: data[ChartPriceQuantityBubbles].([]domain.ScatterPoint),
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id":   table.ID(),
		"transactions": table.Len(),
	}).Debug("Painel calculado")

	return dashboard, nil
}

func (s *Service) Chart(ctx context.Context, name string, selections domain.Selections) (*domain.Chart, error) {
	def, ok := charts[name]
	if !ok {
		return nil, &ChartError{Err: ErrUnknownChart, Name: name}
	}

	table, resolved, err := s.filtered(ctx, selections)
	if err != nil {
		return nil, err
	}

	data, err := def.build(table)
	if err != nil {
		return nil, err
	}

	return &domain.Chart{
		Name:       name,
		Title:      def.title,
		Kind:       def.kind,
		DatasetID:  table.ID(),
		Selections: resolved,
		Data:       data,
	}, nil
}

// buildCharts calcula os gráficos em paralelo; as agregações não compartilham estado
func buildCharts(ctx context.Context, table *domain.Table) (map[string]interface{}, error) {
	results := make([]interface{}, len(ChartNames))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range ChartNames {
		def := charts[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := def.build(table)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := make(map[string]interface{}, len(ChartNames))
	for i, name := range ChartNames {
		data[name] = results[i]
	}
	return data, nil
}

// filtered carrega a tabela e aplica as seleções completadas com os valores padrão
func (s *Service) filtered(ctx context.Context, selections domain.Selections) (*domain.Table, domain.Selections, error) {
	table, err := s.loader.Load(ctx, s.source)
	if err != nil {
		return nil, nil, err
	}

	defaults, err := domain.DefaultSelections(table)
	if err != nil {
		return nil, nil, err
	}
	resolved := selections.WithDefaults(defaults)

	filtered, err := filtering.Filter(table, resolved)
	if err != nil {
		return nil, nil, err
	}

	return filtered, resolved, nil
}

func kpis(table *domain.Table) domain.KPIs {
	total := aggregating.TotalSales(table)

	k := domain.KPIs{
		TotalSales:      total,
		TotalSalesLabel: totalSalesLabel(total),
		Transactions:    table.Len(),
	}

	if avg, ok := aggregating.AverageRating(table); ok {
		k.AverageRating = decimal.NewNullDecimal(avg)
		k.StarRating = aggregating.StarRating(avg)
	}
	k.StarRatingLabel = starRatingLabel(k.AverageRating, k.StarRating)

	if avg, ok := aggregating.AverageSalePerTransaction(table); ok {
		k.AverageSalePerTransaction = decimal.NewNullDecimal(avg)
	}
	k.AverageSaleLabel = averageSaleLabel(k.AverageSalePerTransaction)

	return k
}
