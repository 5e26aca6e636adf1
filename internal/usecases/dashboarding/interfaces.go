package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Dashboarder define a interface do painel de vendas
type Dashboarder interface {
	// Options retorna os valores distintos de cada dimensão filtrável
	Options(ctx context.Context) (*domain.DimensionOptions, error)

	// Build calcula todos os indicadores e gráficos para as seleções
	Build(ctx context.Context, selections domain.Selections) (*domain.Dashboard, error)

	// Chart calcula um único gráfico pelo nome
	Chart(ctx context.Context, name string, selections domain.Selections) (*domain.Chart, error)
}
