package filtering

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Filter mantém as linhas cujo valor de cada dimensão selecionada pertence ao
// respectivo conjunto (E entre dimensões, OU dentro do conjunto). A ordem das
// linhas é preservada e a tabela de entrada não é alterada.
func Filter(table *domain.Table, selections domain.Selections) (*domain.Table, error) {
	allowed := make(map[domain.Dimension]map[string]struct{}, len(selections))
	for d, values := range selections {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		allowed[d] = set
	}

	indices := make([]int, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		keep, err := matches(table.Row(i), allowed)
		if err != nil {
			return nil, err
		}
		if keep {
			indices = append(indices, i)
		}
	}

	return table.Subset(indices), nil
}

func matches(row domain.Transaction, allowed map[domain.Dimension]map[string]struct{}) (bool, error) {
	keep := true
	for d, set := range allowed {
		v, err := d.Value(row)
		if err != nil {
			return false, err
		}
		if _, ok := set[v]; !ok {
			keep = false
		}
	}
	return keep, nil
}
