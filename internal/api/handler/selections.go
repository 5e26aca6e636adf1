package handler

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Parâmetros de consulta aceitos para cada dimensão filtrável
var selectionParams = map[string]domain.Dimension{
	"city":          domain.DimensionCity,
	"customer_type": domain.DimensionCustomerType,
	"gender":        domain.DimensionGender,
}

// parseSelections lê as seleções da query string. O parâmetro pode se repetir;
// presente e vazio (ex: ?gender=) significa um conjunto vazio, e ausente
// significa todos os valores.
func parseSelections(query url.Values) (domain.Selections, error) {
	selections := make(domain.Selections)

	for param, values := range query {
		d, ok := selectionParams[param]
		if !ok {
			return nil, errors.Errorf("parâmetro de filtro desconhecido: %s", param)
		}

		set := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				set = append(set, v)
			}
		}
		selections[d] = set
	}

	return selections, nil
}

// selectionFields descreve as seleções resolvidas como campos de log selection_<parâmetro>
func selectionFields(selections domain.Selections) log.Fields {
	fields := make(log.Fields, len(selectionParams))
	for param, d := range selectionParams {
		if values, ok := selections[d]; ok {
			fields["selection_"+param] = strings.Join(values, ",")
		}
	}
	return fields
}
