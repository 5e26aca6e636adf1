package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboard retorna todos os indicadores e gráficos para as seleções da query
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selections, err := parseSelections(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("dashboard: seleção inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dashboard, err := service.Build(r.Context(), selections)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		fields := selectionFields(dashboard.Selections)
		fields["dataset_id"] = dashboard.DatasetID
		fields["transactions"] = dashboard.KPIs.Transactions
		logger.WithFields(fields).Debug("dashboard: painel calculado")

		writeJSON(w, logger, dashboard)
	})
}

// GetDashboardOptions retorna os valores disponíveis para cada filtro
func GetDashboardOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.Options(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, options)
	})
}

// GetDashboardChart retorna um único gráfico pelo nome
func GetDashboardChart(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("chart")
		logger = logger.WithField("chart", name)

		selections, err := parseSelections(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("dashboard: seleção inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		chart, err := service.Chart(r.Context(), name, selections)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		fields := selectionFields(chart.Selections)
		fields["dataset_id"] = chart.DatasetID
		logger.WithFields(fields).Debug("dashboard: gráfico calculado")

		writeJSON(w, logger, chart)
	})
}

// writeServiceError traduz os erros do painel para o envelope padrão da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var (
		schemaErr *domain.SchemaError
		formatErr *domain.FormatError
	)

	switch {
	case errors.Is(err, dashboarding.ErrUnknownChart):
		logger.WithError(err).Warn("dashboard: gráfico desconhecido")
		apiErrors.WriteError(w, apiErrors.ErrUnknownChart, err.Error(), map[string]interface{}{
			"available": dashboarding.ChartNames,
		})
	case errors.As(err, &schemaErr):
		logger.WithError(err).Error("dashboard: planilha fora do esquema esperado")
		apiErrors.WriteError(w, apiErrors.ErrSchema, err.Error(), map[string]interface{}{
			"element": schemaErr.Element,
			"name":    schemaErr.Name,
		})
	case errors.As(err, &formatErr):
		logger.WithError(err).Error("dashboard: valor inválido na planilha")
		apiErrors.WriteError(w, apiErrors.ErrFormat, err.Error(), map[string]interface{}{
			"row":    formatErr.Row,
			"column": formatErr.Column,
			"value":  formatErr.Value,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.WithError(err).Warn("dashboard: requisição interrompida")
		apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Requisição interrompida", nil)
	default:
		logger.WithError(err).Error("dashboard: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o painel", nil)
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("Erro ao enviar resposta")
	}
}
