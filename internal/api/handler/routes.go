package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/options",
			Method:  http.MethodGet,
			Handler: GetDashboardOptions(service),
		},
		{
			Path:    "/v1/dashboard/charts/:chart",
			Method:  http.MethodGet,
			Handler: GetDashboardChart(service),
		},
	}
}
