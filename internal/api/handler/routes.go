package handler

import (
	"net/http"

	"github.com/kitvend/sales-monitor/internal/api/handler/router"
	"github.com/kitvend/sales-monitor/internal/scheduler"
	"github.com/kitvend/sales-monitor/internal/usecases/reporting"
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

func Reports(controller *reporting.Controller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/preview",
			Method:  http.MethodGet,
			Handler: GetReportPreview(controller),
		},
	}
}

func Jobs(syncService *scheduler.ReportSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/report-sync",
			Method:  http.MethodPost,
			Handler: TriggerReportSync(syncService),
		},
	}
}
