package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/kitvend/sales-monitor/internal/scheduler"
	"github.com/kitvend/sales-monitor/internal/usecases/reporting"
	"github.com/kitvend/sales-monitor/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type reportPreviewResponse struct {
	Report string `json:"report"`
	Empty  bool   `json:"empty"`
}

// GetReportPreview monta o relatório solicitado e o devolve sem enviar ao
// canal do operador. Query params: interval (horas) ou no_sales_today=true;
// sem ambos, monta o relatório diário combinado.
func GetReportPreview(controller *reporting.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := reporting.ReportRequest{}

		if rawInterval := r.URL.Query().Get("interval"); rawInterval != "" {
			interval, err := strconv.Atoi(rawInterval)
			if err != nil || interval <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "interval deve ser um inteiro positivo", nil)
				return
			}
			request.IntervalHours = &interval
		}

		if r.URL.Query().Get("no_sales_today") == "true" {
			request.NoSalesToday = true
		}

		message, err := controller.BuildReport(r.Context(), request)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o relatório")

			if domain.IsUpstreamError(err) {
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reportPreviewResponse{
			Report: message,
			Empty:  message == "",
		}); err != nil {
			logrus.WithError(err).Error("Erro ao serializar a resposta do relatório")
		}
	}
}

type triggerSyncResponse struct {
	Status string `json:"status"`
}

// TriggerReportSync dispara manualmente o ciclo de montagem e envio do
// relatório diário.
func TriggerReportSync(syncService *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de envio de relatórios não disponível", nil)
			return
		}

		if syncService.IsRunning() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envio de relatório já está em execução", nil)
			return
		}

		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(triggerSyncResponse{Status: "started"}); err != nil {
			logrus.WithError(err).Error("Erro ao serializar a resposta do disparo manual")
		}
	}
}
