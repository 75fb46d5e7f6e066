package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	kitmocks "github.com/kitvend/sales-monitor/infrastructure/integrator/kit/mocks"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/kitvend/sales-monitor/internal/usecases/reporting"
	reportingmocks "github.com/kitvend/sales-monitor/internal/usecases/reporting/mocks"
	"github.com/kitvend/sales-monitor/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type previewFixture struct {
	integrator *kitmocks.MockVendingIntegrator
	noSales    *reportingmocks.MockNoSalesReporter
	handler    http.HandlerFunc
}

func newPreviewFixture(t *testing.T) previewFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{
		Detection: config.Detection{LastSaleDays: 10},
		Location:  time.UTC,
	}

	integrator := kitmocks.NewMockVendingIntegrator(ctrl)
	noSales := reportingmocks.NewMockNoSalesReporter(ctrl)
	salesAnalyze := reportingmocks.NewMockSalesAnalyzer(ctrl)

	controller := reporting.NewController(
		integrator,
		noSales,
		salesAnalyze,
		reporting.NewNoSalesMessageService(cfg),
		reporting.NewSalesAnalyzeMessageService(),
		cfg,
	)

	return previewFixture{
		integrator: integrator,
		noSales:    noSales,
		handler:    GetReportPreview(controller),
	}
}

func TestGetReportPreview(t *testing.T) {
	f := newPreviewFixture(t)

	machines := []domain.VendingMachine{{ID: 1, Name: "Café Hall Norte"}}

	f.integrator.EXPECT().GetActiveMachines(gomock.Any()).Return(machines, nil)
	f.noSales.EXPECT().
		CreateReport(gomock.Any(), machines, 48).
		Return(domain.NoSalesReport{
			Items: []domain.NoSalesItem{
				{VendingMachine: machines[0]},
			},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/reports/preview?interval=48", nil)
	recorder := httptest.NewRecorder()

	f.handler(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response reportPreviewResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.False(t, response.Empty)
	assert.Contains(t, response.Report, "Café Hall Norte")
}

func TestGetReportPreview_IntervaloInvalido(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "não numérico", query: "interval=abc"},
		{name: "zero", query: "interval=0"},
		{name: "negativo", query: "interval=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPreviewFixture(t)

			request := httptest.NewRequest(http.MethodGet, "/v1/reports/preview?"+tt.query, nil)
			recorder := httptest.NewRecorder()

			f.handler(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
			assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
		})
	}
}

func TestGetReportPreview_ErroUpstream(t *testing.T) {
	f := newPreviewFixture(t)

	upstreamErr := domain.NewUpstreamError("GetVendingMachines", errors.New("timeout"))
	f.integrator.EXPECT().GetActiveMachines(gomock.Any()).Return(nil, upstreamErr)

	request := httptest.NewRequest(http.MethodGet, "/v1/reports/preview", nil)
	recorder := httptest.NewRecorder()

	f.handler(recorder, request)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
}

func TestTriggerReportSync_ServicoIndisponivel(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/v1/jobs/report-sync", nil)
	recorder := httptest.NewRecorder()

	TriggerReportSync(nil)(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
