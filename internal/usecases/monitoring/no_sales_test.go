package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/kitvend/sales-monitor/infrastructure/repository/mocks"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNoSalesService(salesRepo *mocks.MockSalesRepository, now time.Time) *NoSalesService {
	return &NoSalesService{
		salesRepo:    salesRepo,
		location:     time.UTC,
		lastSaleDays: 10,
		now:          func() time.Time { return now },
	}
}

func sale(machineID int, timestamp time.Time, amount float64) domain.Sale {
	return domain.Sale{
		VendingMachineID: machineID,
		Amount:           amount,
		Timestamp:        timestamp,
	}
}

func TestNoSalesService_CreateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	machines := []domain.VendingMachine{
		{ID: 1, Name: "Aparelho A"},
		{ID: 2, Name: "Aparelho B"},
		{ID: 3, Name: "Aparelho C"},
	}

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	saleB := now.Add(-30 * time.Hour)

	// A vendeu há 2h (qualifica na janela de 24h), B vendeu há 30h (fora da
	// janela, mas dentro do lookback), C nunca vendeu.
	mockRepo.EXPECT().
		GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return([]domain.Sale{
			sale(1, now.Add(-2*time.Hour), 150.0),
			sale(2, saleB, 90.0),
		}, nil)

	report, err := service.CreateReport(context.Background(), machines, 24)
	require.NoError(t, err)

	require.Len(t, report.Items, 2)

	assert.Equal(t, 2, report.Items[0].VendingMachine.ID)
	require.NotNil(t, report.Items[0].LastSaleTimestamp)
	assert.True(t, report.Items[0].LastSaleTimestamp.Equal(saleB))

	assert.Equal(t, 3, report.Items[1].VendingMachine.ID)
	assert.Nil(t, report.Items[1].LastSaleTimestamp)
}

func TestNoSalesService_CreateReport_LimitesDaJanela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	intervalFrom := now.Add(-24 * time.Hour)
	machines := []domain.VendingMachine{
		{ID: 1, Name: "Aparelho A"},
		{ID: 2, Name: "Aparelho B"},
	}

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	// Semântica fechada-aberta: venda exatamente no início da janela qualifica,
	// venda exatamente no instante final não.
	mockRepo.EXPECT().
		GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return([]domain.Sale{
			sale(1, intervalFrom, 50.0),
			sale(2, now, 50.0),
		}, nil)

	report, err := service.CreateReport(context.Background(), machines, 24)
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, 2, report.Items[0].VendingMachine.ID)
}

func TestNoSalesService_CreateReport_JanelaDeBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	tests := []struct {
		name          string
		intervalHours int
		wantFrom      time.Time
	}{
		{
			name:          "intervalo menor que o lookback busca pelo lookback",
			intervalHours: 24,
			wantFrom:      now.AddDate(0, 0, -10),
		},
		{
			name:          "intervalo maior que o lookback busca pelo intervalo",
			intervalHours: 300,
			wantFrom:      now.Add(-300 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFrom, gotTo time.Time
			mockRepo.EXPECT().
				GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
				DoAndReturn(func(_ context.Context, from, to time.Time, _ *int) ([]domain.Sale, error) {
					gotFrom, gotTo = from, to
					return nil, nil
				})

			_, err := service.CreateReport(context.Background(), nil, tt.intervalHours)
			require.NoError(t, err)

			assert.True(t, gotFrom.Equal(tt.wantFrom))
			assert.True(t, gotTo.Equal(now))
		})
	}
}

func TestNoSalesService_CreateReport_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	upstreamErr := domain.NewUpstreamError("GetSales", errors.New("timeout"))
	mockRepo.EXPECT().
		GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, upstreamErr)

	_, err := service.CreateReport(context.Background(), nil, 24)
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestNoSalesService_CreateReportForDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	machines := []domain.VendingMachine{
		{ID: 1, Name: "Aparelho A"},
		{ID: 2, Name: "Aparelho B"},
		{ID: 3, Name: "Aparelho C"},
	}

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	saleB := yesterday.Add(18 * time.Hour) // ontem às 18h

	// A vendeu hoje de manhã, B vendeu ontem à noite, C vendeu há cinco dias.
	mockRepo.EXPECT().
		GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return([]domain.Sale{
			sale(1, today.Add(9*time.Hour), 70.0),
			sale(2, saleB, 40.0),
			sale(3, today.AddDate(0, 0, -5), 25.0),
		}, nil)

	// Apenas o dia de hoje: B e C não venderam hoje.
	report, err := service.CreateReportForDays(context.Background(), machines, []time.Time{today})
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	assert.Equal(t, 2, report.Items[0].VendingMachine.ID)
	require.NotNil(t, report.Items[0].LastSaleTimestamp)
	assert.True(t, report.Items[0].LastSaleTimestamp.Equal(saleB))
	assert.Equal(t, 3, report.Items[1].VendingMachine.ID)
}

func TestNoSalesService_CreateReportForDays_OntemOuHoje(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	machines := []domain.VendingMachine{
		{ID: 1, Name: "Aparelho A"},
		{ID: 2, Name: "Aparelho B"},
	}

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	// Uma venda em qualquer um dos dias do conjunto já qualifica o aparelho.
	mockRepo.EXPECT().
		GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return([]domain.Sale{
			sale(1, yesterday.Add(10*time.Hour), 30.0),
		}, nil)

	report, err := service.CreateReportForDays(context.Background(), machines, []time.Time{yesterday, today})
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, 2, report.Items[0].VendingMachine.ID)
}

func TestNoSalesService_CreateReportForDays_ConjuntoVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	machines := []domain.VendingMachine{
		{ID: 1, Name: "Aparelho A"},
	}

	// Nenhuma chamada ao repositório deve acontecer.
	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	report, err := service.CreateReportForDays(context.Background(), machines, nil)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
}

func TestNoSalesService_CreateReport_SemAparelhos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := newNoSalesService(mockRepo, now)

	mockRepo.EXPECT().
		GetSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, nil)

	report, err := service.CreateReport(context.Background(), nil, 24)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
}
