package monitoring

import (
	"context"
	"time"

	"github.com/kitvend/sales-monitor/infrastructure/repository"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/kitvend/sales-monitor/pkg/utils"
)

// NoSalesService detecta aparelhos sem nenhuma venda qualificada na janela de
// observação, em dois modos: intervalo rolante de horas ou conjunto de
// dias-calendário no fuso do projeto.
type NoSalesService struct {
	salesRepo    repository.SalesRepository
	location     *time.Location
	lastSaleDays int

	now func() time.Time
}

func NewNoSalesService(salesRepo repository.SalesRepository, cfg *config.Config) *NoSalesService {
	return &NoSalesService{
		salesRepo:    salesRepo,
		location:     cfg.Location,
		lastSaleDays: cfg.Detection.LastSaleDays,
		now:          time.Now,
	}
}

// CreateReport avalia a janela rolante [now - intervalHours, now). Uma única
// consulta dimensionada para a maior das duas janelas cobre tanto o teste de
// qualificação quanto a busca da última venda.
func (s *NoSalesService) CreateReport(ctx context.Context, machines []domain.VendingMachine, intervalHours int) (domain.NoSalesReport, error) {
	now := s.now().In(s.location)
	intervalFrom := now.Add(-time.Duration(intervalHours) * time.Hour)
	lookbackFrom := now.AddDate(0, 0, -s.lastSaleDays)

	fetchFrom := lookbackFrom
	if intervalFrom.Before(fetchFrom) {
		fetchFrom = intervalFrom
	}

	sales, err := s.salesRepo.GetSales(ctx, fetchFrom, now, nil)
	if err != nil {
		return domain.NoSalesReport{}, err
	}

	hasQualifyingSale := make(map[int]bool)
	for _, sale := range sales {
		// Semântica fechada-aberta: from <= t < now.
		if !sale.Timestamp.Before(intervalFrom) && sale.Timestamp.Before(now) {
			hasQualifyingSale[sale.VendingMachineID] = true
		}
	}

	return s.buildReport(machines, hasQualifyingSale, lastSaleByMachine(sales)), nil
}

// CreateReportForDays avalia um conjunto finito de dias-calendário. Um
// conjunto vazio significa "nada a verificar" e produz relatório vazio, não
// "todos os aparelhos qualificam".
func (s *NoSalesService) CreateReportForDays(ctx context.Context, machines []domain.VendingMachine, days []time.Time) (domain.NoSalesReport, error) {
	if len(days) == 0 {
		return domain.NoSalesReport{}, nil
	}

	now := s.now().In(s.location)
	lookbackFrom := now.AddDate(0, 0, -s.lastSaleDays)

	sales, err := s.salesRepo.GetSales(ctx, lookbackFrom, now, nil)
	if err != nil {
		return domain.NoSalesReport{}, err
	}

	daySet := make(map[time.Time]struct{}, len(days))
	for _, day := range days {
		daySet[utils.StartOfDay(day.In(s.location))] = struct{}{}
	}

	hasQualifyingSale := make(map[int]bool)
	for _, sale := range sales {
		saleDay := utils.StartOfDay(sale.Timestamp)
		if _, ok := daySet[saleDay]; ok {
			hasQualifyingSale[sale.VendingMachineID] = true
		}
	}

	return s.buildReport(machines, hasQualifyingSale, lastSaleByMachine(sales)), nil
}

// buildReport preserva a ordem de entrada dos aparelhos. Aparelhos com venda
// qualificada simplesmente não aparecem no resultado.
func (s *NoSalesService) buildReport(
	machines []domain.VendingMachine,
	hasQualifyingSale map[int]bool,
	lastSales map[int]time.Time,
) domain.NoSalesReport {
	items := make([]domain.NoSalesItem, 0)

	for _, machine := range machines {
		if hasQualifyingSale[machine.ID] {
			continue
		}

		var lastSaleTimestamp *time.Time
		if lastSale, ok := lastSales[machine.ID]; ok {
			lastSaleTimestamp = &lastSale
		}

		items = append(items, domain.NoSalesItem{
			VendingMachine:    machine,
			LastSaleTimestamp: lastSaleTimestamp,
		})
	}

	return domain.NoSalesReport{Items: items}
}

func lastSaleByMachine(sales []domain.Sale) map[int]time.Time {
	lastSales := make(map[int]time.Time)
	for _, sale := range sales {
		if current, ok := lastSales[sale.VendingMachineID]; !ok || sale.Timestamp.After(current) {
			lastSales[sale.VendingMachineID] = sale.Timestamp
		}
	}
	return lastSales
}
