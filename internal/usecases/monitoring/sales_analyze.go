package monitoring

import (
	"context"
	"time"

	"github.com/kitvend/sales-monitor/infrastructure/repository"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/kitvend/sales-monitor/pkg/utils"
)

// SalesAnalyzeService compara a receita de ontem de cada aparelho com a média
// diária da janela de baseline. Aparelhos sem nenhuma venda ontem ficam de
// fora: "parou de vender" é assunto do detector de ausência de vendas, não
// deste.
type SalesAnalyzeService struct {
	salesRepo        repository.SalesRepository
	location         *time.Location
	daysForAverage   int
	declineThreshold float64

	now func() time.Time
}

func NewSalesAnalyzeService(salesRepo repository.SalesRepository, cfg *config.Config) *SalesAnalyzeService {
	return &SalesAnalyzeService{
		salesRepo:        salesRepo,
		location:         cfg.Location,
		daysForAverage:   cfg.Detection.DaysForAverage,
		declineThreshold: cfg.Detection.DeclineThreshold,
		now:              time.Now,
	}
}

func (s *SalesAnalyzeService) CreateReport(ctx context.Context, machines []domain.VendingMachine) (domain.SalesAnalyzeReport, error) {
	now := s.now().In(s.location)
	today := utils.StartOfDay(now)
	from := today.AddDate(0, 0, -s.daysForAverage)
	to := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	sales, err := s.salesRepo.GetSales(ctx, from, to, nil)
	if err != nil {
		return domain.SalesAnalyzeReport{}, err
	}

	salesByMachine := groupSalesByMachine(sales)

	items := make([]domain.SalesAnalyzeItem, 0)
	for _, machine := range machines {
		dayTotals := sumSalesByDay(salesByMachine[machine.ID], from, to)

		// Divide pelo tamanho configurado da janela, não pela quantidade de
		// dias com vendas: dias zerados puxam a média para baixo.
		var baselineTotal float64
		for day, total := range dayTotals {
			if day.Before(today) {
				baselineTotal += total
			}
		}
		average := baselineTotal / float64(s.daysForAverage)
		yesterdayTotal := dayTotals[yesterday]

		if average <= 0 {
			continue
		}

		if yesterdayTotal <= 0 {
			continue
		}

		if yesterdayTotal >= average*s.declineThreshold {
			continue
		}

		items = append(items, domain.SalesAnalyzeItem{
			VendingMachine:    machine,
			AverageDailySales: average,
			YesterdaySales:    yesterdayTotal,
			DeviationRatio:    (average - yesterdayTotal) / average,
		})
	}

	return domain.SalesAnalyzeReport{Items: items}, nil
}

func groupSalesByMachine(sales []domain.Sale) map[int][]domain.Sale {
	grouped := make(map[int][]domain.Sale)
	for _, sale := range sales {
		grouped[sale.VendingMachineID] = append(grouped[sale.VendingMachineID], sale)
	}
	return grouped
}

// sumSalesByDay atribui cada venda ao dia-calendário local que contém seu
// timestamp e acumula os totais. Vendas fora de [from, to) são descartadas.
func sumSalesByDay(sales []domain.Sale, from, to time.Time) map[time.Time]float64 {
	totals := make(map[time.Time]float64)
	for _, sale := range sales {
		if sale.Timestamp.Before(from) || !sale.Timestamp.Before(to) {
			continue
		}
		totals[utils.StartOfDay(sale.Timestamp)] += sale.Amount
	}
	return totals
}
