package reporting

import (
	"context"
	"time"

	"github.com/kitvend/sales-monitor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/detectors.go -package=mocks

// NoSalesReporter define a interface do detector de ausência de vendas.
type NoSalesReporter interface {
	// CreateReport avalia a janela rolante [now - intervalHours, now)
	CreateReport(ctx context.Context, machines []domain.VendingMachine, intervalHours int) (domain.NoSalesReport, error)

	// CreateReportForDays avalia um conjunto de dias-calendário no fuso do projeto
	CreateReportForDays(ctx context.Context, machines []domain.VendingMachine, days []time.Time) (domain.NoSalesReport, error)
}

// SalesAnalyzer define a interface do detector de queda de vendas.
type SalesAnalyzer interface {
	// CreateReport compara a receita de ontem com a média da janela de baseline
	CreateReport(ctx context.Context, machines []domain.VendingMachine) (domain.SalesAnalyzeReport, error)
}
