package reporting

import (
	"context"
	"time"

	"github.com/kitvend/sales-monitor/infrastructure/integrator/kit"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/pkg/utils"
)

// ReportRequest descreve qual relatório montar. IntervalHours tem precedência;
// na ausência de ambos os campos monta-se o relatório diário combinado
// (sem vendas ontem/hoje + queda de vendas).
type ReportRequest struct {
	IntervalHours *int
	NoSalesToday  bool
}

// Controller orquestra a listagem de aparelhos, os detectores e a montagem do
// texto final. Os erros upstream sobem sem modificação até o chamador.
type Controller struct {
	vendingIntegrator    kit.VendingIntegrator
	noSalesService       NoSalesReporter
	salesAnalyzeService  SalesAnalyzer
	noSalesMessages      *NoSalesMessageService
	salesAnalyzeMessages *SalesAnalyzeMessageService
	location             *time.Location

	now func() time.Time
}

func NewController(
	vendingIntegrator kit.VendingIntegrator,
	noSalesService NoSalesReporter,
	salesAnalyzeService SalesAnalyzer,
	noSalesMessages *NoSalesMessageService,
	salesAnalyzeMessages *SalesAnalyzeMessageService,
	cfg *config.Config,
) *Controller {
	return &Controller{
		vendingIntegrator:    vendingIntegrator,
		noSalesService:       noSalesService,
		salesAnalyzeService:  salesAnalyzeService,
		noSalesMessages:      noSalesMessages,
		salesAnalyzeMessages: salesAnalyzeMessages,
		location:             cfg.Location,
		now:                  time.Now,
	}
}

func (c *Controller) BuildReport(ctx context.Context, request ReportRequest) (string, error) {
	if request.IntervalHours != nil {
		return c.buildIntervalReport(ctx, *request.IntervalHours)
	}

	if request.NoSalesToday {
		return c.buildNoSalesReport(ctx, []time.Time{c.today()})
	}

	return c.buildDailyReport(ctx)
}

// BuildDailyReport monta o relatório diário combinado enviado pelo agendador.
func (c *Controller) BuildDailyReport(ctx context.Context) (string, error) {
	return c.buildDailyReport(ctx)
}

func (c *Controller) buildIntervalReport(ctx context.Context, intervalHours int) (string, error) {
	machines, err := c.vendingIntegrator.GetActiveMachines(ctx)
	if err != nil {
		return "", err
	}

	report, err := c.noSalesService.CreateReport(ctx, machines, intervalHours)
	if err != nil {
		return "", err
	}

	return c.noSalesMessages.CreateMessage(report), nil
}

func (c *Controller) buildNoSalesReport(ctx context.Context, days []time.Time) (string, error) {
	machines, err := c.vendingIntegrator.GetActiveMachines(ctx)
	if err != nil {
		return "", err
	}

	report, err := c.noSalesService.CreateReportForDays(ctx, machines, days)
	if err != nil {
		return "", err
	}

	return c.noSalesMessages.CreateMessage(report), nil
}

func (c *Controller) buildDailyReport(ctx context.Context) (string, error) {
	machines, err := c.vendingIntegrator.GetActiveMachines(ctx)
	if err != nil {
		return "", err
	}

	today := c.today()
	noSalesReport, err := c.noSalesService.CreateReportForDays(ctx, machines, []time.Time{today.AddDate(0, 0, -1), today})
	if err != nil {
		return "", err
	}

	declineReport, err := c.salesAnalyzeService.CreateReport(ctx, machines)
	if err != nil {
		return "", err
	}

	return CombineMessages(
		c.noSalesMessages.CreateMessage(noSalesReport),
		c.salesAnalyzeMessages.CreateMessage(declineReport),
	), nil
}

func (c *Controller) today() time.Time {
	return utils.StartOfDay(c.now().In(c.location))
}
