package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/kitvend/sales-monitor/pkg/utils"
)

// Layout de apresentação dos timestamps nos relatórios.
const presentationTimestampLayout = "02/01/2006 15:04"

// NoSalesMessageService formata o relatório de aparelhos sem vendas.
type NoSalesMessageService struct {
	lastSaleDays int
}

func NewNoSalesMessageService(cfg *config.Config) *NoSalesMessageService {
	return &NoSalesMessageService{
		lastSaleDays: cfg.Detection.LastSaleDays,
	}
}

// CreateMessage renderiza a seção do relatório: linha de cabeçalho seguida de
// um bloco por item. Relatório vazio não contribui com nada, nem com o
// cabeçalho.
func (s *NoSalesMessageService) CreateMessage(report domain.NoSalesReport) string {
	if report.IsEmpty() {
		return ""
	}

	parts := []string{domain.NoSalesReportHeading}
	for _, item := range report.Items {
		parts = append(parts, fmt.Sprintf("%s\n%s", item.VendingMachine.Name, s.formatLastSale(item.LastSaleTimestamp)))
	}

	return strings.Join(parts, "\n\n")
}

func (s *NoSalesMessageService) formatLastSale(timestamp *time.Time) string {
	if timestamp == nil {
		return fmt.Sprintf("Última venda: há mais de %d dias", s.lastSaleDays)
	}

	return fmt.Sprintf("Última venda: %s", timestamp.Format(presentationTimestampLayout))
}

// SalesAnalyzeMessageService formata o relatório de queda de vendas. O
// percentual é arredondado apenas aqui, nunca no item armazenado.
type SalesAnalyzeMessageService struct{}

func NewSalesAnalyzeMessageService() *SalesAnalyzeMessageService {
	return &SalesAnalyzeMessageService{}
}

func (s *SalesAnalyzeMessageService) CreateMessage(report domain.SalesAnalyzeReport) string {
	if report.IsEmpty() {
		return ""
	}

	parts := []string{domain.SalesDeclineReportHeading}
	for _, item := range report.Items {
		parts = append(parts, fmt.Sprintf(
			"%s\nQueda de %d%% nas vendas de ontem",
			item.VendingMachine.Name,
			utils.RatioToPercent(item.DeviationRatio),
		))
	}

	return strings.Join(parts, "\n\n")
}

// CombineMessages junta as seções não vazias com uma linha em branco entre
// elas. Seções vazias não geram cabeçalho nem separador.
func CombineMessages(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		if section != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, "\n\n")
}
