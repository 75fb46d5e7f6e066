package domain

// Cabeçalhos das seções do relatório. Colaboradores fazem pós-processamento
// (negrito no transporte) por comparação exata de string, então estes valores
// precisam permanecer byte a byte idênticos entre os tipos de relatório.
const (
	NoSalesReportHeading      = "Máquinas sem vendas:"
	SalesDeclineReportHeading = "Máquinas com queda nas vendas:"
)

// ReportHeadings lista todos os cabeçalhos reconhecidos pelo formatador.
var ReportHeadings = []string{
	NoSalesReportHeading,
	SalesDeclineReportHeading,
}
