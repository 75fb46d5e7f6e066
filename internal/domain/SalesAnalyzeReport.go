package domain

// SalesAnalyzeItem aparece no relatório apenas para aparelhos cuja queda de
// vendas ultrapassou o threshold configurado. DeviationRatio é armazenado sem
// arredondamento; o arredondamento acontece apenas na formatação.
type SalesAnalyzeItem struct {
	VendingMachine    VendingMachine
	AverageDailySales float64
	YesterdaySales    float64
	DeviationRatio    float64
}

type SalesAnalyzeReport struct {
	Items []SalesAnalyzeItem
}

func (r SalesAnalyzeReport) IsEmpty() bool {
	return len(r.Items) == 0
}
