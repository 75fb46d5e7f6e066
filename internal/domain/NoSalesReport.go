package domain

import "time"

// NoSalesItem aparece no relatório para cada aparelho sem venda qualificada na
// janela de observação. LastSaleTimestamp nulo significa que nenhuma venda foi
// encontrada nem dentro da janela estendida de lookback.
type NoSalesItem struct {
	VendingMachine    VendingMachine
	LastSaleTimestamp *time.Time
}

type NoSalesReport struct {
	Items []NoSalesItem
}

func (r NoSalesReport) IsEmpty() bool {
	return len(r.Items) == 0
}
