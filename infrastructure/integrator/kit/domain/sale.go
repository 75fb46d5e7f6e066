package domain

// WireTimestampLayout é o formato de data/hora usado pela API Kit em todos os
// campos de timestamp. Os valores chegam sem informação de fuso horário.
const WireTimestampLayout = "02.01.2006 15:04:05"

// SaleRecord é o registro bruto de venda como retornado pelo endpoint GetSales.
// DateTime permanece como string; a conversão para o fuso do projeto acontece
// no repositório de vendas.
type SaleRecord struct {
	VendingMachineID   int     `json:"VendingMachine"`
	VendingMachineName string  `json:"VendingMachineName"`
	GoodsName          string  `json:"GoodsName"`
	Sum                float64 `json:"Sum"`
	DateTime           string  `json:"DateTime"`
}

type SalesResponse struct {
	ResultCode int          `json:"ResultCode"`
	Sales      []SaleRecord `json:"Sales"`
}
