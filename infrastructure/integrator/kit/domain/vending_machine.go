package domain

// VendingMachineRecord é o registro de aparelho como retornado pelo endpoint
// GetVendingMachines da API Kit.
type VendingMachineRecord struct {
	ID        int    `json:"VendingMachineId"`
	Name      string `json:"VendingMachineName"`
	CompanyID int    `json:"CompanyId"`
}

type VendingMachinesResponse struct {
	ResultCode      int                    `json:"ResultCode"`
	VendingMachines []VendingMachineRecord `json:"VendingMachines"`
}
