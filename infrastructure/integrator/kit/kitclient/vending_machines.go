package kitclient

import (
	"context"
	"fmt"

	kitdomain "github.com/kitvend/sales-monitor/infrastructure/integrator/kit/domain"
)

// GetVendingMachines retorna a listagem completa de aparelhos da empresa.
func (c *KitClient) GetVendingMachines(ctx context.Context) (kitdomain.VendingMachinesResponse, error) {
	var response kitdomain.VendingMachinesResponse

	if err := c.postRequest(ctx, endpointVendingMachines, nil, &response); err != nil {
		return response, err
	}

	if response.ResultCode != 0 {
		return response, fmt.Errorf("GetVendingMachines retornou ResultCode %d", response.ResultCode)
	}

	return response, nil
}
