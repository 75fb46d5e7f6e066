package kitclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	kitdomain "github.com/kitvend/sales-monitor/infrastructure/integrator/kit/domain"
)

type SalesFilter struct {
	From             time.Time
	To               time.Time
	VendingMachineID *int
}

// GetSales retorna as vendas do período informado. A API Kit espera as datas
// do filtro no mesmo layout dos timestamps de resposta.
func (c *KitClient) GetSales(ctx context.Context, filter SalesFilter) (kitdomain.SalesResponse, error) {
	var response kitdomain.SalesResponse

	body := map[string]interface{}{
		"Filter": c.buildFilter(filter),
	}

	if err := c.postRequest(ctx, endpointSales, body, &response); err != nil {
		return response, err
	}

	if response.ResultCode != 0 {
		return response, fmt.Errorf("GetSales retornou ResultCode %d", response.ResultCode)
	}

	return response, nil
}

func (c *KitClient) buildFilter(filter SalesFilter) map[string]string {
	filterObj := map[string]string{
		"UpDate":    filter.From.Format(kitdomain.WireTimestampLayout),
		"ToDate":    filter.To.Format(kitdomain.WireTimestampLayout),
		"CompanyId": c.config.Kit.CompanyID,
	}

	if filter.VendingMachineID != nil {
		filterObj["VendingMachineId"] = strconv.Itoa(*filter.VendingMachineID)
	}

	return filterObj
}
