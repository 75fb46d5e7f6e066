package kitclient

import (
	"bytes"
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	kitdomain "github.com/kitvend/sales-monitor/infrastructure/integrator/kit/domain"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	endpointVendingMachines = "GetVendingMachines"
	endpointSales           = "GetSales"
)

type Client interface {
	GetVendingMachines(ctx context.Context) (kitdomain.VendingMachinesResponse, error)
	GetSales(ctx context.Context, filter SalesFilter) (kitdomain.SalesResponse, error)
}

type KitClient struct {
	httpClient *http.Client
	config     *config.Config

	// requestCounter alimenta o RequestId exigido pela assinatura da API.
	// Inicia no relógio em nanossegundos para nunca repetir entre execuções.
	requestCounter atomic.Int64
}

// NewClient cria uma nova instância do cliente da API Kit.
func NewClient(cfg *config.Config) Client {
	client := &KitClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
	client.requestCounter.Store(time.Now().UnixNano())

	return client
}

type auth struct {
	CompanyID string `json:"CompanyId"`
	RequestID int64  `json:"RequestId"`
	UserLogin string `json:"UserLogin"`
	Sign      string `json:"Sign"`
}

// buildAuth monta o envelope de autenticação da API Kit. A assinatura é o MD5
// de companyId+password+requestId.
func (c *KitClient) buildAuth() auth {
	requestID := c.requestCounter.Add(1)
	sign := fmt.Sprintf("%x", md5.Sum(
		[]byte(fmt.Sprintf("%s%s%d", c.config.Kit.CompanyID, c.config.Kit.Password, requestID)),
	))

	return auth{
		CompanyID: c.config.Kit.CompanyID,
		RequestID: requestID,
		UserLogin: c.config.Kit.Login,
		Sign:      sign,
	}
}

// postRequest executa a chamada POST e decodifica a resposta em out. A API Kit
// usa POST com corpo JSON para todos os endpoints, inclusive consultas.
func (c *KitClient) postRequest(ctx context.Context, endpoint string, body map[string]interface{}, out interface{}) error {
	if body == nil {
		body = map[string]interface{}{}
	}
	body["Auth"] = c.buildAuth()

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	url := fmt.Sprintf("%s/%s", c.config.Kit.BaseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}
