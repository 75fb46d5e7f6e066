package kitclient

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestEnvelope struct {
	Auth   auth              `json:"Auth"`
	Filter map[string]string `json:"Filter"`
}

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Kit: config.Kit{
			BaseURL:   baseURL,
			CompanyID: "1042",
			Login:     "operador",
			Password:  "segredo",
		},
	}
}

func TestKitClient_GetVendingMachines(t *testing.T) {
	var received requestEnvelope

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/GetVendingMachines", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		fmt.Fprint(w, `{
			"ResultCode": 0,
			"VendingMachines": [
				{"VendingMachineId": 1, "VendingMachineName": "Café Hall Norte", "CompanyId": 1042},
				{"VendingMachineId": 2, "VendingMachineName": "Snack Recepção", "CompanyId": 1042}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	response, err := client.GetVendingMachines(context.Background())
	require.NoError(t, err)

	require.Len(t, response.VendingMachines, 2)
	assert.Equal(t, 1, response.VendingMachines[0].ID)
	assert.Equal(t, "Café Hall Norte", response.VendingMachines[0].Name)

	// Envelope de autenticação: Sign = md5(companyId + password + requestId).
	assert.Equal(t, "1042", received.Auth.CompanyID)
	assert.Equal(t, "operador", received.Auth.UserLogin)
	wantSign := fmt.Sprintf("%x", md5.Sum(
		[]byte(fmt.Sprintf("1042segredo%d", received.Auth.RequestID)),
	))
	assert.Equal(t, wantSign, received.Auth.Sign)
}

func TestKitClient_RequestIDNuncaRepete(t *testing.T) {
	requestIDs := make([]int64, 0, 2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var received requestEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		requestIDs = append(requestIDs, received.Auth.RequestID)

		fmt.Fprint(w, `{"ResultCode": 0, "VendingMachines": []}`)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.GetVendingMachines(context.Background())
	require.NoError(t, err)
	_, err = client.GetVendingMachines(context.Background())
	require.NoError(t, err)

	require.Len(t, requestIDs, 2)
	assert.Greater(t, requestIDs[1], requestIDs[0])
}

func TestKitClient_GetSales(t *testing.T) {
	var received requestEnvelope

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/GetSales", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		fmt.Fprint(w, `{
			"ResultCode": 0,
			"Sales": [
				{"VendingMachine": 1, "VendingMachineName": "Café Hall Norte", "GoodsName": "Espresso", "Sum": 7.5, "DateTime": "15.01.2024 09:30:00"}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	machineID := 7
	filter := SalesFilter{
		From:             time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		To:               time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		VendingMachineID: &machineID,
	}

	response, err := client.GetSales(context.Background(), filter)
	require.NoError(t, err)

	require.Len(t, response.Sales, 1)
	assert.Equal(t, 1, response.Sales[0].VendingMachineID)
	assert.Equal(t, 7.5, response.Sales[0].Sum)
	assert.Equal(t, "15.01.2024 09:30:00", response.Sales[0].DateTime)

	// As datas do filtro saem no mesmo layout dos timestamps de resposta.
	assert.Equal(t, "06.01.2024 00:00:00", received.Filter["UpDate"])
	assert.Equal(t, "16.01.2024 00:00:00", received.Filter["ToDate"])
	assert.Equal(t, "1042", received.Filter["CompanyId"])
	assert.Equal(t, "7", received.Filter["VendingMachineId"])
}

func TestKitClient_GetSales_SemRecorteDeAparelho(t *testing.T) {
	var received requestEnvelope

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, `{"ResultCode": 0, "Sales": []}`)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.GetSales(context.Background(), SalesFilter{
		From: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, present := received.Filter["VendingMachineId"]
	assert.False(t, present)
}

func TestKitClient_GetSales_ResultCodeDiferenteDeZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ResultCode": 13, "Sales": []}`)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.GetSales(context.Background(), SalesFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ResultCode 13")
}

func TestKitClient_StatusHTTPDiferenteDe200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.GetVendingMachines(context.Background())
	require.Error(t, err)
}
