package kit

import (
	"context"
	"strings"

	"github.com/kitvend/sales-monitor/infrastructure/integrator/kit/kitclient"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks

// VendingIntegrator lista os aparelhos monitoráveis da frota.
type VendingIntegrator interface {
	GetActiveMachines(ctx context.Context) ([]domain.VendingMachine, error)
}

type KitService struct {
	cfg    *config.Config
	Client kitclient.Client
}

func New(cfg *config.Config, client kitclient.Client) VendingIntegrator {
	return &KitService{
		cfg:    cfg,
		Client: client,
	}
}

// GetActiveMachines traduz a listagem upstream para o modelo de domínio,
// descartando aparelhos cujo nome contém alguma stop word configurada
// (aparelhos de escritório e de parceiros não entram nos alertas).
func (s *KitService) GetActiveMachines(ctx context.Context) ([]domain.VendingMachine, error) {
	resp, err := s.Client.GetVendingMachines(ctx)
	if err != nil {
		return nil, domain.NewUpstreamError("GetVendingMachines", err)
	}

	machines := make([]domain.VendingMachine, 0, len(resp.VendingMachines))
	for _, record := range resp.VendingMachines {
		if s.hasStopWord(record.Name) {
			continue
		}

		machines = append(machines, domain.VendingMachine{
			ID:   record.ID,
			Name: record.Name,
		})
	}

	return machines, nil
}

func (s *KitService) hasStopWord(name string) bool {
	for _, word := range s.cfg.Detection.MachineStopWords {
		if word == "" {
			continue
		}
		if strings.Contains(name, word) {
			return true
		}
	}
	return false
}
