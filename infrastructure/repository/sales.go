package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	kitdomain "github.com/kitvend/sales-monitor/infrastructure/integrator/kit/domain"
	"github.com/kitvend/sales-monitor/infrastructure/integrator/kit/kitclient"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/kitvend/sales-monitor/pkg/log"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales_repository.go -package=mocks

// cacheTTL limita por quanto tempo um dataset em cache pode ser reaproveitado.
const cacheTTL = 60 * time.Second

// SalesRepository serve consultas de vendas por período, com recorte opcional
// por aparelho.
type SalesRepository interface {
	GetSales(ctx context.Context, from, to time.Time, vendingMachineID *int) ([]domain.Sale, error)
}

// salesCache é a tripla (chave, timestamp, dados) trocada por inteiro a cada
// refresh. Nunca sofre merge parcial.
type salesCache struct {
	from      time.Time
	to        time.Time
	fetchedAt time.Time
	all       []domain.Sale
	byMachine map[int][]domain.Sale
}

type cachedSalesRepository struct {
	client   kitclient.Client
	location *time.Location

	// mu serializa a sequência checar-validade-e-talvez-recarregar para que
	// duas requisições concorrentes não sobrescrevam o cache uma da outra.
	mu    sync.Mutex
	cache salesCache

	now func() time.Time
}

func NewSalesRepository(client kitclient.Client, location *time.Location) SalesRepository {
	return &cachedSalesRepository{
		client:   client,
		location: location,
		now:      time.Now,
	}
}

func (r *cachedSalesRepository) GetSales(ctx context.Context, from, to time.Time, vendingMachineID *int) ([]domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isCacheValid(from, to) {
		if err := r.refreshCache(ctx, from, to); err != nil {
			return nil, err
		}
	}

	if vendingMachineID == nil {
		return copySales(r.cache.all), nil
	}

	return copySales(r.cache.byMachine[*vendingMachineID]), nil
}

// isCacheValid aceita o cache apenas para a chave (from, to) exata. Janelas
// sobrepostas ou subconjuntos da janela anterior sempre recarregam.
func (r *cachedSalesRepository) isCacheValid(from, to time.Time) bool {
	if r.cache.fetchedAt.IsZero() {
		return false
	}
	if len(r.cache.all) == 0 {
		return false
	}
	if !r.cache.from.Equal(from) || !r.cache.to.Equal(to) {
		return false
	}
	return r.now().Sub(r.cache.fetchedAt) < cacheTTL
}

func (r *cachedSalesRepository) refreshCache(ctx context.Context, from, to time.Time) error {
	resp, err := r.client.GetSales(ctx, kitclient.SalesFilter{From: from, To: to})
	if err != nil {
		return domain.NewUpstreamError("GetSales", err)
	}

	all := make([]domain.Sale, 0, len(resp.Sales))
	byMachine := make(map[int][]domain.Sale)

	for _, record := range resp.Sales {
		sale, err := r.translateSale(record)
		if err != nil {
			return domain.NewUpstreamError("GetSales", err)
		}

		all = append(all, sale)
		byMachine[sale.VendingMachineID] = append(byMachine[sale.VendingMachineID], sale)
	}

	r.cache = salesCache{
		from:      from,
		to:        to,
		fetchedAt: r.now(),
		all:       all,
		byMachine: byMachine,
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"from":  from.Format(kitdomain.WireTimestampLayout),
		"to":    to.Format(kitdomain.WireTimestampLayout),
		"sales": len(all),
	}).Debug("Cache de vendas recarregado")

	return nil
}

// translateSale valida e normaliza um registro bruto. Timestamps chegam sem
// fuso e são interpretados no fuso do projeto; valores negativos indicam
// payload corrompido e interrompem o refresh inteiro.
func (r *cachedSalesRepository) translateSale(record kitdomain.SaleRecord) (domain.Sale, error) {
	if record.Sum < 0 {
		return domain.Sale{}, fmt.Errorf("venda com valor negativo (%f) para o aparelho %d", record.Sum, record.VendingMachineID)
	}

	timestamp, err := time.ParseInLocation(kitdomain.WireTimestampLayout, record.DateTime, r.location)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("timestamp inválido %q para o aparelho %d: %w", record.DateTime, record.VendingMachineID, err)
	}

	return domain.Sale{
		VendingMachineID: record.VendingMachineID,
		Amount:           record.Sum,
		Timestamp:        timestamp,
	}, nil
}

func copySales(sales []domain.Sale) []domain.Sale {
	out := make([]domain.Sale, len(sales))
	copy(out, sales)
	return out
}
