package telegram

import (
	"context"
	"strings"

	"github.com/kitvend/sales-monitor/infrastructure/integrator/telegram/telegramclient"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/notifier.go -package=mocks

// Notifier entrega o texto final do relatório ao canal do operador.
type Notifier interface {
	SendReport(ctx context.Context, text string) error
}

type TelegramService struct {
	cfg    *config.Config
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) Notifier {
	return &TelegramService{
		cfg:    cfg,
		Client: client,
	}
}

// SendReport destaca os cabeçalhos conhecidos e envia o relatório. Falhas de
// envio viram DeliveryError; o texto em si não se perde e pode ser logado pelo
// chamador.
func (s *TelegramService) SendReport(ctx context.Context, text string) error {
	if err := s.Client.SendMessage(ctx, applyHeadingBold(text)); err != nil {
		return domain.NewDeliveryError(err)
	}
	return nil
}

// applyHeadingBold envolve em marcadores de negrito as linhas que coincidem
// exatamente com um cabeçalho de seção do relatório.
func applyHeadingBold(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, heading := range domain.ReportHeadings {
			if line == heading {
				lines[i] = telegramclient.BoldPrefix + line + telegramclient.BoldSuffix
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
