package telegramclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const baseURL = "https://api.telegram.org"

type Client interface {
	SendMessage(ctx context.Context, text string) error
}

type TelegramClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do Telegram.
func NewClient(cfg *config.Config) Client {
	return &TelegramClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage envia o texto como citação MarkdownV2 para o chat configurado.
// Todo o escaping exigido pelo transporte acontece aqui, não no montador do
// relatório.
func (c *TelegramClient) SendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.config.Telegram.ChatID,
		Text:      FormatQuoteMarkdownV2(text),
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a mensagem")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", baseURL, c.config.Telegram.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if !response.OK {
		return errors.Errorf("API do Telegram recusou a mensagem: %s", response.Description)
	}

	return nil
}
