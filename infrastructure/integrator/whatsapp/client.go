package whatsapp

import (
	"strings"

	"github.com/pkg/errors"
	twiliosdk "github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/vfg2006/sales-report-rpa/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// MessageSender abstrai o envio de mensagens de WhatsApp.
type MessageSender interface {
	// SendMessage envia uma mensagem para o número de destino, com anexos
	// opcionais por URL pública, e retorna o SID atribuído pela API.
	SendMessage(to, body string, mediaURLs []string) (string, error)
}

// Client envia mensagens de WhatsApp através da API da Twilio.
type Client struct {
	api  *twiliosdk.RestClient
	from string
}

func NewClient(cfg config.Twilio) *Client {
	return &Client{
		api: twiliosdk.NewRestClientWithParams(twiliosdk.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		from: NormalizeNumber(cfg.WhatsAppFrom),
	}
}

func (c *Client) SendMessage(to, body string, mediaURLs []string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(c.from)
	params.SetTo(NormalizeNumber(to))
	params.SetBody(body)
	if len(mediaURLs) > 0 {
		params.SetMediaUrl(mediaURLs)
	}

	message, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return "", errors.Wrap(err, "erro ao enviar mensagem pela Twilio")
	}

	if message.Sid == nil {
		return "", nil
	}
	return *message.Sid, nil
}

// NormalizeNumber garante o prefixo "whatsapp:" exigido pela API da Twilio.
func NormalizeNumber(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
