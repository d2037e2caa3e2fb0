package whatsappclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dumar-app/dumar-api/internal/config"
)

// Client habla con la Cloud API de WhatsApp para enviar mensajes de plantilla.
type Client interface {
	SendTemplate(ctx context.Context, params TemplateParams) error
}

type WhatsAppClient struct {
	httpClient *resty.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	restyClient := resty.New()
	restyClient.
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.WhatsApp.APIToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WhatsAppClient{
		httpClient: restyClient,
		config:     cfg,
	}
}

// TemplateParams son los valores que rellenan la plantilla de autenticación:
// el PIN y el teléfono van en el cuerpo, el token en el botón de URL.
type TemplateParams struct {
	Phone string
	Pin   string
}

// ProviderError conserva el estado HTTP devuelto por el proveedor para que
// la capa HTTP pueda propagarlo tal cual.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("error del proveedor de WhatsApp: status=%d, mensaje=%s", e.StatusCode, e.Message)
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *WhatsAppClient) SendTemplate(ctx context.Context, params TemplateParams) error {
	// La Cloud API espera el número sin el prefijo "+"
	to := strings.TrimPrefix(params.Phone, "+")

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template": map[string]any{
			"name": c.config.WhatsApp.TemplateName,
			"language": map[string]any{
				"code": c.config.WhatsApp.TemplateLang,
			},
			"components": []map[string]any{
				{
					"type": "body",
					"parameters": []map[string]any{
						{"type": "text", "text": params.Pin},
						{"type": "text", "text": params.Phone},
					},
				},
				{
					"type":     "button",
					"sub_type": "url",
					"index":    "0",
					"parameters": []map[string]any{
						{"type": "text", "text": c.config.WhatsApp.ButtonToken},
					},
				},
			},
		},
	}

	respErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(respErr).
		Post(c.config.WhatsApp.APIURL)
	if err != nil {
		return err
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return &ProviderError{
			StatusCode: resp.StatusCode(),
			Message:    respErr.Error.Message,
		}
	}

	return nil
}
