package whatsapp

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/dumar-app/dumar-api/internal/config"
)

// ErrNotConfigured indica que faltan la URL o el token del proveedor.
var ErrNotConfigured = errors.New("la mensajería de WhatsApp no está configurada")

// PinSender envía el PIN de verificación por WhatsApp.
type PinSender interface {
	SendPin(ctx context.Context, phone, pin string) error
}

type WhatsAppService struct {
	cfg    *config.Config
	Client whatsappclient.Client
}

func New(cfg *config.Config, client whatsappclient.Client) PinSender {
	return &WhatsAppService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WhatsAppService) SendPin(ctx context.Context, phone, pin string) error {
	if !s.cfg.WhatsApp.Configured() {
		return ErrNotConfigured
	}

	return s.Client.SendTemplate(ctx, whatsappclient.TemplateParams{
		Phone: phone,
		Pin:   pin,
	})
}
