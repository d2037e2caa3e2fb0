package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp"
	"github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SendWhatsAppRequest struct {
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}

// SendWhatsApp envía una plantilla con el PIN al número indicado. Si el
// proveedor rechaza la petición, el estado HTTP del proveedor se propaga tal
// cual al cliente.
func SendWhatsApp(sender whatsapp.PinSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendWhatsAppRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if req.Phone == "" || req.Pin == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "phone y pin son obligatorios", nil)
			return
		}

		if err := sender.SendPin(r.Context(), req.Phone, req.Pin); err != nil {
			if errors.Is(err, whatsapp.ErrNotConfigured) {
				apiErrors.WriteError(w, apiErrors.ErrMissingConfig, "La mensajería de WhatsApp no está configurada", nil)
				return
			}

			var providerErr *whatsappclient.ProviderError
			if errors.As(err, &providerErr) {
				apiErrors.WriteErrorWithStatus(w, providerErr.StatusCode, apiErrors.ErrExternalService, providerErr.Message, nil)
				return
			}

			logrus.WithError(err).Error("Error al enviar mensaje de WhatsApp")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Error al enviar mensaje de WhatsApp", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Mensaje enviado",
		})
	}
}
