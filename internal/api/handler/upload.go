package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dumar-app/dumar-api/infrastructure/integrator/cloudinary"
	"github.com/dumar-app/dumar-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxUploadSize limita las imágenes subidas a 10 MB.
const maxUploadSize = 10 << 20

// UploadImage recibe una imagen multipart en el campo "file", la sube a
// Cloudinary y devuelve la URL segura resultante.
func UploadImage(uploader cloudinary.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := claimsFromRequest(w, r); !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El formulario multipart es inválido o excede el tamaño máximo", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Falta el campo file con la imagen", nil)
			return
		}
		defer file.Close()

		url, err := uploader.UploadImage(r.Context(), header.Filename, file)
		if err != nil {
			if errors.Is(err, cloudinary.ErrNotConfigured) {
				apiErrors.WriteError(w, apiErrors.ErrMissingConfig, "Cloudinary no está configurado", nil)
				return
			}

			logrus.WithError(err).Error("Error al subir imagen a Cloudinary")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Error al subir la imagen", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"url": url,
		})
	}
}
