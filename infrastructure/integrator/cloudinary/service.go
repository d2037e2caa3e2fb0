package cloudinary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/pkg/utils"
)

// ErrNotConfigured indica que faltan el cloud name o el preset de subida.
var ErrNotConfigured = errors.New("cloudinary no está configurado")

// Uploader sube imágenes y devuelve la URL pública resultante.
type Uploader interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader) (string, error)
}

type CloudinaryService struct {
	cfg        *config.Config
	httpClient *resty.Client
}

func New(cfg *config.Config) Uploader {
	restyClient := resty.New()
	restyClient.SetTimeout(30 * time.Second)

	return &CloudinaryService{
		cfg:        cfg,
		httpClient: restyClient,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type uploadError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadImage hace una subida sin firmar con el preset configurado. El
// public_id se genera en el servidor para evitar colisiones de nombres.
func (s *CloudinaryService) UploadImage(ctx context.Context, fileName string, file io.Reader) (string, error) {
	if !s.cfg.Cloudinary.Configured() {
		return "", ErrNotConfigured
	}

	publicID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	uploadURL := fmt.Sprintf(
		"https://api.cloudinary.com/v1_1/%s/image/upload",
		s.cfg.Cloudinary.CloudName,
	)

	result := new(uploadResponse)
	respErr := new(uploadError)

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", fileName, file).
		SetFormData(map[string]string{
			"upload_preset": s.cfg.Cloudinary.UploadPreset,
			"public_id":     publicID,
		}).
		SetResult(result).
		SetError(respErr).
		Post(uploadURL)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", errors.Errorf("error al subir la imagen: status=%d, mensaje=%s", resp.StatusCode(), respErr.Error.Message)
	}

	return result.SecureURL, nil
}
