package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	whatsappmocks "github.com/dumar-app/dumar-api/infrastructure/integrator/whatsapp/mocks"
	"github.com/dumar-app/dumar-api/infrastructure/repository/mocks"
	"github.com/dumar-app/dumar-api/internal/config"
	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "clave_de_prueba",
		Pin:       config.Pin{TTLMinutes: 15},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_Signup(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		email    string
		password string
		phone    string
		setup    func(profileRepo *mocks.MockProfileRepository, pinSender *whatsappmocks.MockPinSender)
		wantErr  error
	}{
		{
			name:     "alta correcta con envío de PIN",
			email:    "Ana@Example.com",
			password: "secreta123",
			phone:    "+573001112233",
			setup: func(profileRepo *mocks.MockProfileRepository, pinSender *whatsappmocks.MockPinSender) {
				profileRepo.EXPECT().
					GetProfileByEmail("ana@example.com").
					Return(nil, nil)

				profileRepo.EXPECT().
					CreateProfile(gomock.Any()).
					DoAndReturn(func(p *domain.Profile) (*domain.Profile, error) {
						assert.Equal(t, "ana@example.com", p.Email)
						assert.False(t, p.Active)
						assert.False(t, p.PinVerified)
						assert.NotEmpty(t, p.ID)
						return p, nil
					})

				profileRepo.EXPECT().
					SavePin(gomock.Any(), gomock.Len(6), gomock.Any()).
					Return(nil)

				pinSender.EXPECT().
					SendPin(gomock.Any(), "+573001112233", gomock.Len(6)).
					Return(nil)
			},
		},
		{
			name:     "email ya registrado",
			email:    "ana@example.com",
			password: "secreta123",
			phone:    "+573001112233",
			setup: func(profileRepo *mocks.MockProfileRepository, pinSender *whatsappmocks.MockPinSender) {
				profileRepo.EXPECT().
					GetProfileByEmail("ana@example.com").
					Return(&domain.Profile{ID: "p1", Email: "ana@example.com"}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:     "faltan datos obligatorios",
			email:    "",
			password: "secreta123",
			phone:    "+573001112233",
			setup:    func(profileRepo *mocks.MockProfileRepository, pinSender *whatsappmocks.MockPinSender) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "el alta sobrevive a un fallo de envío del PIN",
			email:    "ana@example.com",
			password: "secreta123",
			phone:    "+573001112233",
			setup: func(profileRepo *mocks.MockProfileRepository, pinSender *whatsappmocks.MockPinSender) {
				profileRepo.EXPECT().
					GetProfileByEmail("ana@example.com").
					Return(nil, nil)

				profileRepo.EXPECT().
					CreateProfile(gomock.Any()).
					DoAndReturn(func(p *domain.Profile) (*domain.Profile, error) {
						return p, nil
					})

				profileRepo.EXPECT().
					SavePin(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				pinSender.EXPECT().
					SendPin(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("proveedor caído"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := mocks.NewMockProfileRepository(ctrl)
			pinSender := whatsappmocks.NewMockPinSender(ctrl)
			tt.setup(profileRepo, pinSender)

			service := NewService(profileRepo, pinSender, testConfig())

			profile, err := service.Signup(context.Background(), tt.email, tt.password, tt.phone)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, profile)
		})
	}
}

func TestService_Login(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	passwordHash := hashPassword(t, "secreta123")

	tests := []struct {
		name     string
		email    string
		password string
		profile  *domain.Profile
		wantErr  error
	}{
		{
			name:     "login correcto emite token",
			email:    "ana@example.com",
			password: "secreta123",
			profile: &domain.Profile{
				ID:           "p1",
				Email:        "ana@example.com",
				PasswordHash: passwordHash,
				PinVerified:  true,
				Active:       true,
			},
		},
		{
			name:     "contraseña incorrecta",
			email:    "ana@example.com",
			password: "otra",
			profile: &domain.Profile{
				ID:           "p1",
				Email:        "ana@example.com",
				PasswordHash: passwordHash,
				PinVerified:  true,
				Active:       true,
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "PIN sin verificar bloquea el login",
			email:    "ana@example.com",
			password: "secreta123",
			profile: &domain.Profile{
				ID:           "p1",
				Email:        "ana@example.com",
				PasswordHash: passwordHash,
				PinVerified:  false,
			},
			wantErr: ErrPinNotVerified,
		},
		{
			name:     "usuario no encontrado",
			email:    "nadie@example.com",
			password: "secreta123",
			profile:  nil,
			wantErr:  ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := mocks.NewMockProfileRepository(ctrl)
			pinSender := whatsappmocks.NewMockPinSender(ctrl)

			profileRepo.EXPECT().
				GetProfileByEmail(tt.email).
				Return(tt.profile, nil)

			service := NewService(profileRepo, pinSender, testConfig())

			token, err := service.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// El token emitido debe pasar la validación del propio servicio
			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, "p1", claims.UserID)
			assert.Equal(t, "ana@example.com", claims.UserEmail)
		})
	}
}

func TestService_VerifyPin(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recent := time.Now().Add(-1 * time.Minute)
	stale := time.Now().Add(-30 * time.Minute)

	tests := []struct {
		name    string
		pin     string
		profile *domain.Profile
		setup   func(profileRepo *mocks.MockProfileRepository)
		wantErr error
	}{
		{
			name: "PIN correcto activa la cuenta",
			pin:  "123456",
			profile: &domain.Profile{
				ID:        "p1",
				Email:     "ana@example.com",
				Pin:       "123456",
				PinSentAt: &recent,
			},
			setup: func(profileRepo *mocks.MockProfileRepository) {
				profileRepo.EXPECT().MarkPinVerified("p1").Return(nil)
			},
		},
		{
			name: "PIN incorrecto",
			pin:  "000000",
			profile: &domain.Profile{
				ID:        "p1",
				Email:     "ana@example.com",
				Pin:       "123456",
				PinSentAt: &recent,
			},
			setup:   func(profileRepo *mocks.MockProfileRepository) {},
			wantErr: ErrInvalidPin,
		},
		{
			name: "PIN caducado",
			pin:  "123456",
			profile: &domain.Profile{
				ID:        "p1",
				Email:     "ana@example.com",
				Pin:       "123456",
				PinSentAt: &stale,
			},
			setup:   func(profileRepo *mocks.MockProfileRepository) {},
			wantErr: ErrPinExpired,
		},
		{
			name: "verificar dos veces es idempotente",
			pin:  "123456",
			profile: &domain.Profile{
				ID:          "p1",
				Email:       "ana@example.com",
				Pin:         "123456",
				PinVerified: true,
			},
			setup: func(profileRepo *mocks.MockProfileRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := mocks.NewMockProfileRepository(ctrl)
			pinSender := whatsappmocks.NewMockPinSender(ctrl)

			profileRepo.EXPECT().
				GetProfileByEmail("ana@example.com").
				Return(tt.profile, nil)

			tt.setup(profileRepo)

			service := NewService(profileRepo, pinSender, testConfig())

			err := service.VerifyPin("ana@example.com", tt.pin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ResendPin(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileRepo := mocks.NewMockProfileRepository(ctrl)
	pinSender := whatsappmocks.NewMockPinSender(ctrl)

	profileRepo.EXPECT().
		GetProfileByEmail("ana@example.com").
		Return(&domain.Profile{ID: "p1", Email: "ana@example.com", Phone: "+573001112233"}, nil)

	var savedPin string
	profileRepo.EXPECT().
		SavePin("p1", gomock.Len(6), gomock.Any()).
		DoAndReturn(func(profileID, pin string, sentAt time.Time) error {
			savedPin = pin
			return nil
		})

	pinSender.EXPECT().
		SendPin(gomock.Any(), "+573001112233", gomock.Len(6)).
		DoAndReturn(func(ctx context.Context, phone, pin string) error {
			// El PIN enviado debe ser el mismo que se persistió
			assert.Equal(t, savedPin, pin)
			return nil
		})

	service := NewService(profileRepo, pinSender, testConfig())

	err := service.ResendPin(context.Background(), "ana@example.com")
	assert.NoError(t, err)
}
