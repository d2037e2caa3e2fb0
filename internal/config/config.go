package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	WhatsApp    WhatsApp    `mapstructure:",squash"`
	Cloudinary  Cloudinary  `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
	Pin         Pin         `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type WhatsApp struct {
	APIURL       string `mapstructure:"whatsapp_api_url"`
	APIToken     string `mapstructure:"whatsapp_api_token"`
	TemplateName string `mapstructure:"whatsapp_template_name"`
	TemplateLang string `mapstructure:"whatsapp_template_lang"`
	ButtonToken  string `mapstructure:"whatsapp_button_token"`
}

// Configured indica si la mensajería tiene URL y token. Sin ellos el
// endpoint de envío responde 500 con mensaje descriptivo.
func (w WhatsApp) Configured() bool {
	return w.APIURL != "" && w.APIToken != ""
}

type Cloudinary struct {
	CloudName    string `mapstructure:"cloudinary_cloud_name"`
	UploadPreset string `mapstructure:"cloudinary_upload_preset"`
}

func (c Cloudinary) Configured() bool {
	return c.CloudName != "" && c.UploadPreset != ""
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type MetricsSync struct {
	CronSchedule string `mapstructure:"metrics_sync_cron"`
	Enabled      bool   `mapstructure:"metrics_sync_enabled"`
}

type Pin struct {
	TTLMinutes int `mapstructure:"pin_ttl_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dumar")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("WHATSAPP_API_URL", "")
	viper.SetDefault("WHATSAPP_API_TOKEN", "")
	viper.SetDefault("WHATSAPP_TEMPLATE_NAME", "dumar_auth")
	viper.SetDefault("WHATSAPP_TEMPLATE_LANG", "es")
	viper.SetDefault("WHATSAPP_BUTTON_TOKEN", "token123")

	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_UPLOAD_PRESET", "")

	// Recalculo nocturno de métricas por negocio
	viper.SetDefault("METRICS_SYNC_CRON", "0 3 * * *") // Todos los días a las 3h
	viper.SetDefault("METRICS_SYNC_ENABLED", true)

	viper.SetDefault("PIN_TTL_MINUTES", 15)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env con godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por viper correctamente")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile intenta cargar el .env desde varias localizaciones
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env de ninguna localización conocida")
}
