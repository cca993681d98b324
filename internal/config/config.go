package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Input    Input    `mapstructure:",squash"`
	Report   Report   `mapstructure:",squash"`
	Analysis Analysis `mapstructure:",squash"`
	Twilio   Twilio   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogsDir  string `mapstructure:"logs_dir"`
}

type Input struct {
	SalesFile string `mapstructure:"sales_file"`
}

type Report struct {
	OutputDir string `mapstructure:"output_dir"`

	// PublicBaseURL, quando configurada, é a URL pública onde os gráficos
	// ficam acessíveis; habilita o envio das imagens como mídia no WhatsApp.
	PublicBaseURL string `mapstructure:"reports_public_base_url"`
}

type Analysis struct {
	IGVRate        float64 `mapstructure:"igv_rate"`
	TopModelsCount int     `mapstructure:"top_models_count"`

	// Limites superiores das faixas de preço (sem IGV), separados por
	// vírgula na variável de ambiente. A última faixa é aberta.
	SegmentBoundsRaw string    `mapstructure:"segment_bounds"`
	SegmentBounds    []float64 `mapstructure:"-"`
	SegmentLabels    []string  `mapstructure:"segment_labels"`
}

type Twilio struct {
	AccountSID   string `mapstructure:"twilio_account_sid"`
	AuthToken    string `mapstructure:"twilio_auth_token"`
	WhatsAppFrom string `mapstructure:"twilio_whatsapp_from"`
	WhatsAppTo   string `mapstructure:"whatsapp_to"`
}

// Enabled verifica se a configuração de WhatsApp está completa. Qualquer
// credencial ausente desabilita a etapa de notificação, sem erro.
func (t Twilio) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.WhatsAppTo != ""
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOGS_DIR", "logs")

	viper.SetDefault("SALES_FILE", filepath.Join("data", "Ventas_Fundamentos.xlsx"))
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("REPORTS_PUBLIC_BASE_URL", "")

	viper.SetDefault("IGV_RATE", 0.18)      // Tasa de IGV (18%)
	viper.SetDefault("TOP_MODELS_COUNT", 5) // Top 5 modelos más vendidos
	viper.SetDefault("SEGMENT_BOUNDS", "25000,50000,75000")
	viper.SetDefault("SEGMENT_LABELS", "Bajo,Medio-Bajo,Medio-Alto,Alto")

	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886")
	viper.SetDefault("WHATSAPP_TO", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Analysis.SegmentBounds, err = parseSegmentBounds(config.Analysis.SegmentBoundsRaw)
	if err != nil {
		return nil, err
	}

	if len(config.Analysis.SegmentLabels) != len(config.Analysis.SegmentBounds)+1 {
		return nil, fmt.Errorf(
			"configuração de segmentos inválida: %d limites exigem %d rótulos, mas há %d",
			len(config.Analysis.SegmentBounds),
			len(config.Analysis.SegmentBounds)+1,
			len(config.Analysis.SegmentLabels),
		)
	}

	if config.Analysis.IGVRate < 0 {
		return nil, fmt.Errorf("taxa de IGV inválida: %f", config.Analysis.IGVRate)
	}

	return config, nil
}

// parseSegmentBounds converte a lista "25000,50000,75000" em limites
// numéricos, exigindo valores crescentes.
func parseSegmentBounds(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	bounds := make([]float64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("limite de segmento inválido %q: %w", part, err)
		}

		if len(bounds) > 0 && value <= bounds[len(bounds)-1] {
			return nil, fmt.Errorf("limites de segmento devem ser crescentes: %q", raw)
		}

		bounds = append(bounds, value)
	}

	if len(bounds) == 0 {
		return nil, fmt.Errorf("nenhum limite de segmento configurado: %q", raw)
	}

	return bounds, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar o diretório atual e os diretórios acima
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
