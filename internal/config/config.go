package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kitvend/sales-monitor/internal/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Kit        Kit        `mapstructure:",squash"`
	Telegram   Telegram   `mapstructure:",squash"`
	Detection  Detection  `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`

	// Location é resolvido a partir de Detection.Timezone durante NewConfig.
	// Todos os cálculos de janelas e dias-calendário usam este fuso.
	Location *time.Location `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Kit struct {
	BaseURL   string `mapstructure:"kit_api_base_url"`
	CompanyID string `mapstructure:"kit_api_company_id"`
	Login     string `mapstructure:"kit_api_login"`
	Password  string `mapstructure:"kit_api_password"`
}

type Telegram struct {
	BotToken string `mapstructure:"telegram_bot_token"`
	ChatID   string `mapstructure:"telegram_chat_id"`
}

type Detection struct {
	Timezone         string   `mapstructure:"project_timezone"`
	IntervalHours    int      `mapstructure:"no_sales_interval_hours"`
	LastSaleDays     int      `mapstructure:"last_sale_days"`
	DaysForAverage   int      `mapstructure:"days_for_average"`
	DeclineThreshold float64  `mapstructure:"decline_threshold"`
	MachineStopWords []string `mapstructure:"machine_stop_words"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("KIT_API_BASE_URL", "https://api2.kit-invest.ru/APIService.svc")

	viper.SetDefault("PROJECT_TIMEZONE", "Asia/Yekaterinburg")
	viper.SetDefault("NO_SALES_INTERVAL_HOURS", 24) // Janela rolante padrão de 24h
	viper.SetDefault("LAST_SALE_DAYS", 10)          // Lookback para "última venda"
	viper.SetDefault("DAYS_FOR_AVERAGE", 7)         // Janela de baseline da média diária
	viper.SetDefault("DECLINE_THRESHOLD", 0.5)      // Ontem abaixo de 50% da média dispara alerta
	viper.SetDefault("MACHINE_STOP_WORDS", "")

	viper.SetDefault("REPORT_SYNC_CRON", "0 9 * * *") // Todos os dias às 9h
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.Detection.Validate(); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(config.Detection.Timezone)
	if err != nil {
		return nil, domain.NewConfigurationError("PROJECT_TIMEZONE", err.Error())
	}
	config.Location = location

	return config, nil
}

// Validate falha rápido em parâmetros de detecção inválidos, antes de qualquer
// chamada de rede.
func (d Detection) Validate() error {
	if d.IntervalHours <= 0 {
		return domain.NewConfigurationError("NO_SALES_INTERVAL_HOURS", "deve ser um inteiro positivo")
	}
	if d.LastSaleDays <= 0 {
		return domain.NewConfigurationError("LAST_SALE_DAYS", "deve ser um inteiro positivo")
	}
	if d.DaysForAverage <= 0 {
		return domain.NewConfigurationError("DAYS_FOR_AVERAGE", "deve ser um inteiro positivo")
	}
	if d.DeclineThreshold <= 0 || d.DeclineThreshold > 1 {
		return domain.NewConfigurationError("DECLINE_THRESHOLD", "deve estar no intervalo (0, 1]")
	}
	if d.Timezone == "" {
		return domain.NewConfigurationError("PROJECT_TIMEZONE", "não pode ser vazio")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
