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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Naver      Naver      `mapstructure:",squash"`
	Assistant  Assistant  `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Zombie     Zombie     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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

// Naver concentra a configuração da integração com a API de relatórios
// do Naver Search Ads.
type Naver struct {
	BaseURL string `mapstructure:"naver_base_url"`

	// StatDateOffsetDays define quantos dias antes de hoje será o statDt
	// do relatório. A agregação da plataforma não é definitiva para os
	// últimos 1-2 dias, então o valor é uma escolha de implantação e não
	// uma constante do código.
	StatDateOffsetDays int `mapstructure:"naver_stat_dt_offset_days"`

	PollAttempts        int `mapstructure:"naver_poll_attempts"`
	PollIntervalSeconds int `mapstructure:"naver_poll_interval_seconds"`
}

type Assistant struct {
	ModelID   string `mapstructure:"assistant_model_id"`
	Region    string `mapstructure:"assistant_region"`
	MaxTokens int    `mapstructure:"assistant_max_tokens"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret               string `mapstructure:"auth_secret"`
	OperatorEmail        string `mapstructure:"operator_email"`
	OperatorPasswordHash string `mapstructure:"operator_password_hash"`
}

// Zombie define os limiares padrão da classificação de itens zumbis.
// Ambos podem ser sobrescritos por requisição via query string.
type Zombie struct {
	CostThreshold       float64 `mapstructure:"zombie_cost_threshold"`
	ImpressionThreshold float64 `mapstructure:"zombie_impression_threshold"`
}

type ReportSync struct {
	CronSchedule        string `mapstructure:"report_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"report_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"report_sync_enabled"`
	RetentionDays       int    `mapstructure:"report_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/searchads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("NAVER_BASE_URL", "https://api.searchad.naver.com")
	viper.SetDefault("NAVER_STAT_DT_OFFSET_DAYS", 2) // D-2: dados dos últimos dias ainda em agregação
	viper.SetDefault("NAVER_POLL_ATTEMPTS", 10)
	viper.SetDefault("NAVER_POLL_INTERVAL_SECONDS", 2)

	viper.SetDefault("ZOMBIE_COST_THRESHOLD", 5000.0)
	viper.SetDefault("ZOMBIE_IMPRESSION_THRESHOLD", 100.0)

	viper.SetDefault("REPORT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_RETENTION_DAYS", 90)

	viper.SetDefault("ASSISTANT_MODEL_ID", "anthropic.claude-3-sonnet-20240229-v1:0")
	viper.SetDefault("ASSISTANT_REGION", "us-east-1")
	viper.SetDefault("ASSISTANT_MAX_TOKENS", 2048)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("OPERATOR_EMAIL", "admin@localhost")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if config.Naver.StatDateOffsetDays < 1 {
		return nil, fmt.Errorf("NAVER_STAT_DT_OFFSET_DAYS deve ser >= 1 (valor atual: %d)", config.Naver.StatDateOffsetDays)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
