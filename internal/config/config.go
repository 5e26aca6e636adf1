package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de origem da planilha de vendas
const (
	SourceFile   = "file"
	SourceGoogle = "google"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Spreadsheet Spreadsheet `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
}

type Server struct {
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Spreadsheet struct {
	Source   string `mapstructure:"spreadsheet_source"`
	Path     string `mapstructure:"spreadsheet_path"`
	Sheet    string `mapstructure:"spreadsheet_sheet"`
	Columns  string `mapstructure:"spreadsheet_columns"`
	SkipRows int    `mapstructure:"spreadsheet_skip_rows"`
	MaxRows  int    `mapstructure:"spreadsheet_max_rows"`
}

type Google struct {
	SpreadsheetID   string `mapstructure:"google_spreadsheet_id"`
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	// Layout da planilha supermarkt_sales: aba Sales, colunas B a R,
	// três linhas de título antes do cabeçalho e até 1000 vendas
	viper.SetDefault("SPREADSHEET_SOURCE", SourceFile)
	viper.SetDefault("SPREADSHEET_PATH", "supermarkt_sales.xlsx")
	viper.SetDefault("SPREADSHEET_SHEET", "Sales")
	viper.SetDefault("SPREADSHEET_COLUMNS", "B:R")
	viper.SetDefault("SPREADSHEET_SKIP_ROWS", 3)
	viper.SetDefault("SPREADSHEET_MAX_ROWS", 1000)

	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a configuração")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica se a origem da planilha está configurada de forma consistente
func (c *Config) Validate() error {
	switch c.Spreadsheet.Source {
	case SourceFile:
		if strings.TrimSpace(c.Spreadsheet.Path) == "" {
			return errors.New("SPREADSHEET_PATH é obrigatório para a origem file")
		}
	case SourceGoogle:
		if strings.TrimSpace(c.Google.SpreadsheetID) == "" {
			return errors.New("GOOGLE_SPREADSHEET_ID é obrigatório para a origem google")
		}
	default:
		return errors.Errorf("SPREADSHEET_SOURCE inválido: %q (use %s ou %s)", c.Spreadsheet.Source, SourceFile, SourceGoogle)
	}

	if strings.TrimSpace(c.Spreadsheet.Sheet) == "" {
		return errors.New("SPREADSHEET_SHEET é obrigatório")
	}
	if c.Spreadsheet.SkipRows < 0 {
		return errors.New("SPREADSHEET_SKIP_ROWS não pode ser negativo")
	}
	if c.Spreadsheet.MaxRows <= 0 {
		return errors.New("SPREADSHEET_MAX_ROWS deve ser positivo")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT deve ser positivo")
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
