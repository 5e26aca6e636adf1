package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet/excel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet/google"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"google.golang.org/api/option"
)

const warmUpTimeout = 30 * time.Second

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Valores monetários saem como números no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rng, err := spreadsheet.NewRange(
		cfg.Spreadsheet.Sheet,
		cfg.Spreadsheet.Columns,
		cfg.Spreadsheet.SkipRows,
		cfg.Spreadsheet.MaxRows,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Intervalo da planilha inválido")
	}

	source, err := newSource(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a origem da planilha")
	}

	loader := loading.NewLoader(rng)

	// Carrega a planilha antes de aceitar requisições; um erro aqui é fatal
	warmUpCtx, warmUpCancel := context.WithTimeout(ctx, warmUpTimeout)
	table, err := loader.Load(warmUpCtx, source)
	warmUpCancel()
	if err != nil {
		logrus.WithError(err).WithField("source", source.Location()).Fatal("Erro ao carregar a planilha de vendas")
	}
	logrus.WithFields(logrus.Fields{
		"dataset_id": table.ID(),
		"range":      rng.A1(),
	}).Info("Planilha de vendas pronta")

	dashboardService := dashboarding.NewService(loader, source)

	server, err := api.New(cfg, dashboardService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newSource cria a origem da planilha conforme SPREADSHEET_SOURCE
func newSource(ctx context.Context, cfg *config.Config) (spreadsheet.Source, error) {
	if cfg.Spreadsheet.Source == config.SourceGoogle {
		var opts []option.ClientOption
		if cfg.Google.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Google.CredentialsFile))
		}
		return google.New(ctx, cfg.Google.SpreadsheetID, opts...)
	}

	return excel.New(cfg.Spreadsheet.Path), nil
}
