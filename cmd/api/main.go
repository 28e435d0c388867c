package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/assistant"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/assistant/assistantclient"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/naverclient"
	"github.com/vfg2006/searchads-manager-api/infrastructure/repository"
	"github.com/vfg2006/searchads-manager-api/internal/api"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/scheduler"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/reporting"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	// Cofre de credenciais em memória: as contas são registradas via API
	// depois do boot, nada é persistido
	vault := credentialing.NewVault()

	naverClient := naverclient.NewClient(cfg)
	naverIntegrator := naver.New(cfg, naverClient)

	reportService := reporting.NewService(cfg, naverIntegrator, vault, snapshotRepo)

	assistantClient, err := assistantclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cliente do assistente")
	}
	assistantIntegrator := assistant.New(cfg, assistantClient)

	reportSyncService := scheduler.NewReportSyncService(vault, reportService, snapshotRepo, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de relatórios")
	} else {
		logrus.Info("Agendador de sincronização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		vault,
		assistantIntegrator,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
