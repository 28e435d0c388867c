package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/infrastructure/repository"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/searchads-manager-api/pkg/utils"
)

// ReportSyncConfig representa a configuração do agendador de sincronização
// de relatórios.
type ReportSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	RetentionDays       int
}

// ReportSyncService agenda a aquisição diária de relatórios para todas as
// contas do cofre. As contas são processadas em sequência, nunca
// intercaladas: cada ciclo de vida de job roda inteiro antes do próximo,
// para não misturar assinaturas ou jobIds entre contas.
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	appConfig           *config.Config
	vault               credentialing.Vault
	reporter            reporting.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportSyncService(
	vault credentialing.Vault,
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule:        appConfig.ReportSync.CronSchedule,
		RequestDelaySeconds: appConfig.ReportSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.ReportSync.Enabled,
		RetentionDays:       appConfig.ReportSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de relatórios carregada")

	return &ReportSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		vault:        vault,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAllAccounts adquire o relatório do dia para cada conta do cofre, uma
// de cada vez.
func (s *ReportSyncService) SyncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()

	aliases := s.vault.Aliases()
	if len(aliases) == 0 {
		logrus.Info("Nenhuma credencial registrada para sincronização de relatórios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"accounts": len(aliases),
	}).Info("Iniciando sincronização de relatórios para todas as contas")

	succeeded, pending, failed := 0, 0, 0

	for i, alias := range aliases {
		// Pausa entre contas para não saturar a API
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		result, err := s.reporter.FetchDailyReport(alias, "")
		if err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"alias":  alias,
				"error":  err.Error(),
			}).Error("Erro interno na sincronização da conta")
			continue
		}

		switch result.State {
		case domain.FetchSuccess:
			succeeded++
		case domain.FetchAggregationPending:
			// Sinal neutro: a conta fica para a próxima rodada do cron
			pending++
			logrus.WithFields(logrus.Fields{
				"run_id":  runID,
				"alias":   alias,
				"stat_dt": result.StatDate,
			}).Info("Dados ainda em agregação, conta adiada para a próxima rodada")
		default:
			failed++
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"alias":  alias,
				"state":  result.State,
				"step":   result.Step,
			}).Error("Sincronização da conta falhou")
		}
	}

	s.pruneOldSnapshots(runID)

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"succeeded": succeeded,
		"pending":   pending,
		"failed":    failed,
		"duration":  time.Since(startTime).String(),
	}).Info("Sincronização de relatórios finalizada")
}

// pruneOldSnapshots descarta snapshots além da janela de retenção. A falha
// da limpeza não interfere no resultado da sincronização.
func (s *ReportSyncService) pruneOldSnapshots(runID string) {
	if s.snapshotRepo == nil || s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao limpar snapshots antigos")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"run_id":         runID,
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos")
	}
}

// LastRun devolve os horários da última execução, para o endpoint de status.
func (s *ReportSyncService) LastRun() (startedAt, completedAt time.Time, running bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt, s.syncRunning
}
