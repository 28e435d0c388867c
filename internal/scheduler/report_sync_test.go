package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	repoMocks "github.com/vfg2006/searchads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	reportingMocks "github.com/vfg2006/searchads-manager-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func schedulerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ReportSync.CronSchedule = "0 7 * * *"
	cfg.ReportSync.RequestDelaySeconds = 0
	cfg.ReportSync.Enabled = true
	cfg.ReportSync.RetentionDays = 90
	return cfg
}

func schedulerTestVault(t *testing.T, aliases ...string) credentialing.Vault {
	vault := credentialing.NewVault()
	for _, alias := range aliases {
		assert.NoError(t, vault.Add(domain.Credential{
			Alias:      alias,
			AccessKey:  "access-key",
			SecretKey:  "secret-key",
			CustomerID: "12345",
		}))
	}
	return vault
}

func TestReportSyncService_SyncAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingMocks.NewMockReporter(ctrl)
	snapshotRepo := repoMocks.NewMockReportSnapshotRepository(ctrl)
	vault := schedulerTestVault(t, "loja-01", "loja-02", "loja-03")

	// Uma conta de cada desfecho: sucesso, agregação pendente e falha
	reporter.EXPECT().
		FetchDailyReport("loja-01", "").
		Return(&domain.FetchReportResult{State: domain.FetchSuccess}, nil)
	reporter.EXPECT().
		FetchDailyReport("loja-02", "").
		Return(&domain.FetchReportResult{State: domain.FetchAggregationPending, BusinessCode: "20007"}, nil)
	reporter.EXPECT().
		FetchDailyReport("loja-03", "").
		Return(&domain.FetchReportResult{State: domain.FetchTransportError, Step: "download"}, nil)

	snapshotRepo.EXPECT().
		DeleteOlderThan(90).
		Return(int64(2), nil)

	service := NewReportSyncService(vault, reporter, snapshotRepo, schedulerTestConfig())
	service.SyncAllAccounts()

	startedAt, completedAt, running := service.LastRun()
	assert.False(t, running)
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
	assert.False(t, completedAt.Before(startedAt))
}

func TestReportSyncService_SemContasNaoConsultaNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingMocks.NewMockReporter(ctrl)
	snapshotRepo := repoMocks.NewMockReportSnapshotRepository(ctrl)

	service := NewReportSyncService(schedulerTestVault(t), reporter, snapshotRepo, schedulerTestConfig())
	service.SyncAllAccounts()

	_, completedAt, _ := service.LastRun()
	assert.True(t, completedAt.IsZero())
}

func TestReportSyncService_RetencaoDesligadaNaoLimpa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingMocks.NewMockReporter(ctrl)
	snapshotRepo := repoMocks.NewMockReportSnapshotRepository(ctrl)
	vault := schedulerTestVault(t, "loja-01")

	reporter.EXPECT().
		FetchDailyReport("loja-01", "").
		Return(&domain.FetchReportResult{State: domain.FetchSuccess}, nil)

	cfg := schedulerTestConfig()
	cfg.ReportSync.RetentionDays = 0

	service := NewReportSyncService(vault, reporter, snapshotRepo, cfg)
	service.SyncAllAccounts()
}
