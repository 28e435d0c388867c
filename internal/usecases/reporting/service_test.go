package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver"
	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
	naverMocks "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/mocks"
	"github.com/vfg2006/searchads-manager-api/infrastructure/repository"
	repoMocks "github.com/vfg2006/searchads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	"go.uber.org/mock/gomock"
)

func serviceTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Naver.BaseURL = "https://api.searchad.naver.com"
	cfg.Naver.StatDateOffsetDays = 2
	cfg.Naver.PollAttempts = 10
	cfg.Naver.PollIntervalSeconds = 2
	cfg.Zombie.CostThreshold = 5000
	cfg.Zombie.ImpressionThreshold = 100
	return cfg
}

// TestService_FetchDailyReport cobre o pipeline inteiro com o cliente HTTP
// substituído por mock: resolução de credencial, criação do job, polling,
// download, normalização e persistência do snapshot.
func TestService_FetchDailyReport(t *testing.T) {
	const tsv = "date\tcost\tconvertedRevenue\timpressions\tclicks\n" +
		"2024-01-15\t1200\t8000\t340\t12\n" +
		"2024-01-15\t300\t0\t55\t2\n"

	cred := domain.Credential{
		Alias:      "loja-01",
		AccessKey:  "access-key",
		SecretKey:  "secret-key",
		CustomerID: "12345",
	}

	tests := []struct {
		name     string
		alias    string
		setup    func(client *naverMocks.MockClient, repo *repoMocks.MockReportSnapshotRepository)
		validate func(t *testing.T, result *domain.FetchReportResult, err error)
	}{
		{
			name:  "Pipeline completo com três consultas pendentes antes do BUILT",
			alias: "loja-01",
			setup: func(client *naverMocks.MockClient, repo *repoMocks.MockReportSnapshotRepository) {
				client.EXPECT().
					CreateReport(cred, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{State: naverdomain.CreateAccepted, JobID: "42"}, nil)

				pending := &naverdomain.ReportJob{Status: naverdomain.JobStatusPending}
				built := &naverdomain.ReportJob{Status: naverdomain.JobStatusBuilt, DownloadURL: "https://host/dl/42"}

				gomock.InOrder(
					client.EXPECT().GetReportJob(cred, "42").Return(pending, nil),
					client.EXPECT().GetReportJob(cred, "42").Return(pending, nil),
					client.EXPECT().GetReportJob(cred, "42").Return(pending, nil),
					client.EXPECT().GetReportJob(cred, "42").Return(built, nil),
				)

				client.EXPECT().
					DownloadReport(cred, "https://host/dl/42").
					Return(tsv, nil)

				repo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *repository.ReportSnapshot) error {
						assert.Equal(t, "loja-01", snapshot.Alias)
						assert.Equal(t, "2024-01-15", snapshot.StatDate)
						assert.Len(t, snapshot.Table.Rows, 2)
						assert.Equal(t, 0, snapshot.FlaggedCount)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.FetchSuccess, result.State)
				assert.Equal(t, "42", result.JobID)
				assert.Empty(t, result.Raw)
				assert.Len(t, result.Table.Rows, 2)
				assert.Equal(t, "8000", result.Table.Rows[0]["전환매출(원)"])
				assert.Equal(t, "2", result.Table.Rows[1]["클릭수"])
			},
		},
		{
			name:  "Agregação pendente volta no resultado sem tocar no cache",
			alias: "loja-01",
			setup: func(client *naverMocks.MockClient, repo *repoMocks.MockReportSnapshotRepository) {
				client.EXPECT().
					CreateReport(cred, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{
						State: naverdomain.CreateAggregationPending,
						Code:  "20007",
					}, nil)
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.FetchAggregationPending, result.State)
				assert.Nil(t, result.Table)
			},
		},
		{
			name:  "TSV malformado falha a invocação sem resultado parcial",
			alias: "loja-01",
			setup: func(client *naverMocks.MockClient, repo *repoMocks.MockReportSnapshotRepository) {
				client.EXPECT().
					CreateReport(cred, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{State: naverdomain.CreateAccepted, JobID: "42"}, nil)

				client.EXPECT().
					GetReportJob(cred, "42").
					Return(&naverdomain.ReportJob{Status: naverdomain.JobStatusBuilt, DownloadURL: "https://host/dl/42"}, nil)

				client.EXPECT().
					DownloadReport(cred, "https://host/dl/42").
					Return("date\tcost\n2024-01-15\n", nil)
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), "erro ao normalizar")
			},
		},
		{
			name:  "Alias desconhecido é erro interno, não resultado discriminado",
			alias: "loja-inexistente",
			setup: func(client *naverMocks.MockClient, repo *repoMocks.MockReportSnapshotRepository) {},
			validate: func(t *testing.T, result *domain.FetchReportResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := serviceTestConfig()
			client := naverMocks.NewMockClient(ctrl)
			snapshotRepo := repoMocks.NewMockReportSnapshotRepository(ctrl)

			fetcher := naver.New(cfg, client).WithClock(
				func() time.Time { return time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC) },
				func(time.Duration) {},
			)

			vault := credentialing.NewVault()
			assert.NoError(t, vault.Add(cred))

			tt.setup(client, snapshotRepo)

			service := NewService(cfg, fetcher, vault, snapshotRepo)
			result, err := service.FetchDailyReport(tt.alias, "")
			tt.validate(t, result, err)
		})
	}
}

func TestService_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := repoMocks.NewMockReportSnapshotRepository(ctrl)
	snapshotRepo.EXPECT().
		GetByAlias("loja-01").
		Return(&repository.ReportSnapshot{Alias: "loja-01", StatDate: "2024-01-15"}, nil)

	service := NewService(serviceTestConfig(), nil, credentialing.NewVault(), snapshotRepo)

	snapshot, err := service.GetSnapshot("loja-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-15", snapshot.StatDate)
}
