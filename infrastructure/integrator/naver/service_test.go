package naver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/mocks"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testCredential = domain.Credential{
	Alias:      "loja-01",
	AccessKey:  "access-key",
	SecretKey:  "secret-key",
	CustomerID: "12345",
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Naver.BaseURL = "https://api.searchad.naver.com"
	cfg.Naver.StatDateOffsetDays = 2
	cfg.Naver.PollAttempts = 10
	cfg.Naver.PollIntervalSeconds = 2
	return cfg
}

// newTestIntegrator fixa o relógio em 2024-01-17 e troca a espera do
// polling por um contador, para o teste não dormir de verdade.
func newTestIntegrator(client *mocks.MockClient, sleeps *int) *NaverIntegrator {
	now := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

	return New(testConfig(), client).WithClock(
		func() time.Time { return now },
		func(time.Duration) { *sleeps++ },
	)
}

func TestNaverIntegrator_StatDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sleeps := 0
	service := newTestIntegrator(mocks.NewMockClient(ctrl), &sleeps)

	// Offset D-2 configurado: 17 de janeiro vira 15 de janeiro
	assert.Equal(t, "2024-01-15", service.StatDate())
}

func TestNaverIntegrator_FetchRawReport(t *testing.T) {
	const tsv = "date\tcost\n2024-01-15\t100\n"

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, result *domain.FetchReportResult, sleeps int)
	}{
		{
			name: "Job pronto na quarta consulta encerra o polling imediatamente",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateReport(testCredential, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{State: naverdomain.CreateAccepted, JobID: "42"}, nil)

				pending := &naverdomain.ReportJob{Status: naverdomain.JobStatusPending}
				built := &naverdomain.ReportJob{Status: naverdomain.JobStatusBuilt, DownloadURL: "https://host/dl/42"}

				gomock.InOrder(
					client.EXPECT().GetReportJob(testCredential, "42").Return(pending, nil),
					client.EXPECT().GetReportJob(testCredential, "42").Return(pending, nil),
					client.EXPECT().GetReportJob(testCredential, "42").Return(pending, nil),
					client.EXPECT().GetReportJob(testCredential, "42").Return(built, nil),
				)

				client.EXPECT().
					DownloadReport(testCredential, "https://host/dl/42").
					Return(tsv, nil)
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, sleeps int) {
				assert.Equal(t, domain.FetchSuccess, result.State)
				assert.Equal(t, "42", result.JobID)
				assert.Equal(t, tsv, result.Raw)
				// Quatro consultas, quatro esperas: a quinta nunca acontece
				assert.Equal(t, 4, sleeps)
			},
		},
		{
			name: "Orçamento de polling esgotado vira timeout, nunca sucesso parcial",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateReport(testCredential, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{State: naverdomain.CreateAccepted, JobID: "42"}, nil)

				pending := &naverdomain.ReportJob{Status: naverdomain.JobStatusPending}
				client.EXPECT().
					GetReportJob(testCredential, "42").
					Return(pending, nil).
					Times(10)
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, sleeps int) {
				assert.Equal(t, domain.FetchTimeout, result.State)
				assert.Equal(t, "poll", result.Step)
				assert.Nil(t, result.Table)
				assert.Empty(t, result.Raw)
				assert.Equal(t, 10, sleeps)
			},
		},
		{
			name: "Código 20007 na criação é sinal neutro de agregação",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateReport(testCredential, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{
						State:   naverdomain.CreateAggregationPending,
						Code:    "20007",
						Message: "data not ready",
					}, nil)
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, sleeps int) {
				assert.Equal(t, domain.FetchAggregationPending, result.State)
				assert.Equal(t, "20007", result.BusinessCode)
				// Sem job criado, nenhuma consulta de status acontece
				assert.Equal(t, 0, sleeps)
			},
		},
		{
			name: "Erro de negócio na criação preserva o código",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateReport(testCredential, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{
						State:   naverdomain.CreateBusinessError,
						Code:    "99999",
						Message: "bad report type",
					}, nil)
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, sleeps int) {
				assert.Equal(t, domain.FetchBusinessError, result.State)
				assert.Equal(t, "99999", result.BusinessCode)
				assert.Equal(t, "create", result.Step)
			},
		},
		{
			name: "Falha de transporte no download preserva status e corpo crus",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateReport(testCredential, "AD", "2024-01-15").
					Return(&naverdomain.CreateReportResult{State: naverdomain.CreateAccepted, JobID: "42"}, nil)

				client.EXPECT().
					GetReportJob(testCredential, "42").
					Return(&naverdomain.ReportJob{Status: naverdomain.JobStatusBuilt, DownloadURL: "https://host/dl/42"}, nil)

				client.EXPECT().
					DownloadReport(testCredential, "https://host/dl/42").
					Return("", &naverdomain.TransportError{Step: "download", StatusCode: 403, Body: "expired signature"})
			},
			validate: func(t *testing.T, result *domain.FetchReportResult, sleeps int) {
				assert.Equal(t, domain.FetchTransportError, result.State)
				assert.Equal(t, "download", result.Step)
				assert.Equal(t, 403, result.RawStatus)
				assert.Equal(t, "expired signature", result.RawBody)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			sleeps := 0
			service := newTestIntegrator(client, &sleeps)

			tt.setup(client)

			result, err := service.FetchRawReport(testCredential, "")
			assert.NoError(t, err)
			assert.Equal(t, "loja-01", result.Alias)
			assert.Equal(t, "2024-01-15", result.StatDate)

			tt.validate(t, result, sleeps)
		})
	}
}
