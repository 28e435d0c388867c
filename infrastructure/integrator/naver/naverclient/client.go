package naverclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
)

type Client interface {
	CreateReport(cred domain.Credential, reportType, statDt string) (*naverdomain.CreateReportResult, error)
	GetReportJob(cred domain.Credential, jobID string) (*naverdomain.ReportJob, error)
	DownloadReport(cred domain.Credential, downloadURL string) (string, error)
}

type NaverClient struct {
	Cfg        *config.Config
	Signer     *Signer
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &NaverClient{
		Cfg:    cfg,
		Signer: NewSigner(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
