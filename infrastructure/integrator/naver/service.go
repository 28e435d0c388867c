package naver

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	naverdomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/domain"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/naver/naverclient"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// ReportTypeAd é o tipo de relatório padrão (desempenho por anúncio).
const ReportTypeAd = "AD"

// NaverIntegrator dirige o protocolo criar -> acompanhar -> baixar contra a
// API de relatórios, produzindo um resultado discriminado. Uma instância
// atende uma credencial por vez; quando várias contas são processadas, cada
// ciclo de vida de job roda como uma sequência independente, sem
// intercalar jobIds ou assinaturas entre contas.
type NaverIntegrator struct {
	cfg    *config.Config
	Client naverclient.Client

	now   func() time.Time
	sleep func(time.Duration)
}

func New(cfg *config.Config, client naverclient.Client) *NaverIntegrator {
	return &NaverIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// WithClock substitui relógio e espera entre tentativas. Usado em testes.
func (s *NaverIntegrator) WithClock(now func() time.Time, sleep func(time.Duration)) *NaverIntegrator {
	s.now = now
	s.sleep = sleep
	return s
}

// StatDate calcula o statDt do relatório: hoje menos o deslocamento
// configurado. O deslocamento (1 ou 2 dias, conforme a implantação) existe
// porque a agregação da plataforma não é definitiva para os dias mais
// recentes.
func (s *NaverIntegrator) StatDate() string {
	return s.now().AddDate(0, 0, -s.cfg.Naver.StatDateOffsetDays).Format(time.DateOnly)
}

// FetchRawReport executa o pipeline completo de aquisição para uma
// credencial e devolve o TSV cru no campo Raw do resultado. Somente o
// desfecho de sucesso carrega conteúdo; os demais preservam etapa, status e
// corpo crus para diagnóstico.
func (s *NaverIntegrator) FetchRawReport(cred domain.Credential, reportType string) (*domain.FetchReportResult, error) {
	if reportType == "" {
		reportType = ReportTypeAd
	}

	statDt := s.StatDate()

	result := &domain.FetchReportResult{
		Alias:      cred.Alias,
		StatDate:   statDt,
		ReportType: reportType,
	}

	logrus.WithFields(logrus.Fields{
		"alias":       cred.Alias,
		"stat_dt":     statDt,
		"report_type": reportType,
	}).Info("naver: iniciando aquisição de relatório")

	created, err := s.Client.CreateReport(cred, reportType, statDt)
	if err != nil {
		return s.failure(result, "create", err), nil
	}

	switch created.State {
	case naverdomain.CreateAggregationPending:
		result.State = domain.FetchAggregationPending
		result.BusinessCode = created.Code
		result.Step = "create"
		result.Message = created.Message
		return result, nil

	case naverdomain.CreateBusinessError:
		result.State = domain.FetchBusinessError
		result.BusinessCode = created.Code
		result.Step = "create"
		result.Message = created.Message
		return result, nil
	}

	result.JobID = created.JobID

	job, err := s.pollUntilBuilt(cred, created.JobID)
	if err != nil {
		return s.failure(result, "poll", err), nil
	}

	raw, err := s.Client.DownloadReport(cred, job.DownloadURL)
	if err != nil {
		return s.failure(result, "download", err), nil
	}

	logrus.WithFields(logrus.Fields{
		"alias":   cred.Alias,
		"job_id":  created.JobID,
		"stat_dt": statDt,
		"bytes":   len(raw),
	}).Info("naver: relatório baixado com sucesso")

	result.State = domain.FetchSuccess
	result.Raw = raw
	return result, nil
}

// pollUntilBuilt consulta o status do job em intervalo fixo até BUILT ou
// até esgotar o orçamento de tentativas. Sem backoff exponencial: o teto de
// tentativas é também o único mecanismo de cancelamento do laço.
func (s *NaverIntegrator) pollUntilBuilt(cred domain.Credential, jobID string) (*naverdomain.ReportJob, error) {
	attempts := s.cfg.Naver.PollAttempts
	interval := time.Duration(s.cfg.Naver.PollIntervalSeconds) * time.Second

	for attempt := 1; attempt <= attempts; attempt++ {
		s.sleep(interval)

		job, err := s.Client.GetReportJob(cred, jobID)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"job_id":  jobID,
			"attempt": attempt,
			"status":  job.Status,
		}).Debug("naver: status do job consultado")

		if job.Status == naverdomain.JobStatusBuilt {
			if job.DownloadURL == "" {
				return nil, errors.Errorf("job %s está BUILT mas sem downloadUrl", jobID)
			}
			return job, nil
		}
	}

	return nil, &naverdomain.TimeoutError{JobID: jobID, Attempts: attempts}
}

// failure converte um erro em resultado discriminado, preservando o que a
// taxonomia exige para diagnóstico.
func (s *NaverIntegrator) failure(result *domain.FetchReportResult, step string, err error) *domain.FetchReportResult {
	result.Step = step

	var transportErr *naverdomain.TransportError
	var timeoutErr *naverdomain.TimeoutError

	switch {
	case errors.As(err, &timeoutErr):
		result.State = domain.FetchTimeout
		result.Message = timeoutErr.Error()

	case errors.As(err, &transportErr):
		result.State = domain.FetchTransportError
		result.RawStatus = transportErr.StatusCode
		result.RawBody = transportErr.Body
		result.Message = transportErr.Error()

	default:
		result.State = domain.FetchTransportError
		result.Message = errors.Wrapf(err, "falha na etapa %s", step).Error()
	}

	logrus.WithFields(logrus.Fields{
		"alias": result.Alias,
		"step":  step,
		"state": result.State,
		"error": result.Message,
	}).Error("naver: aquisição de relatório falhou")

	return result
}
