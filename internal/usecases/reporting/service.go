package reporting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/infrastructure/repository"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/credentialing"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/zombie"
)

// ReportFetcher é a dependência de aquisição: dirige criar -> acompanhar ->
// baixar contra a plataforma e devolve o resultado discriminado com o TSV
// cru no sucesso.
type ReportFetcher interface {
	FetchRawReport(cred domain.Credential, reportType string) (*domain.FetchReportResult, error)
}

// Reporter é o caso de uso de relatórios: executa o pipeline para uma
// conta do cofre e consulta snapshots já adquiridos.
type Reporter interface {
	FetchDailyReport(alias, reportType string) (*domain.FetchReportResult, error)
	GetSnapshot(alias string) (*repository.ReportSnapshot, error)
	GetSnapshotByDate(alias, statDate string) (*repository.ReportSnapshot, error)
}

type Service struct {
	cfg          *config.Config
	fetcher      ReportFetcher
	vault        credentialing.Vault
	snapshotRepo repository.ReportSnapshotRepository
}

func NewService(
	cfg *config.Config,
	fetcher ReportFetcher,
	vault credentialing.Vault,
	snapshotRepo repository.ReportSnapshotRepository,
) Reporter {
	return &Service{
		cfg:          cfg,
		fetcher:      fetcher,
		vault:        vault,
		snapshotRepo: snapshotRepo,
	}
}

// FetchDailyReport resolve a credencial pelo alias, adquire o relatório do
// statDt configurado, normaliza o TSV e guarda o snapshot. Desfechos sem
// sucesso voltam discriminados no próprio resultado; o erro da função cobre
// apenas falhas internas (alias desconhecido, parse, persistência).
func (s *Service) FetchDailyReport(alias, reportType string) (*domain.FetchReportResult, error) {
	cred, err := s.vault.Resolve(alias)
	if err != nil {
		return nil, err
	}

	result, err := s.fetcher.FetchRawReport(cred, reportType)
	if err != nil {
		return nil, err
	}

	if result.State != domain.FetchSuccess {
		return result, nil
	}

	table, err := Normalize(result.Raw)
	if err != nil {
		return nil, fmt.Errorf("erro ao normalizar o relatório de %s: %w", alias, err)
	}

	result.Table = table
	result.Raw = ""

	flagged := zombie.Classify(table, zombie.Thresholds{
		Cost:       s.cfg.Zombie.CostThreshold,
		Impression: s.cfg.Zombie.ImpressionThreshold,
	})

	if s.snapshotRepo != nil {
		snapshot := &repository.ReportSnapshot{
			Alias:        alias,
			StatDate:     result.StatDate,
			ReportType:   result.ReportType,
			Table:        table,
			FlaggedCount: len(flagged),
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			// O relatório já foi adquirido; a falha do cache não derruba o
			// resultado da invocação
			logrus.WithFields(logrus.Fields{
				"alias":   alias,
				"stat_dt": result.StatDate,
				"error":   err.Error(),
			}).Error("reporting: falha ao salvar snapshot do relatório")
		}
	}

	logrus.WithFields(logrus.Fields{
		"alias":   alias,
		"stat_dt": result.StatDate,
		"rows":    len(table.Rows),
		"flagged": len(flagged),
	}).Info("reporting: relatório adquirido e normalizado")

	return result, nil
}

// GetSnapshot devolve o snapshot mais recente da conta, ou nil quando a
// conta ainda não tem relatório adquirido.
func (s *Service) GetSnapshot(alias string) (*repository.ReportSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, fmt.Errorf("cache de snapshots não configurado")
	}

	return s.snapshotRepo.GetByAlias(alias)
}

// GetSnapshotByDate devolve o snapshot da conta em um statDt específico.
func (s *Service) GetSnapshotByDate(alias, statDate string) (*repository.ReportSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, fmt.Errorf("cache de snapshots não configurado")
	}

	return s.snapshotRepo.GetByAliasAndDate(alias, statDate)
}
