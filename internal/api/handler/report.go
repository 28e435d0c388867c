package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/searchads-manager-api/infrastructure/repository"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/zombie"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/searchads-manager-api/pkg/log"
	"github.com/vfg2006/searchads-manager-api/pkg/utils"
)

type FetchReportRequest struct {
	Alias      string `json:"alias"`
	ReportType string `json:"report_type,omitempty"`
}

// FetchReport executa o pipeline completo de aquisição para uma conta:
// cria o job, acompanha até BUILT, baixa e normaliza. O desfecho
// discriminado vira o status HTTP: 200 sucesso, 202 agregação em
// andamento, 4xx/5xx conforme a taxonomia.
func FetchReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req FetchReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Alias == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "alias é obrigatório", nil)
			return
		}

		logger.WithField("alias", req.Alias).Info("reports: iniciando aquisição de relatório")

		result, err := service.FetchDailyReport(req.Alias, req.ReportType)
		if err != nil {
			logger.WithFields(log.Fields{
				"alias": req.Alias,
				"error": err.Error(),
			}).Error("reports: falha interna na aquisição")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fetchStatusCode(result.State))
		json.NewEncoder(w).Encode(result)
	})
}

// fetchStatusCode traduz o discriminante do resultado para o status HTTP.
func fetchStatusCode(state domain.FetchState) int {
	switch state {
	case domain.FetchSuccess:
		return http.StatusOK
	case domain.FetchAggregationPending:
		return http.StatusAccepted
	case domain.FetchBusinessError:
		return http.StatusUnprocessableEntity
	case domain.FetchTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// GetReportSnapshot devolve o snapshot mais recente da conta, ou o de um
// statDt específico quando informado por query string.
func GetReportSnapshot(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alias := httprouter.ParamsFromContext(r.Context()).ByName("alias")

		var snapshot *repository.ReportSnapshot
		var err error

		if statDt := r.URL.Query().Get("stat_dt"); statDt != "" {
			if _, parseErr := utils.ParseDate(statDt); parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "stat_dt inválido, use o formato 2006-01-02", nil)
				return
			}
			snapshot, err = service.GetSnapshotByDate(alias, statDt)
		} else {
			snapshot, err = service.GetSnapshot(alias)
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"alias": alias,
				"error": err.Error(),
			}).Error("reports: falha ao buscar snapshot")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("nenhum relatório adquirido para %s", alias), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	})
}

type ZombieResponse struct {
	Alias        string                `json:"alias"`
	StatDate     string                `json:"stat_date"`
	Thresholds   zombie.Thresholds     `json:"thresholds"`
	TotalRows    int                   `json:"total_rows"`
	FlaggedRows  int                   `json:"flagged_rows"`
	FlaggedRatio float64               `json:"flagged_ratio"`
	Rows         []domain.AdMetricsRow `json:"rows"`
}

// GetZombies aplica o predicado de zumbis sobre o último snapshot da
// conta. Os limiares padrão vêm da configuração e podem ser sobrescritos
// por query string.
func GetZombies(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alias := httprouter.ParamsFromContext(r.Context()).ByName("alias")

		thresholds := zombie.Thresholds{
			Cost:       cfg.Zombie.CostThreshold,
			Impression: cfg.Zombie.ImpressionThreshold,
		}

		if raw := r.URL.Query().Get("cost_threshold"); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "cost_threshold inválido", nil)
				return
			}
			thresholds.Cost = value
		}

		if raw := r.URL.Query().Get("impression_threshold"); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "impression_threshold inválido", nil)
				return
			}
			thresholds.Impression = value
		}

		snapshot, err := service.GetSnapshot(alias)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if snapshot == nil || snapshot.Table == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("nenhum relatório adquirido para %s", alias), nil)
			return
		}

		flagged := zombie.Classify(snapshot.Table, thresholds)

		ratio := 0.0
		if len(snapshot.Table.Rows) > 0 {
			ratio = utils.RoundWithTwoDecimalPlace(float64(len(flagged)) / float64(len(snapshot.Table.Rows)) * 100)
		}

		logger.WithFields(log.Fields{
			"alias":   alias,
			"flagged": len(flagged),
		}).Info("zombies: classificação executada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ZombieResponse{
			Alias:        alias,
			StatDate:     snapshot.StatDate,
			Thresholds:   thresholds,
			TotalRows:    len(snapshot.Table.Rows),
			FlaggedRows:  len(flagged),
			FlaggedRatio: ratio,
			Rows:         flagged,
		})
	})
}

// ExportReport serializa o último snapshot (ou só as linhas zumbis) em uma
// planilha xlsx para download.
func ExportReport(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alias := httprouter.ParamsFromContext(r.Context()).ByName("alias")
		zombiesOnly := r.URL.Query().Get("zombies_only") == "true"

		snapshot, err := service.GetSnapshot(alias)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if snapshot == nil || snapshot.Table == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("nenhum relatório adquirido para %s", alias), nil)
			return
		}

		table := snapshot.Table
		if zombiesOnly {
			flagged := zombie.Classify(table, zombie.Thresholds{
				Cost:       cfg.Zombie.CostThreshold,
				Impression: cfg.Zombie.ImpressionThreshold,
			})
			table = &domain.ReportTable{Columns: table.Columns, Rows: flagged}
		}

		workbook, err := exporting.BuildWorkbook(table)
		if err != nil {
			logger.WithFields(log.Fields{
				"alias": alias,
				"error": err.Error(),
			}).Error("reports: falha ao gerar planilha")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		filename := fmt.Sprintf("report_%s_%s.xlsx", alias, snapshot.StatDate)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(workbook.Bytes()); err != nil {
			logger.WithError(err).Error("reports: falha ao enviar a planilha")
		}
	})
}
