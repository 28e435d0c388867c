package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/searchads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

const reportSnapshotsTable = "report_snapshots rs"

// ReportSnapshot é o cache de um relatório normalizado: a tabela de linhas
// de uma conta para um statDt, guardada para consulta sem reacionar a API.
type ReportSnapshot struct {
	ID           int                 `json:"id"`
	Alias        string              `json:"alias"`
	StatDate     string              `json:"stat_date"`
	ReportType   string              `json:"report_type"`
	Table        *domain.ReportTable `json:"table"`
	FlaggedCount int                 `json:"flagged_count"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type ReportSnapshotRepository interface {
	GetByAlias(alias string) (*ReportSnapshot, error)
	GetByAliasAndDate(alias, statDate string) (*ReportSnapshot, error)
	SaveOrUpdate(snapshot *ReportSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

// GetByAlias busca o snapshot mais recente de uma conta.
func (r *reportSnapshotRepository) GetByAlias(alias string) (*ReportSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.alias, rs.stat_dt, rs.report_type, rs.report_table, rs.flagged_count, rs.created_at, rs.updated_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"rs.alias": alias}).
		OrderBy("rs.stat_dt DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) GetByAliasAndDate(alias, statDate string) (*ReportSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.alias, rs.stat_dt, rs.report_type, rs.report_table, rs.flagged_count, rs.created_at, rs.updated_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"rs.alias": alias, "rs.stat_dt": statDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) SaveOrUpdate(snapshot *ReportSnapshot) error {
	var tableJSON []byte
	var err error

	if snapshot.Table != nil {
		tableJSON, err = json.Marshal(snapshot.Table)
		if err != nil {
			return fmt.Errorf("erro ao serializar a tabela do relatório para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("report_snapshots").
		Columns("alias", "stat_dt", "report_type", "report_table", "flagged_count").
		Values(
			snapshot.Alias,
			snapshot.StatDate,
			snapshot.ReportType,
			tableJSON,
			snapshot.FlaggedCount,
		).
		Suffix(`
			ON CONFLICT (alias, stat_dt) DO UPDATE SET
				report_type = EXCLUDED.report_type,
				report_table = EXCLUDED.report_table,
				flagged_count = EXCLUDED.flagged_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("report_snapshots").
		Where(squirrel.Lt{"stat_dt": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *reportSnapshotRepository) scanSnapshot(row *sql.Row) (*ReportSnapshot, error) {
	snapshot := &ReportSnapshot{}
	var tableJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Alias,
		&snapshot.StatDate,
		&snapshot.ReportType,
		&tableJSON,
		&snapshot.FlaggedCount,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tableJSON) > 0 {
		table := &domain.ReportTable{}
		if err := json.Unmarshal(tableJSON, table); err != nil {
			return nil, fmt.Errorf("erro ao desserializar a tabela do relatório: %w", err)
		}
		snapshot.Table = table
	}

	return snapshot, nil
}
