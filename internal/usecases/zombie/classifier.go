package zombie

import (
	"strconv"
	"strings"

	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// Thresholds são os limiares da classificação. Os padrões vêm da
// configuração e podem ser sobrescritos por requisição.
type Thresholds struct {
	Cost       float64
	Impression float64
}

// resolutionTable lista, por campo semântico, os nomes de coluna aceitos:
// o nome nativo do provedor e o nome canônico renomeado. A resolução é
// feita uma única vez por tabela, antes de avaliar o predicado, para que a
// classificação funcione tanto sobre dados normalizados quanto crus.
var resolutionTable = map[string][]string{
	"cost":        {"cost", "광고비(원)"},
	"revenue":     {"convertedRevenue", "revenue", "전환매출(원)"},
	"impressions": {"impressions", "노출수"},
	"clicks":      {"clicks", "클릭수"},
}

// columnSet é o resultado da resolução: campo semântico -> coluna presente.
type columnSet map[string]string

func resolveColumns(columns []string) columnSet {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	resolved := make(columnSet, len(resolutionTable))
	for field, candidates := range resolutionTable {
		for _, candidate := range candidates {
			if present[candidate] {
				resolved[field] = candidate
				break
			}
		}
	}

	return resolved
}

// Classify devolve o subconjunto de linhas "zumbis": gasto sem conversão
// (custo >= limiar e receita zero) ou visibilidade sem engajamento
// (impressões >= limiar e cliques zero). Função pura: não muta as linhas de
// entrada e preserva a ordem original.
func Classify(table *domain.ReportTable, thresholds Thresholds) []domain.AdMetricsRow {
	if table == nil || len(table.Rows) == 0 {
		return nil
	}

	columns := resolveColumns(table.Columns)

	flagged := make([]domain.AdMetricsRow, 0)
	for _, row := range table.Rows {
		cost := numericField(row, columns, "cost")
		revenue := numericField(row, columns, "revenue")
		impressions := numericField(row, columns, "impressions")
		clicks := numericField(row, columns, "clicks")

		noConversion := cost >= thresholds.Cost && revenue == 0
		noEngagement := impressions >= thresholds.Impression && clicks == 0

		if noConversion || noEngagement {
			flagged = append(flagged, row)
		}
	}

	return flagged
}

// numericField lê o campo semântico da linha como número. Valores ausentes
// ou não numéricos contam como zero, o que nunca gera um falso positivo de
// gasto ou impressão.
func numericField(row domain.AdMetricsRow, columns columnSet, field string) float64 {
	column, ok := columns[field]
	if !ok {
		return 0
	}

	raw := strings.ReplaceAll(strings.TrimSpace(row[column]), ",", "")
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}
