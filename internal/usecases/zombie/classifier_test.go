package zombie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

var defaultThresholds = Thresholds{Cost: 5000, Impression: 100}

func nativeTable(rows ...domain.AdMetricsRow) *domain.ReportTable {
	return &domain.ReportTable{
		Columns: []string{"cost", "convertedRevenue", "impressions", "clicks"},
		Rows:    rows,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		table      *domain.ReportTable
		thresholds Thresholds
		validate   func(t *testing.T, flagged []domain.AdMetricsRow)
	}{
		{
			name: "Gasto sem conversão e visibilidade sem engajamento são sinalizados",
			table: nativeTable(
				domain.AdMetricsRow{"cost": "5000", "convertedRevenue": "0", "impressions": "10", "clicks": "1"},
				domain.AdMetricsRow{"cost": "100", "convertedRevenue": "0", "impressions": "200", "clicks": "0"},
				domain.AdMetricsRow{"cost": "100", "convertedRevenue": "50", "impressions": "10", "clicks": "1"},
			),
			thresholds: defaultThresholds,
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Len(t, flagged, 2)
				assert.Equal(t, "5000", flagged[0]["cost"])
				assert.Equal(t, "200", flagged[1]["impressions"])
			},
		},
		{
			name: "Custo abaixo do limiar com receita zero não é sinalizado",
			table: nativeTable(
				domain.AdMetricsRow{"cost": "4999", "convertedRevenue": "0", "impressions": "10", "clicks": "1"},
			),
			thresholds: defaultThresholds,
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Empty(t, flagged)
			},
		},
		{
			name: "Predicado funciona sobre os nomes canônicos renomeados",
			table: &domain.ReportTable{
				Columns: []string{"광고비(원)", "전환매출(원)", "노출수", "클릭수"},
				Rows: []domain.AdMetricsRow{
					{"광고비(원)": "6000", "전환매출(원)": "0", "노출수": "10", "클릭수": "1"},
					{"광고비(원)": "100", "전환매출(원)": "90", "노출수": "10", "클릭수": "1"},
				},
			},
			thresholds: defaultThresholds,
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Len(t, flagged, 1)
				assert.Equal(t, "6000", flagged[0]["광고비(원)"])
			},
		},
		{
			name: "Separador de milhar é tolerado na leitura numérica",
			table: nativeTable(
				domain.AdMetricsRow{"cost": "12,500", "convertedRevenue": "0", "impressions": "10", "clicks": "1"},
			),
			thresholds: defaultThresholds,
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Len(t, flagged, 1)
			},
		},
		{
			name: "Valor não numérico conta como zero e não gera falso positivo",
			table: nativeTable(
				domain.AdMetricsRow{"cost": "n/a", "convertedRevenue": "0", "impressions": "-", "clicks": "0"},
			),
			thresholds: defaultThresholds,
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Empty(t, flagged)
			},
		},
		{
			name: "Limiares sobrescritos mudam o corte",
			table: nativeTable(
				domain.AdMetricsRow{"cost": "900", "convertedRevenue": "0", "impressions": "10", "clicks": "1"},
			),
			thresholds: Thresholds{Cost: 500, Impression: 100},
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Len(t, flagged, 1)
			},
		},
		{
			name:       "Tabela vazia devolve nil",
			table:      nativeTable(),
			thresholds: defaultThresholds,
			validate: func(t *testing.T, flagged []domain.AdMetricsRow) {
				assert.Nil(t, flagged)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Classify(tt.table, tt.thresholds))
		})
	}
}

func TestClassify_NaoMutaEntrada(t *testing.T) {
	row := domain.AdMetricsRow{"cost": "6000", "convertedRevenue": "0", "impressions": "10", "clicks": "1"}
	table := nativeTable(row)

	flagged := Classify(table, defaultThresholds)

	assert.Len(t, flagged, 1)
	assert.Equal(t, "6000", table.Rows[0]["cost"])
	assert.Len(t, table.Rows[0], 4)
}
