package exporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

func TestBuildWorkbook_IdaEVolta(t *testing.T) {
	table := &domain.ReportTable{
		Columns: []string{"날짜", "광고비(원)", "전환매출(원)", "노출수", "클릭수"},
		Rows: []domain.AdMetricsRow{
			{"날짜": "2024-01-15", "광고비(원)": "1200", "전환매출(원)": "8000", "노출수": "340", "클릭수": "12"},
			{"날짜": "2024-01-15", "광고비(원)": "300", "전환매출(원)": "0", "노출수": "55", "클릭수": "2"},
		},
	}

	buffer, err := BuildWorkbook(table)
	assert.NoError(t, err)
	assert.NotZero(t, buffer.Len())

	read, err := ReadWorkbook(buffer.Bytes())
	assert.NoError(t, err)

	assert.Equal(t, table.Columns, read.Columns)
	assert.Len(t, read.Rows, 2)
	assert.Equal(t, "8000", read.Rows[0]["전환매출(원)"])
	assert.Equal(t, "2", read.Rows[1]["클릭수"])
}

func TestBuildWorkbook_SomenteCabecalho(t *testing.T) {
	table := &domain.ReportTable{
		Columns: []string{"날짜", "광고비(원)"},
	}

	buffer, err := BuildWorkbook(table)
	assert.NoError(t, err)

	read, err := ReadWorkbook(buffer.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, table.Columns, read.Columns)
	assert.Empty(t, read.Rows)
}

func TestBuildWorkbook_TabelaNula(t *testing.T) {
	buffer, err := BuildWorkbook(nil)
	assert.Error(t, err)
	assert.Nil(t, buffer)
}
