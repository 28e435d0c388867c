package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		rawTsv   string
		validate func(t *testing.T, table *domain.ReportTable, err error)
	}{
		{
			name:   "Cabeçalho e linha única renomeados para os nomes canônicos",
			rawTsv: "date\tcost\n2024-01-01\t100\n",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"날짜", "광고비(원)"}, table.Columns)
				assert.Len(t, table.Rows, 1)
				assert.Equal(t, "2024-01-01", table.Rows[0]["날짜"])
				assert.Equal(t, "100", table.Rows[0]["광고비(원)"])
			},
		},
		{
			name:   "Coluna fora da tabela de renomeação passa com o nome original",
			rawTsv: "date\tadgroupId\tclicks\n2024-01-01\tgrp-001\t3\n",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"날짜", "adgroupId", "클릭수"}, table.Columns)
				assert.Equal(t, "grp-001", table.Rows[0]["adgroupId"])
			},
		},
		{
			name:   "Ordem das linhas preservada sem deduplicação",
			rawTsv: "date\tcost\n2024-01-01\t100\n2024-01-01\t100\n2024-01-02\t50\n",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.NoError(t, err)
				assert.Len(t, table.Rows, 3)
				assert.Equal(t, "100", table.Rows[1]["광고비(원)"])
				assert.Equal(t, "2024-01-02", table.Rows[2]["날짜"])
			},
		},
		{
			name:   "Finais de linha CRLF tolerados",
			rawTsv: "date\tcost\r\n2024-01-01\t100\r\n",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "100", table.Rows[0]["광고비(원)"])
			},
		},
		{
			name:   "Somente cabeçalho produz tabela sem linhas",
			rawTsv: "date\tcost\n",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.NoError(t, err)
				assert.Empty(t, table.Rows)
				assert.Equal(t, []string{"날짜", "광고비(원)"}, table.Columns)
			},
		},
		{
			name:   "Linha com colunas a menos falha o parse inteiro",
			rawTsv: "date\tcost\tclicks\n2024-01-01\t100\n",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.Error(t, err)
				assert.Nil(t, table)
				assert.Contains(t, err.Error(), "linha 2")
			},
		},
		{
			name:   "Relatório vazio é erro",
			rawTsv: "",
			validate: func(t *testing.T, table *domain.ReportTable, err error) {
				assert.Error(t, err)
				assert.Nil(t, table)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Normalize(tt.rawTsv)
			tt.validate(t, table, err)
		})
	}
}
