package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// canonicalNames é a tabela fixa de renomeação dos campos nativos do
// provedor para os nomes canônicos de exibição. Colunas fora da tabela
// passam adiante com o nome original.
var canonicalNames = map[string]string{
	"date":             "날짜",
	"cost":             "광고비(원)",
	"convertedRevenue": "전환매출(원)",
	"impressions":      "노출수",
	"clicks":           "클릭수",
}

// Normalize converte o texto TSV baixado (linha de cabeçalho + dados) em
// uma tabela tipada com nomes canônicos de coluna. Transformação puramente
// estrutural: preserva a ordem das linhas, não deduplica, não ordena e não
// valida faixas numéricas. Uma linha com número errado de colunas falha o
// parse inteiro — descartar linhas de gasto em silêncio corromperia a
// análise financeira feita em cima do resultado.
func Normalize(rawTsv string) (*domain.ReportTable, error) {
	text := strings.TrimRight(rawTsv, "\n")
	if text == "" {
		return nil, fmt.Errorf("relatório vazio: nenhuma linha de cabeçalho encontrada")
	}

	lines := strings.Split(text, "\n")

	header := strings.Split(strings.TrimSuffix(lines[0], "\r"), "\t")
	columns := make([]string, len(header))
	for i, name := range header {
		if canonical, ok := canonicalNames[name]; ok {
			columns[i] = canonical
		} else {
			columns[i] = name
		}
	}

	rows := make([]domain.AdMetricsRow, 0, len(lines)-1)
	for n, line := range lines[1:] {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
		if len(fields) != len(columns) {
			return nil, fmt.Errorf("linha %d malformada: %d colunas, esperadas %d", n+2, len(fields), len(columns))
		}

		row := make(domain.AdMetricsRow, len(columns))
		for i, value := range fields {
			row[columns[i]] = value
		}
		rows = append(rows, row)
	}

	return &domain.ReportTable{Columns: columns, Rows: rows}, nil
}
