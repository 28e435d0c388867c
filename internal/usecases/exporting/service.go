package exporting

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// SheetName é o nome da única aba da planilha exportada.
const SheetName = "Report"

// BuildWorkbook serializa a tabela (original ou já filtrada de zumbis) em
// uma planilha xlsx: uma aba, linha de cabeçalho e linhas de dados, sem
// coluna de índice.
func BuildWorkbook(table *domain.ReportTable) (*bytes.Buffer, error) {
	if table == nil {
		return nil, fmt.Errorf("tabela vazia: nada para exportar")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a aba da planilha: %w", err)
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("erro ao remover a aba padrão: %w", err)
	}

	header := make([]interface{}, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = column
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("erro ao escrever o cabeçalho: %w", err)
	}

	for n, row := range table.Rows {
		values := make([]interface{}, len(table.Columns))
		for i, column := range table.Columns {
			values[i] = row[column]
		}

		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return nil, fmt.Errorf("erro ao calcular a célula da linha %d: %w", n+2, err)
		}

		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("erro ao escrever a linha %d: %w", n+2, err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar a planilha: %w", err)
	}

	return buffer, nil
}

// ReadWorkbook lê de volta uma planilha gerada por BuildWorkbook,
// reconstruindo a tabela. Usado na verificação de ida e volta da
// exportação.
func ReadWorkbook(data []byte) (*domain.ReportTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler as linhas da planilha: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha sem linha de cabeçalho")
	}

	table := &domain.ReportTable{
		Columns: rows[0],
		Rows:    make([]domain.AdMetricsRow, 0, len(rows)-1),
	}

	for _, cells := range rows[1:] {
		row := make(domain.AdMetricsRow, len(table.Columns))
		for i, column := range table.Columns {
			if i < len(cells) {
				row[column] = cells[i]
			} else {
				row[column] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
