// Package spreadsheet contém as fontes de leitura das planilhas de vendas
package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Source lê um intervalo retangular de uma planilha.
// ReadRange retorna a linha de cabeçalho seguida das linhas de dados,
// todas com a largura do intervalo.
type Source interface {
	Location() string
	ReadRange(ctx context.Context, r Range) ([][]string, error)
}

// Range é o intervalo fixo lido da planilha. Linhas e colunas são base 1.
type Range struct {
	Sheet       string
	FirstColumn int
	LastColumn  int
	HeaderRow   int
	MaxRows     int
}

// NewRange monta o intervalo a partir das colunas no formato "B:R",
// da quantidade de linhas ignoradas antes do cabeçalho e do máximo de linhas de dados
func NewRange(sheet, columns string, skipRows, maxRows int) (Range, error) {
	if strings.TrimSpace(sheet) == "" {
		return Range{}, errors.New("nome da aba é obrigatório")
	}
	if skipRows < 0 || maxRows <= 0 {
		return Range{}, errors.Errorf("intervalo inválido: skip=%d max=%d", skipRows, maxRows)
	}

	first, last, found := strings.Cut(columns, ":")
	if !found {
		return Range{}, errors.Errorf("colunas inválidas: %q", columns)
	}

	firstCol, err := excelize.ColumnNameToNumber(strings.TrimSpace(first))
	if err != nil {
		return Range{}, errors.Wrapf(err, "coluna inicial inválida %q", first)
	}

	lastCol, err := excelize.ColumnNameToNumber(strings.TrimSpace(last))
	if err != nil {
		return Range{}, errors.Wrapf(err, "coluna final inválida %q", last)
	}

	if lastCol < firstCol {
		return Range{}, errors.Errorf("colunas fora de ordem: %q", columns)
	}

	return Range{
		Sheet:       sheet,
		FirstColumn: firstCol,
		LastColumn:  lastCol,
		HeaderRow:   skipRows + 1,
		MaxRows:     maxRows,
	}, nil
}

// Width é a quantidade de colunas do intervalo
func (r Range) Width() int {
	return r.LastColumn - r.FirstColumn + 1
}

// LastRow é a última linha de dados que pode ser lida
func (r Range) LastRow() int {
	return r.HeaderRow + r.MaxRows
}

// A1 retorna o intervalo em notação A1, ex: Sales!B4:R1004
func (r Range) A1() string {
	first, _ := excelize.ColumnNumberToName(r.FirstColumn)
	last, _ := excelize.ColumnNumberToName(r.LastColumn)

	return fmt.Sprintf("%s!%s%d:%s%d", quoteSheet(r.Sheet), first, r.HeaderRow, last, r.LastRow())
}

// Window recorta as linhas de uma aba inteira (a partir da célula A1) para o intervalo
func (r Range) Window(rows [][]string) [][]string {
	window := make([][]string, 0, r.MaxRows+1)
	for i := r.HeaderRow - 1; i < len(rows) && i < r.LastRow(); i++ {
		row := rows[i]
		cells := make([]string, r.Width())
		for c := range cells {
			col := r.FirstColumn - 1 + c
			if col < len(row) {
				cells[c] = row[col]
			}
		}
		window = append(window, cells)
	}

	return window
}

// Pad completa linhas já recortadas até a largura do intervalo,
// descartando o que exceder o máximo de linhas
func (r Range) Pad(rows [][]string) [][]string {
	if len(rows) > r.MaxRows+1 {
		rows = rows[:r.MaxRows+1]
	}

	padded := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, r.Width())
		copy(cells, row)
		padded = append(padded, cells)
	}

	return padded
}

func quoteSheet(sheet string) string {
	if strings.ContainsAny(sheet, " '!-") {
		return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet
}
