package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	tests := []struct {
		name      string
		sheet     string
		columns   string
		skipRows  int
		maxRows   int
		want      Range
		wantA1    string
		wantError bool
	}{
		{
			name:     "Intervalo padrão da planilha de vendas",
			sheet:    "Sales",
			columns:  "B:R",
			skipRows: 3,
			maxRows:  1000,
			want:     Range{Sheet: "Sales", FirstColumn: 2, LastColumn: 18, HeaderRow: 4, MaxRows: 1000},
			wantA1:   "Sales!B4:R1004",
		},
		{
			name:     "Aba com espaço é colocada entre aspas",
			sheet:    "Vendas 2019",
			columns:  "A:C",
			skipRows: 0,
			maxRows:  10,
			want:     Range{Sheet: "Vendas 2019", FirstColumn: 1, LastColumn: 3, HeaderRow: 1, MaxRows: 10},
			wantA1:   "'Vendas 2019'!A1:C11",
		},
		{
			name:      "Colunas sem separador",
			sheet:     "Sales",
			columns:   "BR",
			maxRows:   10,
			wantError: true,
		},
		{
			name:      "Colunas fora de ordem",
			sheet:     "Sales",
			columns:   "R:B",
			maxRows:   10,
			wantError: true,
		},
		{
			name:      "Máximo de linhas zerado",
			sheet:     "Sales",
			columns:   "B:R",
			maxRows:   0,
			wantError: true,
		},
		{
			name:      "Aba vazia",
			sheet:     " ",
			columns:   "B:R",
			maxRows:   10,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRange(tt.sheet, tt.columns, tt.skipRows, tt.maxRows)
			if tt.wantError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantA1, got.A1())
		})
	}
}

func TestRange_Window(t *testing.T) {
	r, err := NewRange("Sales", "B:C", 1, 2)
	require.NoError(t, err)

	rows := [][]string{
		{"Relatório"},
		{"", "City", "Total", "ignorada"},
		{"", "Yangon"},
		{"", "Mandalay", "50"},
		{"", "Naypyitaw", "70"},
	}

	got := r.Window(rows)

	assert.Equal(t, [][]string{
		{"City", "Total"},
		{"Yangon", ""},
		{"Mandalay", "50"},
	}, got)
}

func TestRange_Window_AbaMenorQueOIntervalo(t *testing.T) {
	r, err := NewRange("Sales", "B:R", 3, 1000)
	require.NoError(t, err)

	assert.Empty(t, r.Window([][]string{{"título"}}))
}

func TestRange_Pad(t *testing.T) {
	r, err := NewRange("Sales", "A:C", 0, 1)
	require.NoError(t, err)

	got := r.Pad([][]string{
		{"City", "Gender"},
		{"Yangon"},
		{"Mandalay", "Male", "10"},
	})

	assert.Equal(t, [][]string{
		{"City", "Gender", ""},
		{"Yangon", "", ""},
	}, got)
}
