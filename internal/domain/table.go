package domain

import (
	"slices"
	"time"
)

// Table é um conjunto imutável de transações. Filtrar produz uma nova
// Table com o mesmo esquema; a original nunca é alterada.
type Table struct {
	id       string
	source   string
	loadedAt time.Time
	rows     []Transaction
}

// NewTable cria uma Table a partir das linhas já normalizadas
func NewTable(id, source string, loadedAt time.Time, rows []Transaction) *Table {
	return &Table{
		id:       id,
		source:   source,
		loadedAt: loadedAt,
		rows:     slices.Clone(rows),
	}
}

// ID identifica a carga que originou a tabela
func (t *Table) ID() string { return t.id }

// Source é a localização da planilha de origem
func (t *Table) Source() string { return t.source }

// LoadedAt é o instante da carga
func (t *Table) LoadedAt() time.Time { return t.loadedAt }

// Len retorna a quantidade de linhas
func (t *Table) Len() int { return len(t.rows) }

// Row retorna a linha i (cópia)
func (t *Table) Row(i int) Transaction { return t.rows[i] }

// Rows retorna uma cópia das linhas
func (t *Table) Rows() []Transaction { return slices.Clone(t.rows) }

// Subset cria uma nova tabela com as linhas dos índices informados, na ordem dada
func (t *Table) Subset(indices []int) *Table {
	rows := make([]Transaction, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, t.rows[i])
	}

	return &Table{
		id:       t.id,
		source:   t.source,
		loadedAt: t.loadedAt,
		rows:     rows,
	}
}

// Distinct retorna os valores distintos da dimensão na ordem em que aparecem
func (t *Table) Distinct(d Dimension) ([]string, error) {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, row := range t.rows {
		v, err := d.Value(row)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	return values, nil
}
