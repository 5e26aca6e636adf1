package domain

// Selections mapeia cada dimensão ao conjunto de valores permitidos.
// Uma dimensão ausente não restringe; uma dimensão com conjunto vazio
// não aceita nenhuma linha.
type Selections map[Dimension][]string

// DimensionOptions são os valores observados de cada dimensão filtrável,
// usados para popular os seletores da camada de apresentação
type DimensionOptions struct {
	City         []string `json:"city"`
	CustomerType []string `json:"customer_type"`
	Gender       []string `json:"gender"`
}

// DefaultSelections seleciona todos os valores observados de cada dimensão filtrável
func DefaultSelections(t *Table) (Selections, error) {
	selections := make(Selections, len(FilterDimensions))
	for _, d := range FilterDimensions {
		values, err := t.Distinct(d)
		if err != nil {
			return nil, err
		}
		selections[d] = values
	}

	return selections, nil
}

// WithDefaults completa as dimensões ausentes com os valores padrão.
// Conjuntos explicitamente vazios são mantidos.
func (s Selections) WithDefaults(defaults Selections) Selections {
	merged := make(Selections, len(defaults))
	for d, values := range defaults {
		merged[d] = values
	}
	for d, values := range s {
		merged[d] = values
	}

	return merged
}
