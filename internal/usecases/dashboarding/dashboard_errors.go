package dashboarding

import (
	"errors"
	"fmt"
)

// ErrUnknownChart indica um nome de gráfico que o painel não conhece
var ErrUnknownChart = errors.New("gráfico desconhecido")

// ChartError é um erro com o nome do gráfico solicitado
type ChartError struct {
	Err  error
	Name string
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Name)
}

// Unwrap retorna o erro subjacente
func (e *ChartError) Unwrap() error {
	return e.Err
}
