package aggregating

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// ScatterPoints projeta cada linha em um ponto, sem agregação e mantendo duplicadas
func ScatterPoints(table *domain.Table, x, y, size domain.Measure, colorBy domain.Dimension) ([]domain.ScatterPoint, error) {
	points := make([]domain.ScatterPoint, 0, table.Len())

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		xv, err := x.Value(row)
		if err != nil {
			return nil, err
		}
		yv, err := y.Value(row)
		if err != nil {
			return nil, err
		}
		sv, err := size.Value(row)
		if err != nil {
			return nil, err
		}
		color, err := colorBy.Value(row)
		if err != nil {
			return nil, err
		}

		points = append(points, domain.ScatterPoint{X: xv, Y: yv, Size: sv, Color: color, Label: color})
	}

	return points, nil
}
