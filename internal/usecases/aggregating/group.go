package aggregating

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// KeySeparator separa as partes de uma chave composta no rótulo do grupo
const KeySeparator = " / "

type group struct {
	key   []string
	value decimal.Decimal
	count int
}

// collect agrupa as linhas pela combinação de valores das dimensões e soma a medida
func collect(table *domain.Table, by []domain.Dimension, measure domain.Measure) ([]*group, error) {
	if len(by) == 0 {
		return nil, errors.New("agrupamento sem dimensões")
	}

	index := make(map[string]*group)
	groups := make([]*group, 0)

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		key := make([]string, len(by))
		for j, d := range by {
			v, err := d.Value(row)
			if err != nil {
				return nil, err
			}
			key[j] = v
		}

		v, err := measure.Value(row)
		if err != nil {
			return nil, err
		}

		id := strings.Join(key, "\x00")
		g, ok := index[id]
		if !ok {
			g = &group{key: key, value: decimal.Zero}
			index[id] = g
			groups = append(groups, g)
		}
		g.value = g.value.Add(v)
		g.count++
	}

	return groups, nil
}

func compareKeys(by []domain.Dimension, a, b []string) int {
	for i, d := range by {
		switch {
		case d.Less(a[i], b[i]):
			return -1
		case d.Less(b[i], a[i]):
			return 1
		}
	}
	return 0
}

// GroupSum soma a medida por combinação das dimensões. OrderByValue ordena pelo
// valor crescente, com empate resolvido pela chave; OrderByKey usa a ordem
// natural da chave (hora numérica, data cronológica).
func GroupSum(table *domain.Table, by []domain.Dimension, measure domain.Measure, order domain.GroupOrder) ([]domain.GroupTotal, error) {
	groups, err := collect(table, by, measure)
	if err != nil {
		return nil, err
	}

	switch order {
	case domain.OrderByValue:
		slices.SortStableFunc(groups, func(a, b *group) int {
			if c := a.value.Cmp(b.value); c != 0 {
				return c
			}
			return compareKeys(by, a.key, b.key)
		})
	case domain.OrderByKey:
		slices.SortStableFunc(groups, func(a, b *group) int {
			return compareKeys(by, a.key, b.key)
		})
	default:
		return nil, errors.Errorf("ordenação desconhecida: %s", order)
	}

	totals := make([]domain.GroupTotal, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, domain.GroupTotal{
			Key:   g.key,
			Label: strings.Join(g.key, KeySeparator),
			Value: g.value,
			Count: g.count,
		})
	}

	return totals, nil
}

// GroupShare soma a medida por valor da dimensão e calcula a participação de
// cada grupo no total geral, em porcentagem. Sem total geral a participação é nula.
func GroupShare(table *domain.Table, by domain.Dimension, measure domain.Measure) ([]domain.GroupShare, error) {
	dims := []domain.Dimension{by}

	groups, err := collect(table, dims, measure)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(groups, func(a, b *group) int {
		return compareKeys(dims, a.key, b.key)
	})

	grand := decimal.Zero
	for _, g := range groups {
		grand = grand.Add(g.value)
	}

	shares := make([]domain.GroupShare, 0, len(groups))
	for _, g := range groups {
		share := domain.GroupShare{Key: g.key[0], Value: g.value}
		if !grand.IsZero() {
			share.Percent = decimal.NewNullDecimal(g.value.Div(grand).Mul(hundred))
		}
		shares = append(shares, share)
	}

	return shares, nil
}
