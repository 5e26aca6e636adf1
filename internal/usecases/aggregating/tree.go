package aggregating

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// TreeRootKey é a chave do nó raiz da árvore de distribuição
const TreeRootKey = "Total"

// DistributionTree agrupa recursivamente pelas dimensões do caminho. O valor de
// cada nó é a soma dos filhos; os filhos seguem a ordem natural da chave.
// As folhas ficam na última dimensão e agregam as linhas daquele grupo, sem um
// nó por linha.
func DistributionTree(table *domain.Table, path []domain.Dimension, measure domain.Measure) (*domain.TreeNode, error) {
	root := &domain.TreeNode{Key: TreeRootKey, Value: decimal.Zero}

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		v, err := measure.Value(row)
		if err != nil {
			return nil, err
		}

		node := root
		node.Value = node.Value.Add(v)
		node.Count++

		for _, d := range path {
			key, err := d.Value(row)
			if err != nil {
				return nil, err
			}

			node = child(node, d, key)
			node.Value = node.Value.Add(v)
			node.Count++
		}
	}

	sortTree(root)
	return root, nil
}

func child(parent *domain.TreeNode, d domain.Dimension, key string) *domain.TreeNode {
	for _, c := range parent.Children {
		if c.Key == key {
			return c
		}
	}

	c := &domain.TreeNode{Dimension: d, Key: key, Value: decimal.Zero}
	parent.Children = append(parent.Children, c)
	return c
}

func sortTree(node *domain.TreeNode) {
	if len(node.Children) == 0 {
		return
	}

	d := node.Children[0].Dimension
	sortNodes(node.Children, d)
	for _, c := range node.Children {
		sortTree(c)
	}
}

func sortNodes(nodes []*domain.TreeNode, d domain.Dimension) {
	slices.SortStableFunc(nodes, func(a, b *domain.TreeNode) int {
		switch {
		case d.Less(a.Key, b.Key):
			return -1
		case d.Less(b.Key, a.Key):
			return 1
		}
		return 0
	})
}
