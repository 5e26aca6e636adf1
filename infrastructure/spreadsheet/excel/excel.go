// Package excel implementa a leitura de planilhas .xlsx locais
package excel

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

type Source struct {
	path string
}

var _ spreadsheet.Source = (*Source)(nil)

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Location() string {
	return s.path
}

// ReadRange abre o arquivo e lê o intervalo com os valores formatados das células
func (s *Source) ReadRange(ctx context.Context, r spreadsheet.Range) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewResourceError(s.path)
		}
		return nil, errors.Wrapf(err, "erro ao abrir a planilha %s", s.path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a planilha")
		}
	}()

	idx, err := f.GetSheetIndex(r.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao localizar a aba %s", r.Sheet)
	}
	if idx == -1 {
		return nil, domain.NewSheetError(r.Sheet)
	}

	rows, err := f.GetRows(r.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %s", r.Sheet)
	}

	logrus.WithFields(logrus.Fields{
		"path":  s.path,
		"range": r.A1(),
		"rows":  len(rows),
	}).Debug("Aba lida do arquivo local")

	return r.Window(rows), nil
}
