// Package google implementa a leitura de planilhas pela API do Google Sheets
package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Source struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ spreadsheet.Source = (*Source)(nil)

// New cria a fonte para a planilha informada. As opções definem credenciais,
// endpoint e cliente HTTP.
func New(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Source, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("ID da planilha do Google é obrigatório")
	}

	opts = append([]option.ClientOption{option.WithScopes(gsheet.SpreadsheetsReadonlyScope)}, opts...)
	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Google Sheets")
	}

	return &Source{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (s *Source) Location() string {
	return "gsheets://" + s.spreadsheetID
}

// ReadRange busca o intervalo em A1 com os valores formatados das células
func (s *Source) ReadRange(ctx context.Context, r spreadsheet.Range) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, r.A1()).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, s.translateError(err, r)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		rows = append(rows, toStrings(values))
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": s.spreadsheetID,
		"range":          r.A1(),
		"rows":           len(rows),
	}).Debug("Intervalo lido do Google Sheets")

	return r.Pad(rows), nil
}

func (s *Source) translateError(err error, r spreadsheet.Range) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusNotFound:
			return domain.NewResourceError(s.Location())
		case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range"):
			return domain.NewSheetError(r.Sheet)
		}
	}

	return errors.Wrapf(err, "erro ao ler o intervalo %s", r.A1())
}

func toStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
