package loading

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	loader := NewLoader(salesRange(t))
	loader.now = func() time.Time { return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC) }
	loader.newID = func() (string, error) { return "carga-1", nil }
	return loader
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Location().Return("supermarkt_sales.xlsx").AnyTimes()
	source.EXPECT().ReadRange(gomock.Any(), salesRange(t)).Return([][]string{
		salesHeader,
		salesRow("Yangon", "Member", "Female", "100", "8", "13:23:00"),
		salesRow("Mandalay", "Normal", "Male", "50", "6", "10:00:00"),
	}, nil).Times(1)

	loader := newTestLoader(t)

	table, err := loader.Load(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, "carga-1", table.ID())
	assert.Equal(t, "supermarkt_sales.xlsx", table.Source())
	assert.Equal(t, time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), table.LoadedAt())
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 13, table.Row(0).Hour)
	assert.Equal(t, 10, table.Row(1).Hour)
	assert.True(t, decimal.NewFromInt(50).Equal(table.Row(1).Total))

	again, err := loader.Load(context.Background(), source)
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestLoader_Load_Concorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Location().Return("supermarkt_sales.xlsx").AnyTimes()
	source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, interface{}) ([][]string, error) {
			time.Sleep(10 * time.Millisecond)
			return [][]string{
				salesHeader,
				salesRow("Yangon", "Member", "Female", "100", "8", "13:23:00"),
			}, nil
		}).Times(1)

	loader := newTestLoader(t)

	const callers = 8
	tables := make([]*domain.Table, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table, err := loader.Load(context.Background(), source)
			assert.NoError(t, err)
			tables[i] = table
		}(i)
	}
	wg.Wait()

	for _, table := range tables {
		assert.Same(t, tables[0], table)
	}
}

func TestLoader_Load_FontesDistintas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := [][]string{
		salesHeader,
		salesRow("Yangon", "Member", "Female", "100", "8", "13:23:00"),
	}

	first := mocks.NewMockSource(ctrl)
	first.EXPECT().Location().Return("janeiro.xlsx").AnyTimes()
	first.EXPECT().ReadRange(gomock.Any(), gomock.Any()).Return(rows, nil).Times(1)

	second := mocks.NewMockSource(ctrl)
	second.EXPECT().Location().Return("fevereiro.xlsx").AnyTimes()
	second.EXPECT().ReadRange(gomock.Any(), gomock.Any()).Return(rows, nil).Times(1)

	loader := newTestLoader(t)

	a, err := loader.Load(context.Background(), first)
	require.NoError(t, err)
	b, err := loader.Load(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, "janeiro.xlsx", a.Source())
	assert.Equal(t, "fevereiro.xlsx", b.Source())
}

func TestLoader_Load_ErroFicaEmCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Location().Return("supermarkt_sales.xlsx").AnyTimes()
	source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewSheetError("Sales")).Times(1)

	loader := newTestLoader(t)

	for i := 0; i < 2; i++ {
		_, err := loader.Load(context.Background(), source)

		var schemaErr *domain.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, domain.SchemaSheet, schemaErr.Element)
	}
}

func TestLoader_Load_ContextoCanceladoPermiteNovaTentativa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := [][]string{
		salesHeader,
		salesRow("Yangon", "Member", "Female", "100", "8", "13:23:00"),
	}

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Location().Return("supermarkt_sales.xlsx").AnyTimes()
	gomock.InOrder(
		source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).Return(nil, errors.Wrap(context.Canceled, "leitura interrompida")),
		source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).Return(rows, nil),
	)

	loader := newTestLoader(t)

	_, err := loader.Load(context.Background(), source)
	assert.ErrorIs(t, err, context.Canceled)

	table, err := loader.Load(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLoader_Load_ErroDeFormato(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Location().Return("supermarkt_sales.xlsx").AnyTimes()
	source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).Return([][]string{
		salesHeader,
		salesRow("Yangon", "Member", "Female", "100", "8", "1 PM"),
	}, nil)

	_, err := newTestLoader(t).Load(context.Background(), source)

	var formatErr *domain.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 5, formatErr.Row)
	assert.Equal(t, "Time", formatErr.Column)
}

func TestLoader_Load_CancelamentoDeOutroChamadorNaoAfetaQuemAguarda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := [][]string{
		salesHeader,
		salesRow("Yangon", "Member", "Female", "100", "8", "13:23:00"),
	}

	started := make(chan struct{})
	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Location().Return("supermarkt_sales.xlsx").AnyTimes()
	gomock.InOrder(
		source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ interface{}) ([][]string, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		source.EXPECT().ReadRange(gomock.Any(), gomock.Any()).Return(rows, nil),
	)

	loader := newTestLoader(t)
	firstCtx, cancel := context.WithCancel(context.Background())

	firstErr := make(chan error, 1)
	go func() {
		_, err := loader.Load(firstCtx, source)
		firstErr <- err
	}()
	<-started

	type result struct {
		table *domain.Table
		err   error
	}
	second := make(chan result, 1)
	go func() {
		table, err := loader.Load(context.Background(), source)
		second <- result{table: table, err: err}
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-firstErr, context.Canceled)

	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 1, got.table.Len())
}
