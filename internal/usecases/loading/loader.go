package loading

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// TableLoader carrega a tabela de vendas de uma fonte
type TableLoader interface {
	Load(ctx context.Context, source spreadsheet.Source) (*domain.Table, error)
}

// Loader lê cada planilha no máximo uma vez durante a vida do processo.
// Chamadas concorrentes para a mesma localização compartilham o resultado.
type Loader struct {
	rng   spreadsheet.Range
	mu    sync.Mutex
	cache map[string]*loadEntry

	now   func() time.Time
	newID func() (string, error)
}

type loadEntry struct {
	once  sync.Once
	table *domain.Table
	err   error
}

func NewLoader(rng spreadsheet.Range) *Loader {
	return &Loader{
		rng:   rng,
		cache: make(map[string]*loadEntry),
		now:   time.Now,
		newID: utils.GenerateID,
	}
}

// Load retorna a tabela da fonte, lendo a planilha apenas na primeira chamada.
// Erros de carga também ficam em cache, exceto cancelamento e timeout do contexto.
// Se a carga de outro chamador foi cancelada e o ctx ainda está ativo, lê de novo.
func (l *Loader) Load(ctx context.Context, source spreadsheet.Source) (*domain.Table, error) {
	location := source.Location()

	for {
		entry := l.entry(location)

		ran := false
		entry.once.Do(func() {
			ran = true
			entry.table, entry.err = l.read(ctx, source)
		})

		if entry.err == nil || !isContextError(entry.err) {
			return entry.table, entry.err
		}

		l.evict(location, entry)
		if ran || ctx.Err() != nil {
			return nil, entry.err
		}
	}
}

func (l *Loader) entry(location string) *loadEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.cache[location]
	if !ok {
		entry = &loadEntry{}
		l.cache[location] = entry
	}
	return entry
}

func (l *Loader) evict(location string, entry *loadEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cache[location] == entry {
		delete(l.cache, location)
	}
}

func (l *Loader) read(ctx context.Context, source spreadsheet.Source) (*domain.Table, error) {
	start := l.now()
	location := source.Location()

	rows, err := source.ReadRange(ctx, l.rng)
	if err != nil {
		logrus.WithError(err).WithField("source", location).Error("Erro ao ler a planilha")
		return nil, err
	}

	transactions, err := normalize(rows, l.rng)
	if err != nil {
		logrus.WithError(err).WithField("source", location).Error("Erro ao normalizar a planilha")
		return nil, err
	}

	id, err := l.newID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id da carga")
	}

	loadedAt := l.now()
	logrus.WithFields(logrus.Fields{
		"source":     location,
		"dataset_id": id,
		"rows":       len(transactions),
		"duration":   loadedAt.Sub(start).String(),
	}).Info("Planilha de vendas carregada")

	return domain.NewTable(id, location, loadedAt, transactions), nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
