package loading

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Cabeçalhos das colunas da planilha de vendas
const (
	columnInvoiceID    = "Invoice ID"
	columnBranch       = "Branch"
	columnCity         = "City"
	columnCustomerType = "Customer_type"
	columnGender       = "Gender"
	columnProductLine  = "Product line"
	columnUnitPrice    = "Unit price"
	columnQuantity     = "Quantity"
	columnTotal        = "Total"
	columnPayment      = "Payment"
	columnRating       = "Rating"
	columnTime         = "Time"
	columnDate         = "Date"
)

// TimeLayout é o formato hora:minuto:segundo (24h) da coluna Time
const TimeLayout = "15:04:05"

// time.Parse aceita frações de segundo mesmo fora do layout
var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)

var requiredColumns = []string{
	columnCity,
	columnCustomerType,
	columnGender,
	columnProductLine,
	columnUnitPrice,
	columnQuantity,
	columnTotal,
	columnRating,
	columnTime,
	columnDate,
}

type columnIndex map[string]int

// indexHeader mapeia o nome de cada coluna para sua posição e valida as obrigatórias
func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := idx[column]; !ok {
			return nil, domain.NewColumnError(column)
		}
	}

	return idx, nil
}

func (idx columnIndex) get(cells []string, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// normalize converte as linhas lidas (cabeçalho primeiro) em transações.
// Linhas totalmente vazias são o preenchimento do intervalo fixo e são ignoradas.
func normalize(rows [][]string, r spreadsheet.Range) ([]domain.Transaction, error) {
	if len(rows) == 0 {
		return nil, domain.NewColumnError(requiredColumns[0])
	}

	idx, err := indexHeader(rows[0])
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}

		rowNumber := r.HeaderRow + 1 + i
		t, err := parseRow(cells, idx, rowNumber)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

func parseRow(cells []string, idx columnIndex, rowNumber int) (domain.Transaction, error) {
	p := rowParser{cells: cells, idx: idx, row: rowNumber}

	t := domain.Transaction{
		InvoiceID:    idx.get(cells, columnInvoiceID),
		Branch:       idx.get(cells, columnBranch),
		City:         p.text(columnCity),
		CustomerType: p.text(columnCustomerType),
		Gender:       p.text(columnGender),
		ProductLine:  p.text(columnProductLine),
		UnitPrice:    p.amount(columnUnitPrice),
		Quantity:     p.integer(columnQuantity),
		Total:        p.amount(columnTotal),
		Payment:      idx.get(cells, columnPayment),
		Rating:       p.amount(columnRating),
		Date:         p.date(columnDate),
		Time:         p.text(columnTime),
	}

	if p.err != nil {
		return domain.Transaction{}, p.err
	}

	hour, err := ParseHour(t.Time)
	if err != nil {
		return domain.Transaction{}, &domain.FormatError{Row: rowNumber, Column: columnTime, Value: t.Time, Reason: err.Error()}
	}
	t.Hour = hour

	return t, nil
}

// ParseHour extrai a hora de um horário no formato hora:minuto:segundo
func ParseHour(value string) (int, error) {
	value = strings.TrimSpace(value)
	if !timePattern.MatchString(value) {
		return 0, errors.Errorf("horário fora do formato HH:MM:SS: %q", value)
	}

	parsed, err := time.Parse(TimeLayout, value)
	if err != nil {
		return 0, err
	}
	return parsed.Hour(), nil
}

// rowParser guarda o primeiro erro encontrado na linha
type rowParser struct {
	cells []string
	idx   columnIndex
	row   int
	err   error
}

func (p *rowParser) fail(column, value, reason string) {
	if p.err == nil {
		p.err = &domain.FormatError{Row: p.row, Column: column, Value: value, Reason: reason}
	}
}

func (p *rowParser) text(column string) string {
	v := p.idx.get(p.cells, column)
	if v == "" {
		p.fail(column, "", "valor obrigatório ausente")
	}
	return v
}

func (p *rowParser) amount(column string) decimal.Decimal {
	raw := p.text(column)
	if raw == "" {
		return decimal.Zero
	}

	d, err := utils.ParseAmount(raw)
	if err != nil {
		p.fail(column, raw, "número inválido")
		return decimal.Zero
	}
	if d.IsNegative() {
		p.fail(column, raw, "valor negativo")
		return decimal.Zero
	}
	return d
}

func (p *rowParser) integer(column string) int {
	raw := p.idx.get(p.cells, column)
	d := p.amount(column)
	if p.err != nil {
		return 0
	}
	if !d.IsInteger() {
		p.fail(column, raw, "quantidade deve ser inteira")
		return 0
	}
	return int(d.IntPart())
}

func (p *rowParser) date(column string) time.Time {
	raw := p.text(column)
	if raw == "" {
		return time.Time{}
	}

	d, err := utils.ParseDate(raw)
	if err != nil {
		p.fail(column, raw, "data inválida")
		return time.Time{}
	}
	return *d
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
