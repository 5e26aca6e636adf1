package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CustomerTypeMember = "Member"
	CustomerTypeNormal = "Normal"

	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Transaction representa uma linha de venda da planilha, já normalizada
type Transaction struct {
	InvoiceID    string          `json:"invoice_id,omitempty"`
	Branch       string          `json:"branch,omitempty"`
	City         string          `json:"city"`
	CustomerType string          `json:"customer_type"`
	Gender       string          `json:"gender"`
	ProductLine  string          `json:"product_line"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	Payment      string          `json:"payment,omitempty"`
	Rating       decimal.Decimal `json:"rating"`
	Date         time.Time       `json:"date"`
	Time         string          `json:"time"`
	Hour         int             `json:"hour"` // Derivado de Time na carga
}
