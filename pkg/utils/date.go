package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Formatos de data aceitos nas planilhas, do mais específico ao mais genérico
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
}

func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, errors.New("data vazia")
	}

	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return &date, nil
		}
	}

	return nil, errors.Errorf("formato de data não reconhecido: %s", dateStr)
}
