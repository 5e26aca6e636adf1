package dashboarding

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	currencyPrefix = "US $ "
	star           = "⭐"
	undefinedLabel = "-"
)

// totalSalesLabel exibe a parte inteira do total com separador de milhar
func totalSalesLabel(total decimal.Decimal) string {
	return currencyPrefix + utils.FormatThousands(total.IntPart())
}

func starRatingLabel(avg decimal.NullDecimal, stars int) string {
	if !avg.Valid {
		return undefinedLabel
	}
	return fmt.Sprintf("%s %s", avg.Decimal.StringFixed(1), strings.Repeat(star, stars))
}

func averageSaleLabel(avg decimal.NullDecimal) string {
	if !avg.Valid {
		return undefinedLabel
	}
	return currencyPrefix + avg.Decimal.StringFixed(2)
}
