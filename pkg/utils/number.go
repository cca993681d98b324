package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor monetário com separador de milhar e duas
// casas decimais, para textos de resumo e rótulos de gráfico.
func FormatMoney(f float64) string {
	return fmt.Sprintf("$%s", humanize.CommafWithDigits(RoundWithTwoDecimalPlace(f), 2))
}
