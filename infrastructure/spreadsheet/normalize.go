package spreadsheet

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Campos canônicos usados internamente pelo loader.
const (
	colPrice    = "precio de venta"
	colSite     = "sede"
	colCustomer = "cliente"
	colModel    = "modelo"
	colChannel  = "canal"
)

// canonicalColumns relaciona cada campo canônico às variantes de cabeçalho
// encontradas nas planilhas reais (maiúsculas, acentos e espaços variam).
var canonicalColumns = map[string][]string{
	colPrice:    {"precio de venta", "precio venta real", "precio venta", "precio venta (con igv)"},
	colSite:     {"sede", "ubicacion", "ubicacion sede"},
	colCustomer: {"cliente", "clientes"},
	colModel:    {"modelo", "id vehiculo"},
	colChannel:  {"canal"},
}

var accentRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(text string) string {
	result, _, err := transform.String(accentRemover, text)
	if err != nil {
		return text
	}
	return result
}

// NormalizeColumnName reduz um cabeçalho a minúsculas sem acentos, com
// underscores convertidos em espaços e espaços repetidos colapsados.
func NormalizeColumnName(name string) string {
	name = stripAccents(name)
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

// columnIndexes guarda a posição de cada campo canônico no cabeçalho.
// Valor -1 indica coluna ausente.
type columnIndexes struct {
	Price    int
	Site     int
	Customer int
	Model    int
	Channel  int
}

// MapColumns localiza os campos canônicos no cabeçalho da planilha.
// Preço e sede são obrigatórios; os demais campos ficam vazios se ausentes.
func MapColumns(header []string) (columnIndexes, error) {
	indexes := columnIndexes{Price: -1, Site: -1, Customer: -1, Model: -1, Channel: -1}

	normalizedToIndex := make(map[string]int, len(header))
	for i, name := range header {
		normalized := NormalizeColumnName(name)
		if normalized == "" {
			continue
		}
		if _, exists := normalizedToIndex[normalized]; !exists {
			normalizedToIndex[normalized] = i
		}
	}

	find := func(canonical string) int {
		for _, variant := range canonicalColumns[canonical] {
			if idx, ok := normalizedToIndex[variant]; ok {
				return idx
			}
		}
		return -1
	}

	indexes.Price = find(colPrice)
	indexes.Site = find(colSite)
	indexes.Customer = find(colCustomer)
	indexes.Model = find(colModel)
	indexes.Channel = find(colChannel)

	// Último recurso para o preço: qualquer coluna com "precio" e "venta"
	if indexes.Price < 0 {
		for normalized, idx := range normalizedToIndex {
			if strings.Contains(normalized, "precio") && strings.Contains(normalized, "venta") {
				indexes.Price = idx
				break
			}
		}
	}

	if indexes.Price < 0 {
		return indexes, errors.Wrap(ErrSourceMalformed, "coluna de preço de venda não encontrada")
	}
	if indexes.Site < 0 {
		return indexes, errors.Wrap(ErrSourceMalformed, "coluna de sede não encontrada")
	}

	return indexes, nil
}

// ParsePrice converte o texto de uma célula de preço em número, tolerando
// símbolo de moeda e separador de milhar. Preços negativos são inválidos.
func ParsePrice(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "S/")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return 0, errors.New("preço vazio")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "preço inválido %q", text)
	}
	if value < 0 {
		return 0, errors.Errorf("preço negativo %q", text)
	}

	return value, nil
}
