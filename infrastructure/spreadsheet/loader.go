package spreadsheet

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-report-rpa/internal/domain"
)

// Loader carrega a planilha de vendas e a converte no dataset canônico.
type Loader struct {
	log *logrus.Entry
}

func NewLoader(log *logrus.Entry) *Loader {
	return &Loader{log: log}
}

// Load lê a primeira aba do arquivo e retorna o dataset de vendas. Linhas
// com sede vazia ou preço não numérico são descartadas e contabilizadas em
// Dropped; o descarte é registrado em log, nunca retornado como erro.
func (l *Loader) Load(path string) (*domain.SalesDataset, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "arquivo %s", path)
		}
		return nil, errors.Wrapf(err, "erro ao acessar %s", path)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceMalformed, "erro ao abrir %s: %v", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrSourceMalformed, "planilha sem abas")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(ErrSourceMalformed, "erro ao ler a aba %s: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrSourceMalformed, "aba %s vazia", sheets[0])
	}

	columns, err := MapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	dataset := &domain.SalesDataset{}
	for _, row := range rows[1:] {
		record, ok := l.buildRecord(row, columns)
		if !ok {
			dataset.Dropped++
			continue
		}
		dataset.Records = append(dataset.Records, record)
	}

	if dataset.Dropped > 0 {
		l.log.Warnf("Foram descartadas %d linhas com sede ou preço inválidos", dataset.Dropped)
	}

	l.log.WithFields(logrus.Fields{
		"arquivo":     path,
		"registros":   dataset.Len(),
		"descartados": dataset.Dropped,
	}).Info("Dados de vendas carregados")

	return dataset, nil
}

func (l *Loader) buildRecord(row []string, columns columnIndexes) (domain.SaleRecord, bool) {
	site := strings.TrimSpace(cellAt(row, columns.Site))
	if site == "" {
		return domain.SaleRecord{}, false
	}

	price, err := ParsePrice(cellAt(row, columns.Price))
	if err != nil {
		return domain.SaleRecord{}, false
	}

	return domain.SaleRecord{
		Site:       site,
		Model:      strings.TrimSpace(cellAt(row, columns.Model)),
		Channel:    strings.TrimSpace(cellAt(row, columns.Channel)),
		GrossPrice: price,
		CustomerID: strings.TrimSpace(cellAt(row, columns.Customer)),
	}, true
}

// cellAt tolera linhas mais curtas que o cabeçalho, comum em arquivos xlsx.
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
