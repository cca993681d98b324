package spreadsheet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "ventas.xlsx")
	require.NoError(t, file.SaveAs(path))
	require.NoError(t, file.Close())
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Sede", "Modelo", "Canal", "Precio de Venta", "Cliente"},
		{"Lima Norte", "Corolla", "Online", 118000.0, "C001"},
		{"Arequipa", "Hilux", "Concesionario", "95,000.50", "C002"},
		{"Cusco", "Yaris", "Feria", 70800.0, "C001"},
	})

	dataset, err := NewLoader(testLogger()).Load(path)

	require.NoError(t, err)
	require.Equal(t, 3, dataset.Len())
	assert.Zero(t, dataset.Dropped)

	first := dataset.Records[0]
	assert.Equal(t, "Lima Norte", first.Site)
	assert.Equal(t, "Corolla", first.Model)
	assert.Equal(t, "Online", first.Channel)
	assert.Equal(t, 118000.0, first.GrossPrice)
	assert.Equal(t, "C001", first.CustomerID)

	assert.Equal(t, 95000.50, dataset.Records[1].GrossPrice)
}

func TestLoad_DropsRowsWithInvalidCriticalFields(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Sede", "Modelo", "Canal", "Precio de Venta", "Cliente"},
		{"Lima Norte", "Corolla", "Online", 118000.0, "C001"},
		{"", "Hilux", "Online", 95000.0, "C002"},         // sede vazia
		{"Cusco", "Yaris", "Feria", "pendiente", "C003"}, // preço não numérico
		{"Trujillo", "Etios", "Online", -500.0, "C004"},  // preço negativo
		{"Arequipa", "RAV4", "Feria", 150000.0, "C005"},
	})

	dataset, err := NewLoader(testLogger()).Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2, dataset.Len())
	assert.Equal(t, 3, dataset.Dropped)
}

func TestLoad_ShortRowsAndMissingOptionalColumns(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Sede", "Precio de Venta"},
		{"Lima Norte", 118000.0},
		{"Arequipa"}, // linha curta, sem preço
	})

	dataset, err := NewLoader(testLogger()).Load(path)

	require.NoError(t, err)
	require.Equal(t, 1, dataset.Len())
	assert.Equal(t, 1, dataset.Dropped)
	assert.Empty(t, dataset.Records[0].Model)
	assert.Empty(t, dataset.Records[0].CustomerID)
}

func TestLoad_SourceNotFound(t *testing.T) {
	_, err := NewLoader(testLogger()).Load(filepath.Join(t.TempDir(), "no-existe.xlsx"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLoad_SourceMalformed(t *testing.T) {
	t.Run("arquivo que não é planilha", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ventas.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("no soy un xlsx"), 0o644))

		_, err := NewLoader(testLogger()).Load(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceMalformed)
	})

	t.Run("sem colunas obrigatórias", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"Columna A", "Columna B"},
			{"x", "y"},
		})

		_, err := NewLoader(testLogger()).Load(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceMalformed)
	})
}
