package reporting

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-report-rpa/internal/domain"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func fullReport() *domain.SalesReport {
	return &domain.SalesReport{
		RevenueBySite: []domain.SiteRevenue{
			{Site: "Lima Norte", Units: 80, NetRevenue: 2400000.456},
			{Site: "Arequipa", Units: 50, NetRevenue: 1500000},
			{Site: "Cusco", Units: 49, NetRevenue: 1490000},
		},
		TopModels: []domain.ModelCount{
			{Model: "Corolla", Units: 40},
			{Model: "Hilux", Units: 35},
			{Model: "Yaris", Units: 30},
		},
		ChannelRanking: []domain.ChannelCount{
			{Channel: "Concesionario", Units: 100},
			{Channel: "Online", Units: 79},
		},
		CustomerSegments: []domain.SegmentCount{
			{Segment: "Bajo", Customers: 20},
			{Segment: "Medio-Bajo", Customers: 15},
			{Segment: "Medio-Alto", Customers: 10},
			{Segment: "Alto", Customers: 5},
		},
		DistinctCustomers: 50,
		TotalSales:        179,
		GrossTotal:        6362000.538,
		NetTotal:          5390000.456,
	}
}

func TestGenerateAll_WritesAllArtifacts(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")
	service := NewService(outputDir, testLogger())

	files, err := service.GenerateAll(fullReport())

	require.NoError(t, err)
	assert.Len(t, files, 5)

	for _, name := range []string{
		FileSites, FileModels, FileChannels, FileSegments, FileDashboard, FileSummary,
	} {
		info, err := os.Stat(filepath.Join(outputDir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestGenerateAll_SummaryJSONRoundsAmounts(t *testing.T) {
	outputDir := t.TempDir()
	service := NewService(outputDir, testLogger())

	_, err := service.GenerateAll(fullReport())
	require.NoError(t, err)

	payload, err := os.ReadFile(filepath.Join(outputDir, FileSummary))
	require.NoError(t, err)

	var decoded domain.SalesReport
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, 179, decoded.TotalSales)
	assert.InDelta(t, 6362000.54, decoded.GrossTotal, 0.001)
	assert.InDelta(t, 5390000.46, decoded.NetTotal, 0.001)
	require.Len(t, decoded.RevenueBySite, 3)
	assert.InDelta(t, 2400000.46, decoded.RevenueBySite[0].NetRevenue, 0.001)
}

func TestGenerateAll_EmptyReportSkipsChartsKeepsDashboard(t *testing.T) {
	outputDir := t.TempDir()
	service := NewService(outputDir, testLogger())

	files, err := service.GenerateAll(&domain.SalesReport{})

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(outputDir, FileDashboard), files[0])

	for _, name := range []string{FileSites, FileModels, FileChannels, FileSegments} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.True(t, os.IsNotExist(err), name)
	}
}

func TestGenerateAll_UnwritableOutputDir(t *testing.T) {
	// Um arquivo comum no lugar do diretório de saída
	blocker := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	service := NewService(blocker, testLogger())

	_, err := service.GenerateAll(fullReport())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputWrite))
}
