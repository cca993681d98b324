package analyzing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	service := newTestService()
	report := service.Analyze(fixtureDataset())

	summary := service.BuildSummary(report)

	assert.Contains(t, summary, "REPORTE DE VENTAS")
	assert.Contains(t, summary, "Total de ventas: 179")
	assert.Contains(t, summary, "Clientes únicos: 60")
	assert.Contains(t, summary, "TOP 5 MODELOS")
	assert.Contains(t, summary, "VENTAS POR SEDE")

	// No máximo 3 sedes no resumo
	assert.LessOrEqual(t, strings.Count(summary, "• Lima")+strings.Count(summary, "• Arequipa")+
		strings.Count(summary, "• Trujillo")+strings.Count(summary, "• Cusco"), 3)
}

func TestBuildSummary_EmptyReport(t *testing.T) {
	service := newTestService()
	report := service.Analyze(nil)

	summary := service.BuildSummary(report)

	assert.Contains(t, summary, "Total de ventas: 0")
	assert.NotContains(t, summary, "TOP")
	assert.NotContains(t, summary, "VENTAS POR SEDE")
}
