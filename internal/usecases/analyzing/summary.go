package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-report-rpa/internal/domain"
	"github.com/vfg2006/sales-report-rpa/pkg/utils"
)

const summaryTopSites = 3

// BuildSummary monta o texto enviado por WhatsApp com os destaques do
// relatório: totais, modelos mais vendidos e as principais sedes.
func (s *Service) BuildSummary(report *domain.SalesReport) string {
	var b strings.Builder

	b.WriteString("📊 *REPORTE DE VENTAS - ANÁLISIS AUTOMÁTICO*\n")
	b.WriteString(strings.Repeat("=", 45) + "\n\n")

	b.WriteString("📈 *MÉTRICAS PRINCIPALES*\n")
	fmt.Fprintf(&b, "• Total de ventas: %d\n", report.TotalSales)
	fmt.Fprintf(&b, "• Clientes únicos: %d\n", report.DistinctCustomers)
	fmt.Fprintf(&b, "• Monto total (con IGV): %s\n", utils.FormatMoney(report.GrossTotal))
	fmt.Fprintf(&b, "• Monto total (sin IGV): %s\n\n", utils.FormatMoney(report.NetTotal))

	if len(report.TopModels) > 0 {
		fmt.Fprintf(&b, "🚗 *TOP %d MODELOS MÁS VENDIDOS*\n", len(report.TopModels))
		for i, model := range report.TopModels {
			fmt.Fprintf(&b, "%d. %s: %d unidades\n", i+1, model.Model, model.Units)
		}
		b.WriteString("\n")
	}

	if len(report.RevenueBySite) > 0 {
		b.WriteString("🏢 *VENTAS POR SEDE (sin IGV)*\n")
		sites := report.RevenueBySite
		if len(sites) > summaryTopSites {
			sites = sites[:summaryTopSites]
		}
		for _, site := range sites {
			fmt.Fprintf(&b, "• %s: %s\n", site.Site, utils.FormatMoney(site.NetRevenue))
		}
		b.WriteString("\n")
	}

	b.WriteString("📱 Gráficos adjuntos en los siguientes mensajes.\n")
	b.WriteString("🤖 Reporte generado automáticamente por RPA")

	return b.String()
}
