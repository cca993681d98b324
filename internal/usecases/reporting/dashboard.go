package reporting

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/vfg2006/sales-report-rpa/internal/domain"
	"github.com/vfg2006/sales-report-rpa/pkg/utils"
)

// Gráfico 5: dashboard integrado. Uma tabela com as métricas principais no
// topo e, abaixo, os quatro gráficos individuais em grade de duas colunas.
// Sempre é gerado, mesmo com dataset vazio (só a tabela, zerada).
func (s *Service) renderDashboard(report *domain.SalesReport, panels [][]byte) ([]byte, error) {
	header, err := renderMetricsTable(report)
	if err != nil {
		return nil, err
	}

	return composeDashboard(header, panels)
}

func renderMetricsTable(report *domain.SalesReport) ([]byte, error) {
	painter, err := charts.TableOptionRender(charts.TableChartOption{
		Width:  chartWidth * 2,
		Header: []string{"Métrica", "Valor"},
		Data: [][]string{
			{"Total de Ventas", strconv.Itoa(report.TotalSales)},
			{"Clientes Únicos", strconv.Itoa(report.DistinctCustomers)},
			{"Monto Total con IGV", utils.FormatMoney(report.GrossTotal)},
			{"Monto Total sin IGV", utils.FormatMoney(report.NetTotal)},
		},
	})
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// composeDashboard monta a imagem final: cabeçalho em largura cheia e os
// painéis em grade de duas colunas, sobre fundo branco.
func composeDashboard(header []byte, panels [][]byte) ([]byte, error) {
	headerImg, err := png.Decode(bytes.NewReader(header))
	if err != nil {
		return nil, err
	}

	images := make([]image.Image, 0, len(panels))
	for _, panel := range panels {
		img, err := png.Decode(bytes.NewReader(panel))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	rows := (len(images) + 1) / 2
	width := chartWidth * 2
	height := headerImg.Bounds().Dy() + rows*chartHeight

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	headerRect := image.Rect(0, 0, headerImg.Bounds().Dx(), headerImg.Bounds().Dy())
	draw.Draw(canvas, headerRect, headerImg, headerImg.Bounds().Min, draw.Src)

	for i, img := range images {
		x := (i % 2) * chartWidth
		y := headerImg.Bounds().Dy() + (i/2)*chartHeight
		rect := image.Rect(x, y, x+img.Bounds().Dx(), y+img.Bounds().Dy())
		draw.Draw(canvas, rect, img, img.Bounds().Min, draw.Src)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
