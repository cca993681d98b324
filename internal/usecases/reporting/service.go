package reporting

import (
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	charts "github.com/vicanso/go-charts/v2"

	"github.com/vfg2006/sales-report-rpa/internal/domain"
	"github.com/vfg2006/sales-report-rpa/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes determinísticos dos artefatos; cada execução sobrescreve a anterior.
const (
	FileSites     = "ventas_por_sede.png"
	FileModels    = "top_modelos.png"
	FileChannels  = "canales_ventas.png"
	FileSegments  = "segmentacion_clientes.png"
	FileDashboard = "dashboard_resumen.png"
	FileSummary   = "resumen.json"
)

const (
	chartWidth  = 900
	chartHeight = 500
)

// Service gera os cinco relatórios visuais e o resumo em JSON a partir do
// relatório calculado.
type Service struct {
	outputDir string
	log       *logrus.Entry
}

func NewService(outputDir string, log *logrus.Entry) *Service {
	return &Service{outputDir: outputDir, log: log}
}

// GenerateAll grava todos os artefatos no diretório de saída e retorna os
// caminhos dos gráficos gerados. Gráficos sem dados são pulados com um log;
// falhas de escrita interrompem a geração deixando os artefatos parciais.
func (s *Service) GenerateAll(report *domain.SalesReport) ([]string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(ErrOutputWrite, "erro ao criar %s: %v", s.outputDir, err)
	}

	steps := []struct {
		name   string
		render func(*domain.SalesReport) ([]byte, error)
	}{
		{FileSites, s.renderSites},
		{FileModels, s.renderTopModels},
		{FileChannels, s.renderChannels},
		{FileSegments, s.renderSegments},
	}

	files := make([]string, 0, len(steps)+1)
	panels := make([][]byte, 0, len(steps))

	for _, step := range steps {
		buf, err := step.render(report)
		if err != nil {
			return files, errors.Wrapf(err, "erro ao gerar %s", step.name)
		}
		if buf == nil {
			s.log.Infof("Gráfico %s pulado: sem dados", step.name)
			continue
		}

		path, err := s.write(step.name, buf)
		if err != nil {
			return files, err
		}
		files = append(files, path)
		panels = append(panels, buf)
	}

	dashboard, err := s.renderDashboard(report, panels)
	if err != nil {
		return files, errors.Wrap(err, "erro ao gerar o dashboard")
	}
	path, err := s.write(FileDashboard, dashboard)
	if err != nil {
		return files, err
	}
	files = append(files, path)

	if err := s.writeSummaryJSON(report); err != nil {
		return files, err
	}

	s.log.Infof("Foram gerados %d relatórios visuais em %s", len(files), s.outputDir)
	return files, nil
}

func (s *Service) write(name string, buf []byte) (string, error) {
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", errors.Wrapf(ErrOutputWrite, "erro ao gravar %s: %v", path, err)
	}
	s.log.Infof("Relatório gravado: %s", path)
	return path, nil
}

// writeSummaryJSON grava o resumo numérico do relatório, com os montantes
// arredondados para duas casas apenas na serialização.
func (s *Service) writeSummaryJSON(report *domain.SalesReport) error {
	rounded := *report
	rounded.GrossTotal = utils.RoundWithTwoDecimalPlace(report.GrossTotal)
	rounded.NetTotal = utils.RoundWithTwoDecimalPlace(report.NetTotal)
	rounded.RevenueBySite = make([]domain.SiteRevenue, len(report.RevenueBySite))
	for i, site := range report.RevenueBySite {
		site.NetRevenue = utils.RoundWithTwoDecimalPlace(site.NetRevenue)
		rounded.RevenueBySite[i] = site
	}

	payload, err := json.MarshalIndent(&rounded, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o resumo")
	}

	_, err = s.write(FileSummary, payload)
	return err
}

// Gráfico 1: barras verticais de vendas sem IGV por sede
func (s *Service) renderSites(report *domain.SalesReport) ([]byte, error) {
	if len(report.RevenueBySite) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(report.RevenueBySite))
	values := make([]float64, 0, len(report.RevenueBySite))
	for _, site := range report.RevenueBySite {
		names = append(names, site.Site)
		values = append(values, utils.RoundWithTwoDecimalPlace(site.NetRevenue))
	}

	painter, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Ventas sin IGV por Sede"),
		charts.XAxisDataOptionFunc(names),
		charts.LegendLabelsOptionFunc([]string{"Ventas sin IGV"}),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Gráfico 2: barras horizontais dos modelos mais vendidos. Horizontal
// porque os nomes de modelo costumam ser longos.
func (s *Service) renderTopModels(report *domain.SalesReport) ([]byte, error) {
	if len(report.TopModels) == 0 {
		return nil, nil
	}

	// Invertido para o modelo mais vendido ficar no topo do eixo Y
	names := make([]string, 0, len(report.TopModels))
	values := make([]float64, 0, len(report.TopModels))
	for i := len(report.TopModels) - 1; i >= 0; i-- {
		names = append(names, report.TopModels[i].Model)
		values = append(values, float64(report.TopModels[i].Units))
	}

	painter, err := charts.HorizontalBarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Top "+strconv.Itoa(len(report.TopModels))+" Modelos Más Vendidos"),
		charts.YAxisDataOptionFunc(names),
		charts.LegendLabelsOptionFunc([]string{"Unidades"}),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Gráfico 3: barras verticais de unidades vendidas por canal
func (s *Service) renderChannels(report *domain.SalesReport) ([]byte, error) {
	if len(report.ChannelRanking) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(report.ChannelRanking))
	values := make([]float64, 0, len(report.ChannelRanking))
	for _, channel := range report.ChannelRanking {
		names = append(names, channel.Channel)
		values = append(values, float64(channel.Units))
	}

	painter, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Canales con Más Ventas"),
		charts.XAxisDataOptionFunc(names),
		charts.LegendLabelsOptionFunc([]string{"Unidades"}),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Gráfico 4: pizza da segmentação de clientes por faixa de preço
func (s *Service) renderSegments(report *domain.SalesReport) ([]byte, error) {
	// Faixas sem clientes ficam fora da pizza
	labels := make([]string, 0, len(report.CustomerSegments))
	values := make([]float64, 0, len(report.CustomerSegments))
	for _, segment := range report.CustomerSegments {
		if segment.Customers == 0 {
			continue
		}
		labels = append(labels, segment.Segment)
		values = append(values, float64(segment.Customers))
	}
	if len(values) == 0 {
		return nil, nil
	}

	painter, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc("Segmentación de Clientes por Ventas sin IGV"),
		charts.LegendLabelsOptionFunc(labels),
		charts.PieSeriesShowLabel(),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
