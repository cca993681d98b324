package analyzing

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-report-rpa/internal/domain"
)

// Valores usados quando a configuração não define os parâmetros da análise.
var (
	defaultSegmentBounds = []float64{25000, 50000, 75000}
	defaultSegmentLabels = []string{"Bajo", "Medio-Bajo", "Medio-Alto", "Alto"}
)

const (
	defaultIGVRate        = 0.18
	defaultTopModelsCount = 5
)

// Options controla os parâmetros fixos da análise.
type Options struct {
	// IGVRate é a taxa de imposto embutida no preço bruto. O valor líquido
	// de cada venda é gross / (1 + IGVRate).
	IGVRate float64

	// TopModelsCount limita o ranking de modelos mais vendidos.
	TopModelsCount int

	// SegmentBounds são os limites superiores das faixas de preço (sem IGV);
	// a última faixa é aberta. SegmentLabels deve ter len(bounds)+1 rótulos.
	SegmentBounds []float64
	SegmentLabels []string
}

// Service calcula as métricas do relatório. A análise é uma função pura do
// dataset: nenhum estado sobrevive entre execuções.
type Service struct {
	opts Options
	log  *logrus.Entry
}

func NewService(opts Options, log *logrus.Entry) *Service {
	if opts.IGVRate <= 0 {
		opts.IGVRate = defaultIGVRate
	}
	if opts.TopModelsCount <= 0 {
		opts.TopModelsCount = defaultTopModelsCount
	}
	if len(opts.SegmentBounds) == 0 || len(opts.SegmentLabels) != len(opts.SegmentBounds)+1 {
		opts.SegmentBounds = defaultSegmentBounds
		opts.SegmentLabels = defaultSegmentLabels
	}

	return &Service{opts: opts, log: log}
}

// counter acumula unidades por chave preservando a ordem de aparição, que
// desempata os rankings.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked retorna as chaves por contagem decrescente; empates mantêm a ordem
// de aparição no dataset.
func (c *counter) ranked() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

// Analyze calcula as oito métricas do relatório a partir do dataset.
// Um dataset vazio produz métricas zeradas e agrupamentos vazios.
func (s *Service) Analyze(dataset *domain.SalesDataset) *domain.SalesReport {
	report := &domain.SalesReport{
		RevenueBySite:    []domain.SiteRevenue{},
		TopModels:        []domain.ModelCount{},
		ChannelRanking:   []domain.ChannelCount{},
		CustomerSegments: []domain.SegmentCount{},
	}

	if dataset.Empty() {
		s.log.Warn("Dataset vazio, métricas zeradas")
		return report
	}

	divisor := 1 + s.opts.IGVRate

	siteNet := make(map[string]float64)
	siteUnits := newCounter()
	models := newCounter()
	channels := newCounter()
	customers := make(map[string]struct{})
	segmentCustomers := make([]map[string]struct{}, len(s.opts.SegmentLabels))
	for i := range segmentCustomers {
		segmentCustomers[i] = make(map[string]struct{})
	}

	for _, record := range dataset.Records {
		net := record.GrossPrice / divisor

		report.GrossTotal += record.GrossPrice
		report.NetTotal += net

		siteUnits.add(record.Site)
		siteNet[record.Site] += net

		models.add(record.Model)
		channels.add(record.Channel)

		if record.CustomerID != "" {
			customers[record.CustomerID] = struct{}{}
			segmentCustomers[s.segmentIndex(net)][record.CustomerID] = struct{}{}
		}
	}

	report.TotalSales = dataset.Len()
	report.DistinctCustomers = len(customers)

	// Sedes ordenadas por faturamento sem IGV decrescente
	sites := make([]string, len(siteUnits.order))
	copy(sites, siteUnits.order)
	sort.SliceStable(sites, func(i, j int) bool {
		return siteNet[sites[i]] > siteNet[sites[j]]
	})
	for _, site := range sites {
		report.RevenueBySite = append(report.RevenueBySite, domain.SiteRevenue{
			Site:       site,
			Units:      siteUnits.counts[site],
			NetRevenue: siteNet[site],
		})
	}

	rankedModels := models.ranked()
	if len(rankedModels) > s.opts.TopModelsCount {
		rankedModels = rankedModels[:s.opts.TopModelsCount]
	}
	for _, model := range rankedModels {
		report.TopModels = append(report.TopModels, domain.ModelCount{
			Model: model,
			Units: models.counts[model],
		})
	}

	for _, channel := range channels.ranked() {
		report.ChannelRanking = append(report.ChannelRanking, domain.ChannelCount{
			Channel: channel,
			Units:   channels.counts[channel],
		})
	}

	for i, label := range s.opts.SegmentLabels {
		report.CustomerSegments = append(report.CustomerSegments, domain.SegmentCount{
			Segment:   label,
			Customers: len(segmentCustomers[i]),
		})
	}

	s.log.WithFields(logrus.Fields{
		"sedes":    len(report.RevenueBySite),
		"modelos":  len(report.TopModels),
		"canales":  len(report.ChannelRanking),
		"clientes": report.DistinctCustomers,
		"ventas":   report.TotalSales,
	}).Info("Análise de vendas concluída")

	return report
}

// segmentIndex classifica um preço líquido na faixa configurada.
func (s *Service) segmentIndex(net float64) int {
	for i, bound := range s.opts.SegmentBounds {
		if net <= bound {
			return i
		}
	}
	return len(s.opts.SegmentBounds)
}
