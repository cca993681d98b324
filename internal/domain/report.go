package domain

// SiteRevenue acumula as vendas de uma sede, com o faturamento sem IGV.
type SiteRevenue struct {
	Site       string  `json:"sede"`
	Units      int     `json:"cantidad"`
	NetRevenue float64 `json:"ventas_sin_igv"`
}

// ModelCount conta as unidades vendidas de um modelo de veículo.
type ModelCount struct {
	Model string `json:"modelo"`
	Units int    `json:"cantidad"`
}

// ChannelCount conta as unidades vendidas por canal de venda.
type ChannelCount struct {
	Channel string `json:"canal"`
	Units   int    `json:"cantidad"`
}

// SegmentCount conta os clientes distintos classificados em uma faixa de preço.
type SegmentCount struct {
	Segment   string `json:"segmento"`
	Customers int    `json:"clientes"`
}

// SalesReport reúne as oito métricas calculadas sobre um dataset de vendas.
// É derivado integralmente do dataset e recalculado a cada execução.
type SalesReport struct {
	// RevenueBySite traz as sedes ordenadas por faturamento sem IGV decrescente.
	RevenueBySite []SiteRevenue `json:"ventas_por_sede"`

	// TopModels traz os N modelos mais vendidos, em ordem decrescente de
	// unidades; empates mantêm a ordem de aparição no dataset.
	TopModels []ModelCount `json:"top_modelos"`

	// ChannelRanking traz todos os canais ordenados por unidades vendidas.
	ChannelRanking []ChannelCount `json:"canales_ventas"`

	// CustomerSegments traz a contagem de clientes por faixa de preço, na
	// ordem configurada das faixas.
	CustomerSegments []SegmentCount `json:"segmento_clientes"`

	DistinctCustomers int     `json:"clientes_unicos"`
	TotalSales        int     `json:"total_ventas"`
	GrossTotal        float64 `json:"monto_total_con_igv"`
	NetTotal          float64 `json:"monto_total_sin_igv"`
}
