package domain

// SaleRecord representa uma linha da planilha de vendas já normalizada.
// GrossPrice é o preço de venda com IGV; o valor sem imposto é derivado
// na análise, nunca armazenado aqui.
type SaleRecord struct {
	Site       string  `json:"sede"`
	Model      string  `json:"modelo"`
	Channel    string  `json:"canal"`
	GrossPrice float64 `json:"precio_venta"`
	CustomerID string  `json:"cliente"`
}

// SalesDataset é a coleção ordenada de registros carregados em uma execução.
// Depois de carregado o dataset não é mais modificado.
type SalesDataset struct {
	Records []SaleRecord `json:"records"`

	// Dropped conta as linhas descartadas por sede ou preço inválidos.
	Dropped int `json:"dropped"`
}

// Len retorna a quantidade de registros válidos carregados.
func (d *SalesDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Empty indica um dataset sem registros válidos.
func (d *SalesDataset) Empty() bool {
	return d.Len() == 0
}
