package spreadsheet

import "errors"

// Erros específicos para o carregamento da planilha de vendas
var (
	// ErrSourceNotFound indica que o arquivo de vendas não existe.
	ErrSourceNotFound = errors.New("sales spreadsheet not found")

	// ErrSourceMalformed indica que o arquivo não é uma planilha legível ou
	// não possui as colunas obrigatórias.
	ErrSourceMalformed = errors.New("sales spreadsheet is malformed")
)
