package reporting

import "errors"

// Erros específicos para a geração de relatórios visuais
var (
	// ErrOutputWrite indica falha ao criar o diretório de saída ou ao
	// gravar um artefato. Artefatos parciais já gravados não são removidos.
	ErrOutputWrite = errors.New("error writing report artifacts")
)
