package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera a referência curta usada para correlacionar cada mensagem
// enviada com as entradas de log correspondentes.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
