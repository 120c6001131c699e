package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBatchID gera o identificador de um lote de importação de vendas.
// 12 caracteres para tornar colisão entre lotes irrelevante na prática.
func GenerateBatchID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
