package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os identificadores curtos usados nas metas, incentivos e pedidos
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 12)
}
