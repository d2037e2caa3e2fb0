package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID genera un identificador corto para recursos no persistidos en
// base de datos, como los public_id de las imágenes subidas.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
