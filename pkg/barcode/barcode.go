// Package barcode genera y valida los códigos de barras internos de MÍSTICA.
//
// Formato: "MST" + últimos 6 dígitos del reloj en milisegundos + número de producto (4 dígitos).
// Ejemplo: MST7891230001 para el producto 1.
package barcode

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	// Prefix identifica los códigos generados por la aplicación.
	Prefix = "MST"
	// Length longitud total del código.
	Length = 13
)

// Generate construye el código para productID en el instante now.
// El número de producto se reduce módulo 10000 para que el código mida siempre 13 caracteres.
func Generate(productID int, now time.Time) string {
	n := productID % 10_000
	if n < 0 {
		n = -n
	}
	ts := now.UnixMilli() % 1_000_000
	if ts < 0 {
		ts = -ts
	}
	return fmt.Sprintf("%s%06d%04d", Prefix, ts, n)
}

// GenerateRandom genera un código con un número de producto aleatorio entre 1 y 9999 (pruebas).
func GenerateRandom(now time.Time) string {
	return Generate(rand.IntN(9999)+1, now)
}

// Validate verifica largo exacto, prefijo y 10 dígitos finales.
func Validate(code string) bool {
	if len(code) != Length || !strings.HasPrefix(code, Prefix) {
		return false
	}
	for _, c := range code[len(Prefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsMistica indica si el código fue generado por la aplicación.
func IsMistica(code string) bool {
	return Validate(code)
}

// ExtractProductID devuelve los últimos 4 dígitos como número de producto.
func ExtractProductID(code string) (int, bool) {
	if !Validate(code) {
		return 0, false
	}
	n, err := strconv.Atoi(code[Length-4:])
	if err != nil {
		return 0, false
	}
	return n, true
}
