package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas. Por favor, inténtalo de nuevo")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	ErrProductNotFound = fmt.Errorf("%w: producto", ErrNotFound)
	ErrAlertNotFound   = fmt.Errorf("%w: alerta", ErrNotFound)
)

// Invalid envuelve ErrInvalidInput con un mensaje para el usuario.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
