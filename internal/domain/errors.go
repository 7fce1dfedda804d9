package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Se comparan con errors.Is; ErrUserNotFound y ErrCarNotFound envuelven ErrNotFound.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = fmt.Errorf("usuario no encontrado: %w", ErrNotFound)
	ErrCarNotFound       = fmt.Errorf("auto no encontrado: %w", ErrNotFound)
	ErrAlreadyExists     = errors.New("el usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInvalidState      = errors.New("estado inválido para la operación")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrAlreadyRenting    = errors.New("el usuario ya tiene un auto rentado")
	ErrNotRenting        = errors.New("el usuario no tiene un auto rentado")
	ErrCarUnavailable    = errors.New("el auto no está disponible")
	ErrInsufficientFunds = errors.New("fondos insuficientes")
)
