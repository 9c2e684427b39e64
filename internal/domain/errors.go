package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrNegativeStock es un caso de entrada inválida: la mutación dejaría un
	// lote por debajo de cero. Envuelve ErrInvalidInput para que quien
	// clasifique con errors.Is sobre las familias base también lo capture.
	ErrNegativeStock = fmt.Errorf("%w: la operación dejaría stock negativo", ErrInvalidInput)
)
