package domain

import (
	"errors"
	"fmt"
)

// Clases de error del dominio. El adaptador HTTP las traduce a códigos de estado.
var (
	ErrBadRequest      = errors.New("requisição inválida")
	ErrUnauthenticated = errors.New("não autenticado")
	ErrForbidden       = errors.New("acesso negado")
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrConflict        = errors.New("conflito com o estado atual")
	ErrInternal        = errors.New("erro interno")
)

// Errores de persistencia; ambos son Conflict para el cliente.
var (
	ErrDuplicate  = fmt.Errorf("%w: registro duplicado", ErrConflict)
	ErrReferenced = fmt.Errorf("%w: registro vinculado a relatórios", ErrConflict)
)

// Error asocia un mensaje legible a una clase de error del dominio.
// errors.Is(err, domain.ErrNotFound) funciona sobre la clase.
type Error struct {
	Kind    error
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Is permite comparar contra la clase; la causa se alcanza vía Unwrap.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

func (e *Error) Unwrap() error { return e.cause }

// NewError construye un error de dominio de la clase kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap igual que NewError pero conserva la causa para logs (nunca se muestra al cliente).
func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func NotFound(message string) *Error   { return NewError(ErrNotFound, message) }
func Conflict(message string) *Error   { return NewError(ErrConflict, message) }
func BadRequest(message string) *Error { return NewError(ErrBadRequest, message) }
func Forbidden(message string) *Error  { return NewError(ErrForbidden, message) }

func Unauthenticated(message string) *Error {
	return NewError(ErrUnauthenticated, message)
}

// Message devuelve el mensaje seguro para el cliente: el de *Error si existe,
// o el texto de la clase conocida; "" si el error no pertenece al dominio.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	for _, k := range []error{ErrDuplicate, ErrReferenced, ErrBadRequest, ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrConflict} {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return ""
}

// StoreError falla reportada por el almacenamiento con un detalle legible
// (constraint violada, columna). Code es el SQLSTATE cuando existe.
type StoreError struct {
	Code   string
	Detail string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// StoreDetail devuelve el detalle del almacenamiento si err lo trae.
func StoreDetail(err error) (string, bool) {
	var se *StoreError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}
