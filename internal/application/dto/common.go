package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Paginación: un único límite por defecto para todos los recursos.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y recorta límites fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Page sobre de respuesta paginada: {data, limit, offset, total}.
type Page[T any] struct {
	Data   []T `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// NewPage arma el sobre garantizando data = [] en lugar de null.
func NewPage[T any](data []T, p PageRequest, total int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Limit: p.Limit, Offset: p.Offset, Total: total}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse acuse de recibo de operaciones de escritura.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdatedResponse registro actualizado más mensaje.
type UpdatedResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// ID identificador de 64 bits serializado como string JSON.
// Al decodificar acepta tanto "123" como 123.
type ID int64

// MarshalJSON implementa json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatInt(int64(id), 10) + `"`), nil
}

// UnmarshalJSON implementa json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("identificador inválido %q", s)
	}
	*id = ID(n)
	return nil
}

// Int64 valor numérico.
func (id ID) Int64() int64 { return int64(id) }

// StrictUnmarshal decodifica JSON rechazando campos desconocidos y datos sobrantes.
// Se usa como JSONDecoder de Fiber para que BodyParser valide en el borde.
func StrictUnmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("datos extra después del objeto JSON")
	}
	return nil
}
