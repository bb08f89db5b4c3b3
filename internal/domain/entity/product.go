package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Code es la clave natural.
// Weight es un multiplicador opcional (kg por unidad) usado en el relatório DIPOVA.
type Product struct {
	Code        int64
	Description string
	Group       string
	Company     string
	Weight      *decimal.Decimal
}
