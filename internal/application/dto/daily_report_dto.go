package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// Date acepta RFC 3339 o YYYY-MM-DD en la entrada y serializa en RFC 3339.
type Date struct {
	time.Time
}

// UnmarshalJSON implementa json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("data inválida %q", s)
}

// Ptr nil si la fecha no fue informada.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// ProductItemRequest línea de producto enviada por el cliente.
type ProductItemRequest struct {
	Code               ID               `json:"code" validate:"min=1"`
	Quantity           decimal.Decimal  `json:"quantity" validate:"min=0"`
	Description        *string          `json:"description"`
	SifOrSisbi         *string          `json:"sifOrSisbi" validate:"omitempty,oneof=SIF SISBI NA"`
	ProductTemperature *decimal.Decimal `json:"productTemperature"`
	ProductionDate     *Date            `json:"productionDate"`
}

// Entity convierte a la forma canónica persistida: los campos ausentes o vacíos se omiten.
func (p ProductItemRequest) Entity() entity.ProductItem {
	it := entity.ProductItem{Code: p.Code.Int64(), Quantity: p.Quantity}
	if p.Description != nil {
		it.Description = strings.TrimSpace(*p.Description)
	}
	if p.SifOrSisbi != nil {
		it.SifOrSisbi = *p.SifOrSisbi
	}
	it.ProductTemperature = p.ProductTemperature
	it.ProductionDate = p.ProductionDate.Ptr()
	return it
}

// CustomerGroupRequest productos de un cliente dentro de un envío con varios clientes.
type CustomerGroupRequest struct {
	CustomerCode ID                   `json:"customerCode" validate:"min=1"`
	Items        []ProductItemRequest `json:"items" validate:"omitempty,dive"`
}

// CreateDailyReportRequest entrada del fluxo de expedição.
// Se usa products+customerCode (un cliente) o customerGroups (varios).
type CreateDailyReportRequest struct {
	InvoiceNumber            ID                     `json:"invoiceNumber" validate:"min=1"`
	Quantity                 *decimal.Decimal       `json:"quantity" validate:"omitempty,min=0"`
	ProductionDate           *Date                  `json:"productionDate"`
	VehicleTemperature       decimal.Decimal        `json:"vehicleTemperature"`
	HasGoodSanitaryCondition bool                   `json:"hasGoodSanitaryCondition"`
	Driver                   string                 `json:"driver" validate:"required"`
	UserID                   ID                     `json:"userId" validate:"min=1"`
	Products                 []ProductItemRequest   `json:"products" validate:"omitempty,dive"`
	CustomerCode             *ID                    `json:"customerCode" validate:"omitempty,min=1"`
	HasSifOrSisbi            *bool                  `json:"hasSifOrSisbi"`
	SifOrSisbi               *string                `json:"sifOrSisbi" validate:"omitempty,oneof=SIF SISBI NA"`
	ProductTemperature       *decimal.Decimal       `json:"productTemperature"`
	ShipmentDate             *Date                  `json:"shipmentDate"`
	DeliverVehicle           *string                `json:"deliverVehicle"`
	CustomerGroups           []CustomerGroupRequest `json:"customerGroups" validate:"omitempty,dive"`
	// FillingDate se acepta por compatibilidad y se ignora: el servidor la fija.
	FillingDate *Date `json:"fillingDate"`
}

// Validate valida la forma del payload; la existencia de referencias la verifica el use case.
func (r *CreateDailyReportRequest) Validate() error {
	var single string
	if len(r.CustomerGroups) == 0 && r.CustomerCode == nil {
		single = "customerCode é obrigatório quando customerGroups não é informado"
	}
	return check(r, single)
}

// Plate placa informada, normalizada; "" si no vino.
func (r *CreateDailyReportRequest) Plate() string {
	if r.DeliverVehicle == nil {
		return ""
	}
	return NormalizePlate(*r.DeliverVehicle)
}

// UpdateDailyReportRequest actualización parcial; fillingDate nunca se modifica.
type UpdateDailyReportRequest struct {
	InvoiceNumber            *ID                  `json:"invoiceNumber" validate:"omitempty,min=1"`
	ProductionDate           *Date                `json:"productionDate"`
	VehicleTemperature       *decimal.Decimal     `json:"vehicleTemperature"`
	HasGoodSanitaryCondition *bool                `json:"hasGoodSanitaryCondition"`
	Driver                   *string              `json:"driver" validate:"omitempty,min=1"`
	UserID                   *ID                  `json:"userId" validate:"omitempty,min=1"`
	Products                 []ProductItemRequest `json:"products" validate:"omitempty,dive"`
	CustomerCode             *ID                  `json:"customerCode" validate:"omitempty,min=1"`
	HasSifOrSisbi            *bool                `json:"hasSifOrSisbi"`
	SifOrSisbi               *string              `json:"sifOrSisbi" validate:"omitempty,oneof=SIF SISBI NA"`
	ProductTemperature       *decimal.Decimal     `json:"productTemperature"`
	ShipmentDate             *Date                `json:"shipmentDate"`
	DeliverVehicle           *string              `json:"deliverVehicle"`
}

// Validate valida sólo los campos informados.
func (r *UpdateDailyReportRequest) Validate() error {
	return check(r)
}

// ProductItemResponse línea de producto en la respuesta.
type ProductItemResponse struct {
	Code               ID               `json:"code"`
	Quantity           decimal.Decimal  `json:"quantity"`
	Description        string           `json:"description,omitempty"`
	SifOrSisbi         string           `json:"sifOrSisbi,omitempty"`
	ProductTemperature *decimal.Decimal `json:"productTemperature,omitempty"`
	ProductionDate     *time.Time       `json:"productionDate,omitempty"`
}

// DailyReportResponse salida de un relatório diario.
type DailyReportResponse struct {
	ID                       ID                    `json:"id"`
	InvoiceNumber            ID                    `json:"invoiceNumber"`
	Quantity                 decimal.Decimal       `json:"quantity"`
	ProductionDate           *time.Time            `json:"productionDate"`
	VehicleTemperature       decimal.Decimal       `json:"vehicleTemperature"`
	HasGoodSanitaryCondition bool                  `json:"hasGoodSanitaryCondition"`
	Driver                   string                `json:"driver"`
	UserID                   ID                    `json:"userId"`
	Products                 []ProductItemResponse `json:"products"`
	CustomerCode             ID                    `json:"customerCode"`
	HasSifOrSisbi            bool                  `json:"hasSifOrSisbi"`
	SifOrSisbi               *string               `json:"sifOrSisbi"`
	ProductTemperature       decimal.Decimal       `json:"productTemperature"`
	FillingDate              time.Time             `json:"fillingDate"`
	ShipmentDate             *time.Time            `json:"shipmentDate"`
	DeliverVehicle           *string               `json:"deliverVehicle"`
}

// CreateDailyReportResponse acuse con los ids creados (uno por cliente).
type CreateDailyReportResponse struct {
	Message string `json:"message"`
	IDs     []ID   `json:"ids"`
}
