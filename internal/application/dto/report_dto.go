package dto

import "github.com/shopspring/decimal"

// ReportProductDTO línea de producto en la vista por mes.
type ReportProductDTO struct {
	Code           ID              `json:"code"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	ProductionDate string          `json:"productionDate"`
	SifOrSisbi     string          `json:"sifOrSisbi,omitempty"`
}

// ReportRowDTO relatório diario conciliado con cliente, usuario y catálogo.
type ReportRowDTO struct {
	ID                       ID                 `json:"id"`
	InvoiceNumber            ID                 `json:"invoiceNumber"`
	CustomerCode             ID                 `json:"customerCode"`
	ClientName               string             `json:"clientName"`
	Destination              string             `json:"destination"`
	UserName                 string             `json:"userName"`
	Driver                   string             `json:"driver"`
	DeliverVehicle           string             `json:"deliverVehicle"`
	HasGoodSanitaryCondition bool               `json:"hasGoodSanitaryCondition"`
	VehicleTemperature       decimal.Decimal    `json:"vehicleTemperature"`
	ProductTemperature       decimal.Decimal    `json:"productTemperature"`
	Date                     string             `json:"date"`
	DisplayDate              string             `json:"displayDate"`
	Products                 []ReportProductDTO `json:"products"`
}

// MonthGroupDTO bloque de un mes.
type MonthGroupDTO struct {
	Month string         `json:"month"`
	Rows  []ReportRowDTO `json:"rows"`
}

// DipovaItemDTO línea del relatório de comercialização.
type DipovaItemDTO struct {
	ProductCode    ID              `json:"productCode"`
	ProductName    string          `json:"productName"`
	Destination    string          `json:"destination"`
	ProductionDate string          `json:"productionDate"`
	ExpeditionDate string          `json:"expeditionDate"`
	Quantity       decimal.Decimal `json:"quantity"`
	Temperature    decimal.Decimal `json:"temperature"`
	Driver         string          `json:"driver"`
	Vehicle        string          `json:"vehicle"`
}

// DipovaDTO agregado mensal más total.
type DipovaDTO struct {
	Month string          `json:"month"`
	Year  string          `json:"year"`
	Items []DipovaItemDTO `json:"items"`
	Total decimal.Decimal `json:"total"`
}
