package entity

// Customer representa un cliente destinatario de las expediciones.
// Code es la clave natural usada también por los relatórios diarios.
type Customer struct {
	Code              int64
	LegalName         string
	FantasyName       string
	TaxID             string // CNPJ o CPF, solo dígitos
	StateRegistration string
	State             string // UF, usada como destino en los reportes
	Neighborhood      string
	Street            string
	PostalCode        string
	CorporateNetwork  string
	Email             string
	Phone             string
	PaymentMethod     string
}
