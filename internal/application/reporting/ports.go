package reporting

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/report"
)

// Header datos fijos del establecimiento impresos en el relatório de comercialização.
type Header struct {
	Establishment string
	Registration  string // Nº REG. DIPOVA
	Address       string
	Phone         string
	Responsible   string
}

// DipovaExporter serializa el agregado DIPOVA a un formato de archivo.
type DipovaExporter interface {
	Export(ctx context.Context, header Header, d report.Dipova) ([]byte, error)
	// Format clave usada en ?format= (xlsx, pdf).
	Format() string
	ContentType() string
}
