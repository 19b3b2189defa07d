// Package pdf genera la versión imprimible de los reportes con Maroto v2.
//
// Layout de la página A4 para la lista de precios:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Precio unitario               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos listados                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/stock-control-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PriceListPDFGenerator genera el PDF de la lista de precios usando Maroto v2.
type PriceListPDFGenerator struct{}

// NewPriceListPDFGenerator construye el generador.
func NewPriceListPDFGenerator() *PriceListPDFGenerator {
	return &PriceListPDFGenerator{}
}

// Generate genera el PDF y devuelve sus bytes. Los items llegan ya filtrados
// por la visibilidad del actor (el PDF no puentea la autorización).
func (g *PriceListPDFGenerator) Generate(items []dto.PriceListItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de precios", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(tableItemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte y fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LISTA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezados de la tabla.
func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New("Categoría", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New("Precio unitario", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right})),
	)
}

func tableItemRow(item dto.PriceListItem) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(item.ProductName, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(item.CategoryName, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New(item.UnitPrice.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d productos listados", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
