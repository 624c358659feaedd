// Package pdf genera los documentos imprimibles del tablero de suprimentos con Maroto v2:
// ficha de pedido, relatório de fluxo y mapa de cotización.
package pdf

import (
	"context"
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/quotation"
)

var _ ports.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorNavy   = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorSlate  = &props.Color{Red: 51, Green: 65, Blue: 85}
	colorYellow = &props.Color{Red: 250, Green: 204, Blue: 21}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight  = &props.Color{Red: 241, Green: 245, Blue: 249}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator implementa ports.PDFGenerator. companyName va en el encabezado de cada documento.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

func (g *MarotoPDFGenerator) newDocument(title string, landscape bool, grid int) core.Maroto {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.companyName, true)
	if landscape {
		b = b.WithOrientation(orientation.Horizontal)
	}
	if grid > 0 {
		b = b.WithMaxGridSize(grid)
	}
	return maroto.New(b.Build())
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Ficha de pedido ───────────────────────────────────────────────────────────

// OrderPDF ficha del pedido: banda con SC/PD, datos del proveedor y cronograma de pago.
func (g *MarotoPDFGenerator) OrderPDF(_ context.Context, o entity.Order) ([]byte, error) {
	m := g.newDocument("Pedido de Compra "+o.SolicitationNo, false, 0)

	m.AddRows(row.New(30).Add(col.New(12).Add(
		text.New("PEDIDO DE COMPRA", props.Text{Style: fontstyle.Bold, Size: 20, Color: colorYellow, Top: 4, Left: 3}),
		text.New(g.companyName, props.Text{Size: 10, Color: colorWhite, Top: 15, Left: 3}),
		text.New(fmt.Sprintf("SC: %s | PD: %s", o.SolicitationNo, nonEmpty(o.PurchaseOrderNo, "---")),
			props.Text{Size: 10, Color: colorWhite, Top: 21, Left: 3}),
	)).WithStyle(&props.Cell{BackgroundColor: colorNavy}))

	m.AddRows(row.New(8))
	m.AddRows(sectionTitle("INFORMAÇÕES DO FORNECEDOR"))
	for _, l := range []string{
		"Fornecedor: " + o.Supplier,
		"Previsão de Entrega: " + date(o.ExpectedDelivery, "NÃO INFORMADA"),
		"Valor Total: " + money(o.Amount),
		"Status Atual: " + string(o.Status),
		"Prioridade: " + string(o.Priority),
		"Observações: " + nonEmpty(o.Notes, "Nenhuma"),
	} {
		m.AddRows(text.NewRow(7, l, props.Text{Size: 11, Top: 1}))
	}

	if len(o.Installments) > 0 {
		m.AddRows(row.New(6))
		m.AddRows(sectionTitle("CRONOGRAMA DE PAGAMENTO"))
		m.AddRows(headerRow(colorSlate,
			headerCell{"Parcela", 3, align.Left},
			headerCell{"Vencimento", 3, align.Center},
			headerCell{"Valor", 3, align.Right},
			headerCell{"Situação", 3, align.Center},
		))
		for i, p := range o.Installments {
			situation := "EM ABERTO"
			if p.Paid {
				situation = "LIQUIDADA"
			}
			r := row.New(7).Add(
				col.New(3).Add(text.New(fmt.Sprintf("%dª Parcela", p.Number), props.Text{Top: 1.5, Left: 2})),
				col.New(3).Add(text.New(date(p.DueDate, "---"), props.Text{Top: 1.5, Align: align.Center})),
				col.New(3).Add(text.New(money(p.Amount), props.Text{Top: 1.5, Align: align.Right, Right: 2})),
				col.New(3).Add(text.New(situation, props.Text{Top: 1.5, Align: align.Center})),
			)
			if i%2 == 1 {
				r.WithStyle(&props.Cell{BackgroundColor: colorLight})
			}
			m.AddRows(r)
		}
	}
	return render(m)
}

// ── Relatório de fluxo ────────────────────────────────────────────────────────

// OrderFlowPDF tabla SC | PD | NF | Fornecedor | Prev. Entrega | Valor | Status en horizontal.
func (g *MarotoPDFGenerator) OrderFlowPDF(_ context.Context, orders []entity.Order, generatedAt time.Time) ([]byte, error) {
	m := g.newDocument("Relatório de Fluxo", true, 0)

	m.AddRows(text.NewRow(10, g.companyName, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorNavy}))
	m.AddRows(text.NewRow(8, "Relatório de Fluxo - Gerado em: "+generatedAt.Format("02/01/2006 15:04:05"),
		props.Text{Size: 11, Color: colorGray}))
	m.AddRows(row.New(3))

	m.AddRows(headerRow(colorNavy,
		headerCell{"SC", 1, align.Left},
		headerCell{"PD", 1, align.Left},
		headerCell{"NF", 1, align.Left},
		headerCell{"Fornecedor", 4, align.Left},
		headerCell{"Prev. Entrega", 1, align.Center},
		headerCell{"Valor", 2, align.Right},
		headerCell{"Status", 2, align.Center},
	))
	for _, o := range orders {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1.5, Align: a, Left: 1, Right: 1}))
		}
		m.AddRows(row.New(7).Add(
			cell(o.SolicitationNo, 1, align.Left),
			cell(nonEmpty(o.PurchaseOrderNo, "---"), 1, align.Left),
			cell(nonEmpty(o.InvoiceNo, "PENDENTE"), 1, align.Left),
			cell(o.Supplier, 4, align.Left),
			cell(date(o.ExpectedDelivery, "---"), 1, align.Center),
			cell(money(o.Amount), 2, align.Right),
			cell(string(o.Status), 2, align.Center),
		))
		m.AddRows(line.NewRow(0.5, props.Line{Color: colorLight, Thickness: 0.2}))
	}
	return render(m)
}

// ── Mapa de cotização ─────────────────────────────────────────────────────────

const (
	mapFixedCols    = 10 // # (1) + descrição (5) + qtd (1) + vencedor (3)
	mapSupplierCols = 5  // detalhe (3) + total (2)
)

// QuotationMapPDF una columna doble por proveedor (marca/unit/DIFAL y total), ganador por ítem
// y pie con el total de mejores precios.
func (g *MarotoPDFGenerator) QuotationMapPDF(_ context.Context, qm entity.QuotationMap) ([]byte, error) {
	suppliers := qm.SupplierCount()
	m := g.newDocument("Mapa de Cotação "+qm.ID, true, mapFixedCols+mapSupplierCols*suppliers)

	m.AddRows(row.New(32).Add(col.New(mapFixedCols+mapSupplierCols*suppliers).Add(
		text.New(g.companyName, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorYellow, Top: 3, Left: 3}),
		text.New(fmt.Sprintf("REFERÊNCIA: %s | STATUS: %s", qm.ID, qm.Status),
			props.Text{Size: 10, Color: colorWhite, Top: 12, Left: 3}),
		text.New(qm.Title, props.Text{Size: 10, Color: colorWhite, Top: 18, Left: 3}),
		text.New(fmt.Sprintf("TAG: %s | DATA EMISSÃO: %s | PRAZO ENTREGA: %s",
			nonEmpty(qm.EquipmentTag, "---"), date(qm.Date, "---"), date(qm.DeliveryDeadline, "---")),
			props.Text{Size: 8, Color: colorWhite, Top: 25, Left: 3}),
	)).WithStyle(&props.Cell{BackgroundColor: colorNavy}))
	m.AddRows(row.New(4))

	header := []headerCell{{"#", 1, align.Center}, {"Descrição / PN", 5, align.Left}, {"Qtd", 1, align.Center}}
	if len(qm.Items) > 0 {
		for _, s := range qm.Items[0].Suppliers {
			header = append(header, headerCell{s.Name, 3, align.Center}, headerCell{"Total", 2, align.Center})
		}
	}
	header = append(header, headerCell{"Vencedor", 3, align.Center})
	m.AddRows(headerRow(colorNavy, header...))

	small := func(s string, top float64, a align.Type, style fontstyle.Type) core.Component {
		return text.New(s, props.Text{Size: 7, Top: top, Align: a, Style: style, Left: 1, Right: 1})
	}
	for i, it := range qm.Items {
		cols := []core.Col{
			col.New(1).Add(small(fmt.Sprintf("%d", i+1), 2, align.Center, fontstyle.Normal)),
			col.New(5).Add(
				small(it.Description, 2, align.Left, fontstyle.Bold),
				small("PN: "+nonEmpty(it.PartNumber, "---"), 7, align.Left, fontstyle.Normal),
			),
			col.New(1).Add(small(fmt.Sprintf("%d", it.Quantity), 2, align.Center, fontstyle.Normal)),
		}
		for _, s := range it.Suppliers {
			total := "-"
			if s.UnitPrice.IsPositive() {
				total = money(s.Total)
			}
			totalStyle := fontstyle.Normal
			if quotation.IsWinner(it, s) {
				totalStyle = fontstyle.Bold
			}
			cols = append(cols,
				col.New(3).Add(
					small("Marca: "+nonEmpty(s.Brand, "---"), 1, align.Left, fontstyle.Normal),
					small("Unit: "+money(s.UnitPrice), 5, align.Left, fontstyle.Normal),
					small("DIFAL: "+percent(s.Difal), 9, align.Left, fontstyle.Normal),
				),
				col.New(2).Add(small(total, 5, align.Right, totalStyle)),
			)
		}
		cols = append(cols, col.New(3).Add(small(nonEmpty(it.Winner, "---"), 5, align.Center, fontstyle.Bold)))
		m.AddRows(row.New(14).Add(cols...))
		m.AddRows(line.NewRow(0.5, props.Line{Color: colorGray, Thickness: 0.1}))
	}

	m.AddRows(row.New(9).Add(col.New(mapFixedCols+mapSupplierCols*suppliers).Add(
		text.New("VALOR TOTAL (MELHORES PREÇOS): "+money(quotation.GrandTotal(qm)),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2.5}),
	)).WithStyle(&props.Cell{BackgroundColor: colorLight}))

	return render(m)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type headerCell struct {
	label string
	size  int
	align align.Type
}

func headerRow(bg *props.Color, cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: bg})
}

func sectionTitle(s string) core.Row {
	return text.NewRow(8, s, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorNavy, Top: 1})
}
