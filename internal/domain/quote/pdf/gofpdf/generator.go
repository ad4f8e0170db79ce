package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"floraconcierge/backend/internal/domain/quote"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Orçamento", false)
	// Core fonts cover the Latin-1 range, enough for pt-BR after translation.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Orçamento"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Nº %s de %s", q.Number, q.CreatedAt.Format("02/01/2006"))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(q.StoreName))
	pdf.Ln(6)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, tr("Planta"))
	pdf.Cell(20, 7, tr("Qtd"))
	pdf.Cell(35, 7, tr("Preço"))
	pdf.Cell(35, 7, tr("Total"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range q.Items {
		pdf.Cell(100, 6, tr(trim(it.Name, 50)))
		pdf.Cell(20, 6, fmt.Sprintf("%d", it.Qty))
		pdf.Cell(35, 6, tr(quote.FormatBRL(it.UnitPrice)))
		pdf.Cell(35, 6, tr(quote.FormatBRL(it.LineTotal)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total: %s", quote.FormatBRL(q.Total))))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	if q.Contact != "" {
		pdf.Cell(0, 5, tr(q.Contact))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, tr(fmt.Sprintf("Gerado em: %s", time.Now().Format(time.RFC3339))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("cart quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
