package receipt

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF page geometry in millimeters. The page width follows the physical
// paper the character width was derived from; height grows with content.
const (
	pdfMargin     = 5.0
	pdfLineHeight = 3.8
	pdfMinHeight  = 150.0
)

// RenderPDF renders a Document to a single-column receipt PDF. The element
// walk mirrors the text renderer exactly: same ordering, same conditional
// inclusion, same truncated strings, so both outputs always agree on content.
func RenderPDF(d *Document, w io.Writer) error {
	pageW := paperWidthMM(d.Width)
	pageH := pdfMargin*2 + float64(len(d.Elements))*(pdfLineHeight+1)
	if pageH < pdfMinHeight {
		pageH = pdfMinHeight
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 8)

	usable := pageW - 2*pdfMargin
	scale := usable / float64(d.Width)

	for _, el := range d.Elements {
		switch el.Kind {
		case KindRule:
			if el.Rule == '=' {
				pdf.SetLineWidth(0.6)
			} else {
				pdf.SetLineWidth(0.25)
			}
			y := pdf.GetY() + pdfLineHeight/2
			pdf.Line(pdfMargin, y, pageW-pdfMargin, y)
			pdf.Ln(pdfLineHeight)

		case KindText:
			setStyle(pdf, el.Bold)
			pdf.CellFormat(usable, pdfLineHeight, el.Text, "", 1, pdfAlign(el.Align), false, 0, "")

		case KindSpacer:
			pdf.Ln(pdfLineHeight * 0.7)

		case KindColumns:
			setStyle(pdf, el.Bold)
			itemW := float64(d.ItemCol+1) * scale
			qtyW := float64(d.QtyCol+1) * scale
			amtW := usable - itemW - qtyW
			pdf.CellFormat(itemW, pdfLineHeight, el.Item, "", 0, "L", false, 0, "")
			pdf.CellFormat(qtyW, pdfLineHeight, el.Qty, "", 0, "C", false, 0, "")
			pdf.CellFormat(amtW, pdfLineHeight, el.Amount, "", 1, "R", false, 0, "")

		case KindAmountRow:
			setStyle(pdf, el.Bold)
			labelW := float64(d.LabelCol+1) * scale
			pdf.CellFormat(labelW, pdfLineHeight, el.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(usable-labelW, pdfLineHeight, el.Value, "", 1, "R", false, 0, "")
		}
	}

	return pdf.Output(w)
}

// paperWidthMM maps the character width tier back to its physical paper.
func paperWidthMM(chars int) float64 {
	switch {
	case chars >= 48:
		return 80
	case chars >= 42:
		return 76
	default:
		return 58
	}
}

func setStyle(pdf *gofpdf.Fpdf, bold bool) {
	if bold {
		pdf.SetFont("Courier", "B", 9)
	} else {
		pdf.SetFont("Courier", "", 8)
	}
}

func pdfAlign(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}
