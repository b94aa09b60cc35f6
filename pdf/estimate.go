package pdf

import (
	"fmt"

	"hvacdesk-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// Estimate renders a paginated PDF for one estimate: same layout as the
// invoice document, plus a validity notice and a signature/approval block,
// and no payment section.
func Estimate(est *models.Estimate, contact *models.Contact, company *models.Company) ([]byte, error) {
	doc := newDoc("Estimate " + est.EstimateNumber)
	pinned := pinCreationDate(est.UpdatedAt, est.CreatedAt)
	doc.SetCreationDate(pinned)
	doc.SetModificationDate(pinned)
	doc.AddPage()

	writeHeader(doc, "ESTIMATE", company, [][2]string{
		{"Estimate #:", est.EstimateNumber},
		{"Date:", longDate(est.DateIssued)},
		{"Expires On:", longDatePtr(est.DateExpires)},
		{"Status:", string(est.Status)},
	})

	writeAddressBlock(doc, "Prepared For:", contact)
	writeItemTable(doc, estimateRows(est.Items))

	writeTotals(doc, totals{
		subtotal: est.SubtotalAmount,
		discount: est.DiscountAmount,
		tax:      est.TaxAmount,
		total:    est.TotalAmount,
	})

	if est.DateExpires != nil {
		doc.SetFont("Helvetica", "I", 10)
		doc.SetTextColor(colMuted.r, colMuted.g, colMuted.b)
		doc.SetX(pageLeft)
		doc.CellFormat(pageWidth, 6,
			fmt.Sprintf("This estimate is valid until %s.", longDate(*est.DateExpires)),
			"", 1, "C", false, 0, "")
		doc.SetY(doc.GetY() + 4)
	}

	writeTextSections(doc, []section{
		{"Notes:", est.Notes},
		{"Terms & Conditions:", est.Terms},
	})

	writeSignatureBlock(doc)

	return output(doc)
}

func estimateRows(items []models.EstimateItem) []itemRow {
	rows := make([]itemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{it.Description, it.Quantity, it.UnitPrice, it.TaxRate, it.Amount})
	}
	return rows
}

func writeSignatureBlock(doc *gofpdf.Fpdf) {
	if doc.GetY() > notesBreak {
		doc.AddPage()
	} else {
		doc.SetY(doc.GetY() + 10)
	}

	y := doc.GetY()
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(colText.r, colText.g, colText.b)
	doc.SetXY(pageLeft, y)
	doc.Cell(100, 5, "Estimate Approval")
	y += 18

	doc.SetDrawColor(colText.r, colText.g, colText.b)
	doc.Line(pageLeft, y, pageLeft+80, y)
	doc.Line(pageLeft+110, y, pageLeft+pageWidth, y)

	doc.SetFont("Helvetica", "", 8)
	doc.SetXY(pageLeft, y+1)
	doc.Cell(80, 4, "Authorized Signature")
	doc.SetXY(pageLeft+110, y+1)
	doc.Cell(70, 4, "Date")
	doc.SetY(y + 8)
}
