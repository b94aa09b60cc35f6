package pdf

import (
	"bytes"
	"fmt"

	"hvacdesk-backend/billing"
	"hvacdesk-backend/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageLeft   = 15.0
	pageWidth  = 180.0 // A4 width minus margins
	breakAt    = 260.0 // start a new page past this cursor
	rowHeight  = 7.0
	notesBreak = 240.0
)

// Invoice renders a paginated PDF for one invoice. Pure: the same invoice,
// company and payment list always produce the same bytes.
func Invoice(inv *models.Invoice, contact *models.Contact, company *models.Company, payments []models.PaymentTransaction) ([]byte, error) {
	doc := newDoc("Invoice " + inv.InvoiceNumber)
	pinned := pinCreationDate(inv.UpdatedAt, inv.CreatedAt)
	doc.SetCreationDate(pinned)
	doc.SetModificationDate(pinned)
	doc.AddPage()

	writeHeader(doc, "INVOICE", company, [][2]string{
		{"Invoice #:", inv.InvoiceNumber},
		{"Date:", longDate(inv.DateIssued)},
		{"Due Date:", longDatePtr(inv.DueDate)},
		{"Status:", string(inv.Status)},
	})

	writeAddressBlock(doc, "Bill To:", contact)
	writeItemTable(doc, invoiceRows(inv.Items))

	amountPaid := billing.AmountPaid(payments)
	balanceDue := billing.BalanceDue(inv.TotalAmount, payments)
	writeTotals(doc, totals{
		subtotal:    inv.SubtotalAmount,
		discount:    inv.DiscountAmount,
		tax:         inv.TaxAmount,
		total:       inv.TotalAmount,
		hasPayments: len(payments) > 0,
		amountPaid:  amountPaid,
		balanceDue:  balanceDue,
	})

	if len(payments) > 0 {
		writePaymentHistory(doc, payments)
	}

	writeTextSections(doc, []section{
		{"Notes:", inv.Notes},
		{"Terms & Conditions:", inv.Terms},
		{"Payment Instructions:", inv.PaymentInstructions},
	})

	return output(doc)
}

func newDoc(title string) *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCatalogSort(true)
	doc.SetTitle(title, false)
	doc.SetMargins(pageLeft, 15, 15)
	doc.SetAutoPageBreak(false, 15)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(colMuted.r, colMuted.g, colMuted.b)
		doc.CellFormat(pageWidth, 10, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	return doc
}

// writeHeader lays out the document title, the company block on the left and
// the label/value info block on the right.
func writeHeader(doc *gofpdf.Fpdf, title string, company *models.Company, info [][2]string) {
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(colPrimary.r, colPrimary.g, colPrimary.b)
	doc.SetXY(pageLeft, 18)
	doc.Cell(100, 10, title)

	// Info block, right side
	infoY := 18.0
	doc.SetFontSize(10)
	doc.SetTextColor(colText.r, colText.g, colText.b)
	for _, kv := range info {
		doc.SetXY(120, infoY)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(35, 5, kv[0], "", 0, "R", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(40, 5, kv[1], "", 0, "R", false, 0, "")
		infoY += 5
	}

	// Company block under the title
	y := 32.0
	doc.SetXY(pageLeft, y)
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(100, 5, company.Name)
	y += 5
	doc.SetFont("Helvetica", "", 10)
	if company.Address != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, company.Address)
		y += 5
	}
	if company.City != "" || company.State != "" || company.PostalCode != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, fmt.Sprintf("%s, %s %s", company.City, company.State, company.PostalCode))
		y += 5
	}
	if company.Phone != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, "Phone: "+company.Phone)
		y += 5
	}
	if company.Email != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, "Email: "+company.Email)
		y += 5
	}
	doc.SetY(y + 6)
}

func writeAddressBlock(doc *gofpdf.Fpdf, label string, contact *models.Contact) {
	y := doc.GetY()
	doc.SetXY(pageLeft, y)
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(100, 5, label)
	y += 5
	doc.SetXY(pageLeft, y)
	doc.Cell(100, 5, contact.Name)
	y += 5
	doc.SetFont("Helvetica", "", 10)
	if contact.Address != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, contact.Address)
		y += 5
	}
	if contact.City != "" || contact.State != "" || contact.Zip != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, fmt.Sprintf("%s, %s %s", contact.City, contact.State, contact.Zip))
		y += 5
	}
	if contact.Phone != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, contact.Phone)
		y += 5
	}
	if contact.Email != "" {
		doc.SetXY(pageLeft, y)
		doc.Cell(100, 5, contact.Email)
		y += 5
	}
	doc.SetY(y + 8)
}

type itemRow struct {
	description string
	quantity    float64
	unitPrice   float64
	taxRate     float64
	amount      float64
}

func invoiceRows(items []models.InvoiceItem) []itemRow {
	rows := make([]itemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{it.Description, it.Quantity, it.UnitPrice, it.TaxRate, it.Amount})
	}
	return rows
}

// Column widths: description 80, qty 18, price 27, tax 18, amount 37 = 180.
func writeItemTable(doc *gofpdf.Fpdf, rows []itemRow) {
	y := doc.GetY()

	doc.SetFillColor(colHeaderBg.r, colHeaderBg.g, colHeaderBg.b)
	doc.SetTextColor(colText.r, colText.g, colText.b)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(pageLeft, y)
	doc.CellFormat(80, rowHeight, "Description", "", 0, "L", true, 0, "")
	doc.CellFormat(18, rowHeight, "Qty", "", 0, "R", true, 0, "")
	doc.CellFormat(27, rowHeight, "Price", "", 0, "R", true, 0, "")
	doc.CellFormat(18, rowHeight, "Tax", "", 0, "R", true, 0, "")
	doc.CellFormat(37, rowHeight, "Amount", "", 0, "R", true, 0, "")
	y += rowHeight

	doc.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		if y > breakAt {
			doc.AddPage()
			y = doc.GetY()
		}
		doc.SetXY(pageLeft, y)
		doc.CellFormat(80, rowHeight, row.description, "", 0, "L", false, 0, "")
		doc.CellFormat(18, rowHeight, trimZeros(row.quantity), "", 0, "R", false, 0, "")
		doc.CellFormat(27, rowHeight, money(row.unitPrice), "", 0, "R", false, 0, "")
		doc.CellFormat(18, rowHeight, fmt.Sprintf("%g%%", row.taxRate), "", 0, "R", false, 0, "")
		doc.CellFormat(37, rowHeight, money(row.amount), "", 0, "R", false, 0, "")
		y += rowHeight
		doc.SetDrawColor(colRowLine.r, colRowLine.g, colRowLine.b)
		doc.Line(pageLeft, y, pageLeft+pageWidth, y)
	}
	doc.SetY(y + 4)
}

type totals struct {
	subtotal    float64
	discount    float64
	tax         float64
	total       float64
	hasPayments bool
	amountPaid  float64
	balanceDue  float64
}

func writeTotals(doc *gofpdf.Fpdf, t totals) {
	y := doc.GetY()
	line := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.SetXY(110, y)
		doc.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		doc.CellFormat(40, 6, value, "", 0, "R", false, 0, "")
		y += 6
	}

	doc.SetTextColor(colText.r, colText.g, colText.b)
	line("Subtotal:", money(t.subtotal), false)
	if t.discount > 0 {
		line("Discount:", "-"+money(t.discount), false)
	}
	if t.tax > 0 {
		line("Tax:", money(t.tax), false)
	}
	doc.SetDrawColor(colText.r, colText.g, colText.b)
	doc.Line(110, y+1, 195, y+1)
	y += 2
	line("Total:", money(t.total), true)

	if t.hasPayments {
		line("Amount Paid:", money(t.amountPaid), false)
		if t.balanceDue > 0 {
			doc.SetTextColor(colDue.r, colDue.g, colDue.b)
		} else {
			doc.SetTextColor(colSettled.r, colSettled.g, colSettled.b)
		}
		line("Balance Due:", money(t.balanceDue), true)
		doc.SetTextColor(colText.r, colText.g, colText.b)
	}
	doc.SetY(y + 6)
}

// Column widths: date 40, method 35, reference 60, amount 45 = 180.
func writePaymentHistory(doc *gofpdf.Fpdf, payments []models.PaymentTransaction) {
	if doc.GetY() > notesBreak {
		doc.AddPage()
	}

	y := doc.GetY()
	doc.SetFont("Helvetica", "B", 12)
	doc.SetXY(pageLeft, y)
	doc.Cell(100, 6, "Payment History")
	y += 8

	doc.SetFillColor(colHeaderBg.r, colHeaderBg.g, colHeaderBg.b)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(pageLeft, y)
	doc.CellFormat(40, rowHeight, "Date", "", 0, "L", true, 0, "")
	doc.CellFormat(35, rowHeight, "Method", "", 0, "L", true, 0, "")
	doc.CellFormat(60, rowHeight, "Reference", "", 0, "L", true, 0, "")
	doc.CellFormat(45, rowHeight, "Amount", "", 0, "R", true, 0, "")
	y += rowHeight

	doc.SetFont("Helvetica", "", 9)
	for _, p := range payments {
		if y > breakAt {
			doc.AddPage()
			y = doc.GetY()
		}
		ref := p.PaymentReference
		if ref == "" {
			ref = "-"
		}
		doc.SetXY(pageLeft, y)
		doc.CellFormat(40, rowHeight, longDate(p.TransactionDate), "", 0, "L", false, 0, "")
		doc.CellFormat(35, rowHeight, string(p.PaymentMethod), "", 0, "L", false, 0, "")
		doc.CellFormat(60, rowHeight, ref, "", 0, "L", false, 0, "")
		doc.CellFormat(45, rowHeight, money(p.Amount), "", 0, "R", false, 0, "")
		y += rowHeight
		doc.SetDrawColor(colRowLine.r, colRowLine.g, colRowLine.b)
		doc.Line(pageLeft, y, pageLeft+pageWidth, y)
	}
	doc.SetY(y + 6)
}

type section struct {
	label string
	body  string
}

func writeTextSections(doc *gofpdf.Fpdf, sections []section) {
	any := false
	for _, s := range sections {
		if s.body != "" {
			any = true
		}
	}
	if !any {
		return
	}

	if doc.GetY() > notesBreak {
		doc.AddPage()
	} else {
		doc.SetY(doc.GetY() + 4)
	}

	doc.SetDrawColor(colRowLine.r, colRowLine.g, colRowLine.b)
	doc.Line(pageLeft, doc.GetY(), pageLeft+pageWidth, doc.GetY())
	doc.SetY(doc.GetY() + 4)

	for _, s := range sections {
		if s.body == "" {
			continue
		}
		doc.SetX(pageLeft)
		doc.SetFont("Helvetica", "B", 10)
		doc.SetTextColor(colText.r, colText.g, colText.b)
		doc.MultiCell(pageWidth, 5, s.label, "", "L", false)
		doc.SetX(pageLeft)
		doc.SetFont("Helvetica", "", 9)
		doc.MultiCell(pageWidth, 4.5, s.body, "", "L", false)
		doc.SetY(doc.GetY() + 3)
	}
}

func trimZeros(v float64) string {
	return fmt.Sprintf("%g", v)
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
