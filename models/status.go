package models

// InvoiceStatus is the closed set of invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoiceSent          InvoiceStatus = "sent"
	InvoiceViewed        InvoiceStatus = "viewed"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
	InvoiceVoid          InvoiceStatus = "void"
	InvoiceCancelled     InvoiceStatus = "cancelled"
)

// ValidInvoiceStatus reports whether s is a known lifecycle state.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoiceViewed, InvoicePartiallyPaid,
		InvoicePaid, InvoiceOverdue, InvoiceVoid, InvoiceCancelled:
		return true
	}
	return false
}

type EstimateStatus string

const (
	EstimateDraft     EstimateStatus = "draft"
	EstimateSent      EstimateStatus = "sent"
	EstimateViewed    EstimateStatus = "viewed"
	EstimateApproved  EstimateStatus = "approved"
	EstimateRejected  EstimateStatus = "rejected"
	EstimateExpired   EstimateStatus = "expired"
	EstimateConverted EstimateStatus = "converted"
	EstimateCancelled EstimateStatus = "cancelled"
)

func ValidEstimateStatus(s EstimateStatus) bool {
	switch s {
	case EstimateDraft, EstimateSent, EstimateViewed, EstimateApproved,
		EstimateRejected, EstimateExpired, EstimateConverted, EstimateCancelled:
		return true
	}
	return false
}

// ItemType tags a billable line: service, part, material, labor, fee,
// discount or other.
type ItemType string

const (
	ItemService  ItemType = "service"
	ItemPart     ItemType = "part"
	ItemMaterial ItemType = "material"
	ItemLabor    ItemType = "labor"
	ItemFee      ItemType = "fee"
	ItemDiscount ItemType = "discount"
	ItemOther    ItemType = "other"
)

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCheck    PaymentMethod = "check"
	PayCredit   PaymentMethod = "credit_card"
	PayDebit    PaymentMethod = "debit_card"
	PayTransfer PaymentMethod = "bank_transfer"
	PayOnline   PaymentMethod = "online_payment"
	PayOther    PaymentMethod = "other"
)
