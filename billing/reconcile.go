package billing

import (
	"hvacdesk-backend/models"
	"hvacdesk-backend/utils"
)

// Reconciliation is the derived financial position of an invoice against its
// recorded payments. It is computed, never stored.
type Reconciliation struct {
	AmountPaid float64              `json:"amount_paid"`
	BalanceDue float64              `json:"balance_due"`
	Suggested  models.InvoiceStatus `json:"suggested_status"`
}

// AmountPaid sums all payment amounts, rounded to cents.
func AmountPaid(payments []models.PaymentTransaction) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return utils.Round2(sum)
}

// BalanceDue is total minus amount paid. Zero payments means the full total
// is due.
func BalanceDue(total float64, payments []models.PaymentTransaction) float64 {
	return utils.Round2(total - AmountPaid(payments))
}

// SuggestedStatus derives the status the payment position implies. It is a
// hint for callers; the invoice row is only ever transitioned by an explicit,
// separate write.
func SuggestedStatus(current models.InvoiceStatus, total float64, payments []models.PaymentTransaction) models.InvoiceStatus {
	paid := AmountPaid(payments)
	switch {
	case paid >= total && total > 0:
		return models.InvoicePaid
	case paid > 0:
		return models.InvoicePartiallyPaid
	default:
		return current
	}
}

// Reconcile bundles the three derivations for one invoice.
func Reconcile(inv *models.Invoice, payments []models.PaymentTransaction) Reconciliation {
	return Reconciliation{
		AmountPaid: AmountPaid(payments),
		BalanceDue: BalanceDue(inv.TotalAmount, payments),
		Suggested:  SuggestedStatus(inv.Status, inv.TotalAmount, payments),
	}
}
