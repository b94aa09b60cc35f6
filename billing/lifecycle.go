package billing

import "hvacdesk-backend/models"

// Terminal statuses block further edits; the only writes still allowed out of
// them are explicit void/cancel.
var terminal = map[models.InvoiceStatus]bool{
	models.InvoicePaid:      true,
	models.InvoiceVoid:      true,
	models.InvoiceCancelled: true,
}

// allowedTransitions is the full transition table. Non-terminal states accept
// any valid status (the historical behavior: partially_paid -> draft is legal,
// see DESIGN.md); terminal states accept only void and cancelled.
var allowedTransitions = buildTransitions()

func buildTransitions() map[models.InvoiceStatus]map[models.InvoiceStatus]bool {
	all := []models.InvoiceStatus{
		models.InvoiceDraft, models.InvoiceSent, models.InvoiceViewed,
		models.InvoicePartiallyPaid, models.InvoicePaid, models.InvoiceOverdue,
		models.InvoiceVoid, models.InvoiceCancelled,
	}
	t := make(map[models.InvoiceStatus]map[models.InvoiceStatus]bool, len(all))
	for _, from := range all {
		t[from] = make(map[models.InvoiceStatus]bool, len(all))
		for _, to := range all {
			if terminal[from] {
				t[from][to] = to == models.InvoiceVoid || to == models.InvoiceCancelled
			} else {
				t[from][to] = true
			}
		}
	}
	return t
}

// IsTerminal reports whether s blocks further edits.
func IsTerminal(s models.InvoiceStatus) bool { return terminal[s] }

// CanTransition reports whether an invoice currently in from may be written
// with status to. Unknown statuses never transition.
func CanTransition(from, to models.InvoiceStatus) bool {
	row, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return row[to]
}

// EstimateTerminal mirrors the invoice guard for estimates: converted and
// cancelled estimates cannot be modified.
func EstimateTerminal(s models.EstimateStatus) bool {
	return s == models.EstimateConverted || s == models.EstimateCancelled
}
