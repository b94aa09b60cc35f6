package billing

import (
	"testing"

	"hvacdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func pays(amounts ...float64) []models.PaymentTransaction {
	out := make([]models.PaymentTransaction, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, models.PaymentTransaction{Amount: a})
	}
	return out
}

func TestAmountPaid(t *testing.T) {
	assert.Equal(t, 0.0, AmountPaid(nil))
	assert.Equal(t, 50.0, AmountPaid(pays(50)))
	assert.Equal(t, 108.0, AmountPaid(pays(50, 58)))

	// Cent-level float sums stay exact after rounding
	assert.Equal(t, 0.3, AmountPaid(pays(0.1, 0.2)))
}

func TestBalanceDue(t *testing.T) {
	assert.Equal(t, 108.0, BalanceDue(108, nil))
	assert.Equal(t, 58.0, BalanceDue(108, pays(50)))
	assert.Equal(t, 0.0, BalanceDue(108, pays(50, 58)))
}

func TestSuggestedStatus(t *testing.T) {
	// No payments: current status passes through
	assert.Equal(t, models.InvoiceSent, SuggestedStatus(models.InvoiceSent, 100, nil))
	assert.Equal(t, models.InvoiceDraft, SuggestedStatus(models.InvoiceDraft, 100, nil))

	// Partial payment
	assert.Equal(t, models.InvoicePartiallyPaid, SuggestedStatus(models.InvoiceSent, 100, pays(40)))

	// Full payment
	assert.Equal(t, models.InvoicePaid, SuggestedStatus(models.InvoiceSent, 100, pays(60, 40)))

	// Zero-total invoices never suggest paid
	assert.Equal(t, models.InvoiceDraft, SuggestedStatus(models.InvoiceDraft, 0, nil))
}

func TestReconcile(t *testing.T) {
	inv := &models.Invoice{TotalAmount: 108, Status: models.InvoiceSent}

	rec := Reconcile(inv, pays(50))
	assert.Equal(t, 50.0, rec.AmountPaid)
	assert.Equal(t, 58.0, rec.BalanceDue)
	assert.Equal(t, models.InvoicePartiallyPaid, rec.Suggested)

	rec = Reconcile(inv, pays(50, 58))
	assert.Equal(t, 108.0, rec.AmountPaid)
	assert.Equal(t, 0.0, rec.BalanceDue)
	assert.Equal(t, models.InvoicePaid, rec.Suggested)
}
