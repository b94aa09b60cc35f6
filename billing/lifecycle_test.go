package billing

import (
	"testing"

	"hvacdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.InvoicePaid))
	assert.True(t, IsTerminal(models.InvoiceVoid))
	assert.True(t, IsTerminal(models.InvoiceCancelled))

	assert.False(t, IsTerminal(models.InvoiceDraft))
	assert.False(t, IsTerminal(models.InvoiceSent))
	assert.False(t, IsTerminal(models.InvoiceViewed))
	assert.False(t, IsTerminal(models.InvoicePartiallyPaid))
	assert.False(t, IsTerminal(models.InvoiceOverdue))
}

func TestCanTransitionFromNonTerminal(t *testing.T) {
	// Non-terminal states accept any known status, including backwards moves.
	assert.True(t, CanTransition(models.InvoiceDraft, models.InvoiceSent))
	assert.True(t, CanTransition(models.InvoiceSent, models.InvoicePaid))
	assert.True(t, CanTransition(models.InvoicePartiallyPaid, models.InvoiceDraft))
	assert.True(t, CanTransition(models.InvoiceOverdue, models.InvoiceVoid))
}

func TestCanTransitionFromTerminal(t *testing.T) {
	for _, from := range []models.InvoiceStatus{models.InvoicePaid, models.InvoiceVoid, models.InvoiceCancelled} {
		assert.True(t, CanTransition(from, models.InvoiceVoid), "from %s", from)
		assert.True(t, CanTransition(from, models.InvoiceCancelled), "from %s", from)

		assert.False(t, CanTransition(from, models.InvoiceDraft), "from %s", from)
		assert.False(t, CanTransition(from, models.InvoiceSent), "from %s", from)
		assert.False(t, CanTransition(from, models.InvoicePartiallyPaid), "from %s", from)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(models.InvoiceStatus("bogus"), models.InvoiceSent))
}

func TestEstimateTerminal(t *testing.T) {
	assert.True(t, EstimateTerminal(models.EstimateConverted))
	assert.True(t, EstimateTerminal(models.EstimateCancelled))

	assert.False(t, EstimateTerminal(models.EstimateDraft))
	assert.False(t, EstimateTerminal(models.EstimateApproved))
	assert.False(t, EstimateTerminal(models.EstimateRejected))
	assert.False(t, EstimateTerminal(models.EstimateExpired))
}
