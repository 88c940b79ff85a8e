package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLTAStatusCanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to LTAStatus
	}{
		{StatusDraft, StatusConfirmed},
		{StatusDraft, StatusCancelled},
		{StatusConfirmed, StatusInTransit},
		{StatusConfirmed, StatusCancelled},
		{StatusInTransit, StatusDelivered},
		{StatusInTransit, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	blocked := []struct {
		from, to LTAStatus
	}{
		{StatusDraft, StatusInTransit},
		{StatusDraft, StatusDelivered},
		{StatusConfirmed, StatusDelivered},
		{StatusConfirmed, StatusDraft},
		{StatusInTransit, StatusConfirmed},
		{StatusDelivered, StatusDraft},
		{StatusDelivered, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusDelivered},
	}
	for _, tc := range blocked {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be blocked", tc.from, tc.to)
	}

	assert.False(t, StatusDraft.CanTransitionTo(LTAStatus("SHIPPED")), "unknown target status")
}

func TestPaymentModeRules(t *testing.T) {
	assert.True(t, PaymentModeToInvoice.RequiresClient())
	assert.False(t, PaymentModeCash.RequiresClient())
	assert.False(t, PaymentModeFree.RequiresClient())

	assert.True(t, PaymentModeCash.Payable())
	assert.True(t, PaymentModePortDu.Payable())
	assert.False(t, PaymentModeToInvoice.Payable())
	assert.False(t, PaymentModeFree.Payable())
}

func TestLTAIsPayable(t *testing.T) {
	lta := LTA{
		CalculatedCost: decimal.NewFromInt(150),
		Status:         StatusConfirmed,
		PaymentMode:    PaymentModeCash,
	}
	assert.True(t, lta.IsPayable())

	t.Run("zero cost", func(t *testing.T) {
		l := lta
		l.CalculatedCost = decimal.Zero
		assert.False(t, l.IsPayable())
	})

	t.Run("draft status", func(t *testing.T) {
		l := lta
		l.Status = StatusDraft
		assert.False(t, l.IsPayable())
	})

	t.Run("cancelled status", func(t *testing.T) {
		l := lta
		l.Status = StatusCancelled
		assert.False(t, l.IsPayable())
	})

	t.Run("invoiced mode", func(t *testing.T) {
		l := lta
		l.PaymentMode = PaymentModeToInvoice
		assert.False(t, l.IsPayable())
	})
}

func TestJournalEntryIsBalanced(t *testing.T) {
	entry := JournalEntry{
		Lines: []JournalLine{
			{AccountID: "a", Debit: decimal.NewFromInt(50)},
			{AccountID: "b", Credit: decimal.NewFromInt(50)},
		},
	}
	assert.True(t, entry.IsBalanced())

	entry.Lines[1].Credit = decimal.NewFromInt(45)
	assert.False(t, entry.IsBalanced())
}
