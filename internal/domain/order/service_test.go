package order

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() []Order {
	return []Order{
		{ID: "o1", OrderNumber: "ORD-20260110-aa11", CustomerEmail: "priya@example.com", CustomerName: "Priya", Status: StatusPending, PaymentStatus: PaymentStatusPending, TotalAmount: 15999},
		{ID: "o2", OrderNumber: "ORD-20260109-bb22", CustomerEmail: "anita@example.com", CustomerName: "Anita", Status: StatusDelivered, PaymentStatus: PaymentStatusPaid, TotalAmount: 3999},
		{ID: "o3", OrderNumber: "ORD-20260108-cc33", CustomerEmail: "priya@example.com", CustomerName: "Priya", Status: StatusPending, PaymentStatus: PaymentStatusPaid, TotalAmount: 8999},
		{ID: "o4", OrderNumber: "ORD-20260107-dd44", CustomerEmail: "meera@example.com", CustomerName: "Meera", Status: StatusCancelled, PaymentStatus: PaymentStatusFailed, TotalAmount: 25999},
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(snapshot())

	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, int64(15999+3999+8999+25999), stats.TotalRevenue)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, Stats{}, stats)
}

func TestOrderSearch(t *testing.T) {
	got := ApplyOrderQuery(snapshot(), ListParams{Search: "priya@"})
	assert.Len(t, got, 2)

	// Order number and customer name match too, case-insensitively
	got = ApplyOrderQuery(snapshot(), ListParams{Search: "BB22"})
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got[0].ID)

	got = ApplyOrderQuery(snapshot(), ListParams{Search: "meera"})
	require.Len(t, got, 1)
	assert.Equal(t, "o4", got[0].ID)

	assert.Len(t, ApplyOrderQuery(snapshot(), ListParams{}), 4)
}

func TestOrderCategoricalFilters(t *testing.T) {
	got := ApplyOrderQuery(snapshot(), ListParams{Status: "pending"})
	assert.Len(t, got, 2)

	got = ApplyOrderQuery(snapshot(), ListParams{PaymentStatus: "paid"})
	assert.Len(t, got, 2)

	// Filters compose
	got = ApplyOrderQuery(snapshot(), ListParams{Status: "pending", PaymentStatus: "paid"})
	require.Len(t, got, 1)
	assert.Equal(t, "o3", got[0].ID)

	assert.Len(t, ApplyOrderQuery(snapshot(), ListParams{Status: "all", PaymentStatus: "all"}), 4)
}

func TestOrderQueryPreservesSnapshotOrder(t *testing.T) {
	src := snapshot()
	got := ApplyOrderQuery(src, ListParams{Status: "pending"})

	require.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "o3", got[1].ID)

	// Source snapshot untouched
	assert.Equal(t, "o1", src[0].ID)
	assert.Equal(t, "o4", src[3].ID)
}

func TestStatusTransitions(t *testing.T) {
	ord := Order{Status: StatusPending}
	assert.True(t, ord.CanTransitionTo(StatusConfirmed))
	assert.True(t, ord.CanTransitionTo(StatusCancelled))
	assert.False(t, ord.CanTransitionTo(StatusDelivered))

	ord.Status = StatusShipped
	assert.True(t, ord.CanTransitionTo(StatusDelivered))
	assert.False(t, ord.CanTransitionTo(StatusCancelled))

	ord.Status = StatusCancelled
	assert.False(t, ord.CanTransitionTo(StatusConfirmed))

	ord.Status = StatusDelivered
	assert.True(t, ord.CanTransitionTo(StatusRefunded))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusRefunded))
	assert.False(t, ValidStatus(Status("packed")))
}

func TestNotFoundSentinel(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("order lookup: %w", ErrNotFound), ErrNotFound)
	assert.NotErrorIs(t, errors.New("order not found"), ErrNotFound)
}

func TestValidPaymentStatus(t *testing.T) {
	assert.True(t, ValidPaymentStatus(PaymentStatusPending))
	assert.True(t, ValidPaymentStatus(PaymentStatusPaid))
	assert.True(t, ValidPaymentStatus(PaymentStatusFailed))
	assert.True(t, ValidPaymentStatus(PaymentStatusRefunded))
	assert.False(t, ValidPaymentStatus(PaymentStatus("bogus")))
	assert.False(t, ValidPaymentStatus(PaymentStatus("")))
}
