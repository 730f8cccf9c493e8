package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	// any known status may move to any other known status
	assert.True(t, ValidTransition(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, ValidTransition(OrderStatusPending, OrderStatusDelivered))
	assert.True(t, ValidTransition(OrderStatusShipped, OrderStatusCancelled))
	assert.True(t, ValidTransition(OrderStatusProcessing, OrderStatusPending))

	// except out of a terminal state
	assert.False(t, ValidTransition(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, ValidTransition(OrderStatusCancelled, OrderStatusProcessing))

	// self-transitions are no-ops and rejected
	assert.False(t, ValidTransition(OrderStatusPending, OrderStatusPending))

	// unknown statuses are invalid in either position
	assert.False(t, ValidTransition(OrderStatus("archived"), OrderStatusPending))
	assert.False(t, ValidTransition(OrderStatusPending, OrderStatus("refunded")))
}

func TestKnownStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, KnownStatus(s), string(s))
	}
	assert.False(t, KnownStatus(OrderStatus("PENDING")))
	assert.False(t, KnownStatus(OrderStatus("")))
}
