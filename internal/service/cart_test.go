package service

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCartSubtotal(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Price: 100, Quantity: 2},
		{ProductID: 2, Price: 50, Quantity: 1},
	}

	assert.Equal(t, float64(250), cartSubtotal(lines))
	assert.Equal(t, float64(0), cartSubtotal(nil))
}

func TestDeliveryQuote(t *testing.T) {
	const threshold, fee = 5000, 299

	// below the threshold the flat fee applies
	assert.Equal(t, float64(299), deliveryQuote(4999, threshold, fee))
	assert.Equal(t, float64(299), deliveryQuote(250, threshold, fee))

	// free at or above the threshold
	assert.Equal(t, float64(0), deliveryQuote(5000, threshold, fee))
	assert.Equal(t, float64(0), deliveryQuote(12000, threshold, fee))

	// an empty cart quotes nothing
	assert.Equal(t, float64(0), deliveryQuote(0, threshold, fee))
}
