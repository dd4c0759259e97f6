package orders

import (
	"testing"

	"emporia/models"

	"github.com/stretchr/testify/assert"
)

func cartWith(total float64, discounted *float64) models.Cart {
	return models.Cart{Total: total, DiscountedTotal: discounted}
}

func TestSelectAmountPlainTotal(t *testing.T) {
	c := cartWith(100, nil)
	assert.Equal(t, 100.0, SelectAmount(c, false))
}

func TestSelectAmountDiscountRequestedButAbsent(t *testing.T) {
	c := cartWith(100, nil)
	assert.Equal(t, 100.0, SelectAmount(c, true))
}

func TestSelectAmountDiscountRequestedAndPresent(t *testing.T) {
	d := 80.0
	c := cartWith(100, &d)
	assert.Equal(t, 80.0, SelectAmount(c, true))
}

func TestSelectAmountDiscountPresentButNotRequested(t *testing.T) {
	d := 80.0
	c := cartWith(100, &d)
	assert.Equal(t, 100.0, SelectAmount(c, false))
}

func TestMergeLineAdjustments(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: "prodA", Quantity: 3},
		{ProductID: "prodB", Quantity: 2},
	}
	adj := MergeLineAdjustments(lines)

	assert.Equal(t, map[string]int{"prodA": 3, "prodB": 2}, adj)
}

func TestMergeLineAdjustmentsSameProductTwoColors(t *testing.T) {
	// Colors are not separate stock pools: both lines draw from one count.
	lines := []models.CartLine{
		{ProductID: "prodA", Quantity: 2, Color: "red"},
		{ProductID: "prodA", Quantity: 1, Color: "black"},
	}
	adj := MergeLineAdjustments(lines)

	assert.Equal(t, map[string]int{"prodA": 3}, adj)
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{"cod", "card", "upi", "wallet"} {
		assert.True(t, ValidPaymentMethod(m), m)
	}
	assert.False(t, ValidPaymentMethod("cheque"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		models.OrderCreated,
		models.OrderProcessing,
		models.OrderShipped,
		models.OrderDelivered,
		models.OrderCancelled,
		models.OrderCashOnDelivery,
	} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("Refunded"))
}
