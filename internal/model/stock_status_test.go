package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name     string
		qty, low int
		want     StockStatus
	}{
		{"above threshold", 120, 50, StockOK},
		{"at threshold is low", 50, 50, StockLow},
		{"below threshold", 15, 20, StockLow},
		{"one unit left", 1, 10, StockLow},
		{"zero reorders", 0, 10, StockReorder},
		{"negative reorders", -3, 10, StockReorder},
		{"zero threshold, some stock", 1, 0, StockOK},
		{"zero threshold, no stock", 0, 0, StockReorder},
		{"negative threshold", 5, -1, StockOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyStock(tc.qty, tc.low))
		})
	}
}

func TestInventoryStatus_Derived(t *testing.T) {
	inv := Inventory{Qty: 40, LowThreshold: 30}
	assert.Equal(t, StockOK, inv.Status())

	inv.Qty = 30
	assert.Equal(t, StockLow, inv.Status())

	inv.Qty = 0
	assert.Equal(t, StockReorder, inv.Status())
}
