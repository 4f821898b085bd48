package model

// StockStatus is the derived classification of an inventory row.
type StockStatus string

const (
	StockOK      StockStatus = "OK"
	StockLow     StockStatus = "LOW"
	StockReorder StockStatus = "REORDER"
)

// ClassifyStock maps a quantity and its low-stock threshold to a status.
// Out of stock wins over low stock, and the threshold itself counts as low.
func ClassifyStock(qty, lowThreshold int) StockStatus {
	switch {
	case qty <= 0:
		return StockReorder
	case qty <= lowThreshold:
		return StockLow
	default:
		return StockOK
	}
}
