package service

// Status stok relatif terhadap ambang min/max per item.
type StockStatus string

const (
	StatusCritical    StockStatus = "critical"
	StatusLow         StockStatus = "low"
	StatusNormal      StockStatus = "normal"
	StatusOverstocked StockStatus = "overstocked"
)

const (
	DefaultMinStock = 0
	DefaultMaxStock = 100
)

// EvaluateStock menilai posisi stok terhadap ambang item. Urutan prioritas:
// critical, low, overstocked. Ambang low = min + 20% dari rentang min..max.
func EvaluateStock(current, minStock, maxStock int) StockStatus {
	if maxStock <= minStock {
		maxStock = minStock + DefaultMaxStock
	}

	lowThreshold := float64(minStock) + 0.2*float64(maxStock-minStock)

	switch {
	case current <= minStock:
		return StatusCritical
	case float64(current) <= lowThreshold:
		return StatusLow
	case current >= maxStock:
		return StatusOverstocked
	default:
		return StatusNormal
	}
}
