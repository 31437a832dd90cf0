package loan

const (
	baseRate          = 10.0
	sizeDiscountFloor = 50_000_000
)

// Price computes the indicative interest rate for a requested amount and
// credit rating. Pure function, no clamping: extreme inputs can in theory
// drive the result negative, which is accepted behavior for now.
func Price(requestedAmount int64, rating string) float64 {
	var ratingAdj float64
	switch rating {
	case "AAA", "AA":
		ratingAdj = -1.0
	case "A":
		ratingAdj = 0.0
	case "BBB":
		ratingAdj = 1.0
	default:
		ratingAdj = 2.0
	}

	var sizeAdj float64
	if requestedAmount > sizeDiscountFloor {
		sizeAdj = -0.5
	}

	return baseRate + ratingAdj + sizeAdj
}
