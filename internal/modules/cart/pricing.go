package cart

import "math"

// LineTotal computes the integer Rupiah total of one line.
//
// Dimensioned lines multiply the per-area price by length × width and round
// half-up to the nearest Rupiah once, at the multiplication, before applying
// quantity. Simple lines are exact integer math.
func LineTotal(l Line) int {
	if l.Kind == LineDimensioned {
		return roundHalfUp(float64(l.Item.Price)*l.Length*l.Width) * l.Qty
	}
	return l.Item.Price * l.Qty
}

// CartTotal sums all line totals. Reordering lines never changes the result.
func CartTotal(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += LineTotal(l)
	}
	return total
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
