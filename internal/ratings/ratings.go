package ratings

import "math"

// Summary is the derived rating aggregate for a recycling point. It is
// recomputed from the comments on every read and never persisted.
type Summary struct {
	Average float64 `json:"average_rating"`
	Count   int     `json:"comment_count"`
}

// Summarize returns the arithmetic mean of ratings rounded to two
// decimal places, or a zero Summary when there are no ratings.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sum := 0

	for _, v := range values {
		sum += v
	}

	average := float64(sum) / float64(len(values))

	return Summary{
		Average: math.Round(average*100) / 100,
		Count:   len(values),
	}
}
