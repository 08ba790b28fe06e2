package scale

import "strconv"

// ThousandsPerMillion converts population counts stored in thousands of
// persons into millions.
const ThousandsPerMillion = 1000

// FormatInt renders v as an integer, rounding halves up.
func FormatInt(v float64) string {
	return strconv.FormatInt(int64(roundHalfUp(v)), 10)
}

// FormatThousands renders a population in thousands as whole millions.
func FormatThousands(v float64) string {
	return FormatInt(v / ThousandsPerMillion)
}
