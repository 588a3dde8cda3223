package recursive

// SumDigits returns the sum of the decimal digits of n, ignoring its sign.
func SumDigits(n int64) int {
	u := uint64(n)
	if n < 0 {
		// -n overflows for math.MinInt64, but its two's complement doesn't.
		u = -u
	}
	return sumdigits(u)
}

func sumdigits(u uint64) int {
	if u == 0 {
		return 0
	}
	return int(u%10) + sumdigits(u/10)
}
