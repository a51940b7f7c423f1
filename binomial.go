package bezier

// binomialRow returns row level of Pascal's triangle, that is C(level, 0)
// through C(level, level).
func binomialRow(level int) []uint64 {
	out := make([]uint64, level+1)
	out[0] = 1
	for i := 1; i <= level; i++ {
		// Going downwards, out[j-1] still holds the value from row i-1.
		for j := i; j > 0; j-- {
			out[j] += out[j-1]
		}
	}
	return out
}
