package bezier

// Binomial returns n choose k.
// k == 0 gives 1 for every n (also for n == 0), k > n gives 0.
// Result is exact as long as it fits in int64 (n <= 66).
// Negative arguments are not supported.
func Binomial(n, k int) int {
	switch {
	case k == 0:
		return 1
	case n == 0, k > n:
		return 0
	case k == n:
		return 1
	}

	// C(n,k) == C(n,n-k); the shorter half of the row is enough.
	if n-k < k {
		k = n - k
	}

	return pascalRow(n, k)[k]
}

// pascalRow returns row n of Pascal's triangle, truncated to the first
// width+1 entries. Each row is built from the previous one with
// C(n,k) = C(n-1,k) + C(n-1,k-1).
func pascalRow(n, width int) []int {
	row := make([]int, width+1)
	row[0] = 1

	for i := 1; i <= n; i++ {
		for k := min(i, width); k > 0; k-- {
			row[k] += row[k-1]
		}
	}

	return row
}
