package viviani4d

// BasisFunction evaluates N_{i,p}(u) with the Cox-de Boor recurrence.
// The degree-0 functions are half-open [knots[i], knots[i+1]) except the last
// non-empty interval, which is closed so the domain end is covered.
func BasisFunction(i, p int, u Real, knots KnotVector) Real {
	if p == 0 {
		if knots[i] <= u && u < knots[i+1] {
			return 1
		}
		if u == knots[i+1] && knots[i] < knots[i+1] && i == lastSpan(knots) {
			return 1
		}
		return 0
	}
	result := 0.0
	if d := knots[i+p] - knots[i]; d != 0 {
		result += (u - knots[i]) / d * BasisFunction(i, p-1, u, knots)
	}
	if d := knots[i+p+1] - knots[i+1]; d != 0 {
		result += (knots[i+p+1] - u) / d * BasisFunction(i+1, p-1, u, knots)
	}
	return result
}

// lastSpan is the index of the last interval with knots[i] < knots[i+1].
func lastSpan(knots KnotVector) int {
	for i := len(knots) - 2; i >= 0; i-- {
		if knots[i] < knots[i+1] {
			return i
		}
	}
	return -1
}

// BasisFunctionsAll evaluates every N_{i,p}(u), i = 0..len(knots)-p-2.
func BasisFunctionsAll(p int, u Real, knots KnotVector) []Real {
	n := len(knots) - p - 1
	if n <= 0 {
		return nil
	}
	out := make([]Real, n)
	for i := range out {
		out[i] = BasisFunction(i, p, u, knots)
	}
	return out
}

// BasisFuns returns the p+1 non-zero basis functions N_{span-p..span,p}(u).
func BasisFuns(span int, u Real, p int, knots KnotVector) []Real {
	N := make([]Real, p+1)
	left := make([]Real, p+1)
	right := make([]Real, p+1)
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			den := right[r+1] + left[j-r]
			temp := 0.0
			if den != 0 {
				temp = N[r] / den
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

// DersBasisFuns returns ders[k][j], the k-th derivative of N_{span-p+j,p} at u, k = 0..nd.
func DersBasisFuns(span int, u Real, p, nd int, knots KnotVector) [][]Real {
	ndu := make([][]Real, p+1)
	for i := range ndu {
		ndu[i] = make([]Real, p+1)
	}
	left := make([]Real, p+1)
	right := make([]Real, p+1)
	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			// lower triangle holds knot differences
			ndu[j][r] = right[r+1] + left[j-r]
			temp := 0.0
			if ndu[j][r] != 0 {
				temp = ndu[r][j-1] / ndu[j][r]
			}
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := make([][]Real, nd+1)
	for k := range ders {
		ders[k] = make([]Real, p+1)
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}
	du := nd
	if du > p {
		du = p // higher derivatives vanish
	}
	if du == 0 {
		return ders
	}

	a := [2][]Real{make([]Real, p+1), make([]Real, p+1)}
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= du; k++ {
			d := 0.0
			rk, pk := r-k, p-k
			if r >= k {
				a[s2][0] = 0
				if ndu[pk+1][rk] != 0 {
					a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				}
				d = a[s2][0] * ndu[rk][pk]
			}
			j1, j2 := 1, k-1
			if rk < -1 {
				j1 = -rk
			}
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = 0
				if ndu[pk+1][rk+j] != 0 {
					a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				}
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = 0
				if ndu[pk+1][r] != 0 {
					a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				}
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}
	r := Real(p)
	for k := 1; k <= du; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= r
		}
		r *= Real(p - k)
	}
	return ders
}
