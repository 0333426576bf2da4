// Package mathx provides the modified Bessel functions needed by thermal
// emission models. Polynomial approximations after Abramowitz & Stegun,
// accurate to a few 1e-7 over the real line, which is ample for emission
// coefficients.
package mathx

import "math"

// BesselI0 returns the modified Bessel function of the first kind I0(x).
func BesselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y
		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+
			y*(0.2659732+y*(0.360768e-1+y*0.45813e-2)))))
	}
	y := 3.75 / ax
	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.1328592e-1+y*(0.225319e-2+y*(-0.157565e-2+
			y*(0.916281e-2+y*(-0.2057706e-1+y*(0.2635537e-1+
				y*(-0.1647633e-1+y*0.392377e-2))))))))
}

// BesselK0 returns the modified Bessel function of the second kind K0(x),
// x > 0.
func BesselK0(x float64) float64 {
	if x <= 2.0 {
		y := x * x / 4.0
		return -math.Log(x/2.0)*BesselI0(x) +
			(-0.57721566 + y*(0.42278420+y*(0.23069756+y*(0.3488590e-1+
				y*(0.262698e-2+y*(0.10750e-3+y*0.74e-5))))))
	}
	y := 2.0 / x
	return (math.Exp(-x) / math.Sqrt(x)) *
		(1.25331414 + y*(-0.7832358e-1+y*(0.2189568e-1+y*(-0.1062446e-1+
			y*(0.587872e-2+y*(-0.251540e-2+y*0.53208e-3))))))
}

// BesselI1 returns the modified Bessel function of the first kind I1(x).
func BesselI1(x float64) float64 {
	ax := math.Abs(x)
	var ans float64
	if ax < 3.75 {
		y := x / 3.75
		y *= y
		ans = ax * (0.5 + y*(0.87890594+y*(0.51498869+y*(0.15084934+
			y*(0.2658733e-1+y*(0.301532e-2+y*0.32411e-3))))))
	} else {
		y := 3.75 / ax
		ans = 0.2282967e-1 + y*(-0.2895312e-1+y*(0.1787654e-1-y*0.420059e-2))
		ans = 0.39894228 + y*(-0.3988024e-1+y*(-0.362018e-2+
			y*(0.163801e-2+y*(-0.1031555e-1+y*ans))))
		ans *= math.Exp(ax) / math.Sqrt(ax)
	}
	if x < 0 {
		return -ans
	}
	return ans
}

// BesselK1 returns the modified Bessel function of the second kind K1(x),
// x > 0.
func BesselK1(x float64) float64 {
	if x <= 2.0 {
		y := x * x / 4.0
		return math.Log(x/2.0)*BesselI1(x) +
			(1.0/x)*(1.0+y*(0.15443144+y*(-0.67278579+y*(-0.18156897+
				y*(-0.1919402e-1+y*(-0.110404e-2+y*(-0.4686e-4)))))))
	}
	y := 2.0 / x
	return (math.Exp(-x) / math.Sqrt(x)) *
		(1.25331414 + y*(0.23498619+y*(-0.3655620e-1+y*(0.1504268e-1+
			y*(-0.780353e-2+y*(0.325614e-2+y*(-0.68245e-3)))))))
}

// BesselK returns K_n(x) for n >= 0 by upward recurrence from K0 and K1.
func BesselK(n int, x float64) float64 {
	switch n {
	case 0:
		return BesselK0(x)
	case 1:
		return BesselK1(x)
	}
	tox := 2.0 / x
	bkm := BesselK0(x)
	bk := BesselK1(x)
	for j := 1; j < n; j++ {
		bkp := bkm + float64(j)*tox*bk
		bkm = bk
		bk = bkp
	}
	return bk
}
