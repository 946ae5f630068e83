package gradient

import "math"

// interpolateZone appends n colors stepping linearly from min towards max.
// The i-th appended color (i = 1..n) has every channel set to
// floor(min + (max-min)/n*i); min itself is never appended and the n-th
// color is max.
func interpolateZone(dst []string, min, max RGB, n int) []string {
	if n <= 0 {
		return dst
	}

	step := func(from, to uint8) float64 {
		return (float64(to) - float64(from)) / float64(n)
	}
	sr, sg, sb := step(min.R, max.R), step(min.G, max.G), step(min.B, max.B)

	for i := 1; i < n; i++ {
		dst = append(dst, RGB{
			R: channel(min.R, sr, i),
			G: channel(min.G, sg, i),
			B: channel(min.B, sb, i),
		}.Hex())
	}

	return append(dst, max.Hex())
}

// channel evaluates floor(from + delta*i). The explicit float64 conversion
// of the product keeps the compiler from fusing it into an FMA, which would
// change rounding on some architectures.
func channel(from uint8, delta float64, i int) uint8 {
	v := float64(from) + float64(delta*float64(i))
	return uint8(math.Floor(v))
}
