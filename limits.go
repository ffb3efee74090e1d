package gopagenav

const (
	MaxRadius     = 100
	DefaultRadius = 3
)

func IsNormalizedRadiusMax(radius int, maxRadius int) (int, bool) {
	if radius < 0 {
		return 0, false
	} else if radius > maxRadius {
		return maxRadius, false
	}

	return radius, true
}

func NormalizeRadiusMax(radius int, maxRadius int) int {
	ret, _ := IsNormalizedRadiusMax(radius, maxRadius)
	return ret
}

func NormalizeRadius(radius int) int {
	return NormalizeRadiusMax(radius, MaxRadius)
}
