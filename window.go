package gopagenav

import "github.com/samber/lo"

// Window computes the run of page numbers to display around the current page.
//
// The window starts as [current-radius, current+radius]. If it sticks out
// before page 1 it is shifted right, and if it then sticks out past the last
// page it is shifted left. Whatever remains inside [1, total] is returned in
// ascending order. The window therefore keeps its full 2*radius+1 width
// whenever the dataset is wide enough and shrinks when it is not.
//
// Degenerate inputs (total <= 0, negative radius) yield an empty window
// rather than an error. Same inputs always produce the same window.
func Window(current, total, radius int) []int {
	if total <= 0 || radius < 0 {
		return nil
	}

	low, high := current-radius, current+radius
	if shift := 1 - low; shift > 0 {
		low, high = low+shift, high+shift
	}
	if shift := high - total; shift > 0 {
		low, high = low-shift, high-shift
	}

	low = max(low, 1)
	high = min(high, total)
	if low > high {
		return nil
	}

	return lo.RangeFrom(low, high-low+1)
}
