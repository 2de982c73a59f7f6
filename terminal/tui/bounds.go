package tui

// SaturatingAdd returns i+delta clamped to max
func SaturatingAdd(i, delta, max int) int {
	if sum := i + delta; sum <= max {
		return sum
	}
	return max
}

// SaturatingSub returns i-delta clamped to min
func SaturatingSub(i, delta, min int) int {
	if diff := i - delta; diff >= min {
		return diff
	}
	return min
}

// ClampCursor ensures cursor is within [0, total-1], 0 when empty
func ClampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	delta := visible / 2
	if delta < 1 {
		delta = 1
	}
	return delta
}
