package tui

// SplitHFixed cuts a fixed-width left column, remainder goes right
func SplitHFixed(r Region, leftW int) (left, right Region) {
	if leftW > r.W {
		leftW = r.W
	}
	if leftW < 0 {
		leftW = 0
	}
	left = r.Sub(0, 0, leftW, r.H)
	right = r.Sub(leftW, 0, r.W-leftW, r.H)
	return
}

// SplitVFixed cuts a fixed-height top row, remainder goes below
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}

// SplitHEqual divides the region into n equal-width columns with gap
// cells between them; leftover columns go to the leftmost regions.
func SplitHEqual(r Region, n, gap int) []Region {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Region{r}
	}

	availW := r.W - gap*(n-1)
	if availW < n {
		availW = n
	}
	baseW := availW / n
	extra := availW % n

	regions := make([]Region, n)
	x := 0
	for i := 0; i < n; i++ {
		w := baseW
		if i < extra {
			w++
		}
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w + gap
	}
	return regions
}

// SplitVEqual divides the region into n equal-height rows with gap cells
// between them
func SplitVEqual(r Region, n, gap int) []Region {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Region{r}
	}

	availH := r.H - gap*(n-1)
	if availH < n {
		availH = n
	}
	baseH := availH / n
	extra := availH % n

	regions := make([]Region, n)
	y := 0
	for i := 0; i < n; i++ {
		h := baseH
		if i < extra {
			h++
		}
		regions[i] = r.Sub(0, y, r.W, h)
		y += h + gap
	}
	return regions
}

// Center returns a w-by-h region centered within outer
func Center(outer Region, w, h int) Region {
	return outer.Sub((outer.W-w)/2, (outer.H-h)/2, w, h)
}
