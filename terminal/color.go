package terminal

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// RGBTo256 maps a 24-bit color to the nearest xterm-256 palette index.
// Grayscale ramp is preferred for near-gray colors; otherwise the 6x6x6
// cube entry with the smallest distance wins.
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	ci := 16 + 36*nearestCube(c.R) + 6*nearestCube(c.G) + nearestCube(c.B)
	cr := int(cubeValues[nearestCube(c.R)])
	cg := int(cubeValues[nearestCube(c.G)])
	cb := int(cubeValues[nearestCube(c.B)])
	cubeDist := sq(r-cr) + sq(g-cg) + sq(b-cb)

	// Grayscale candidates: 232 + i covers 8 + 10*i for i in [0,23]
	gi := (r + g + b) / 3
	gl := (gi - 8) / 10
	if gl < 0 {
		gl = 0
	}
	if gl > 23 {
		gl = 23
	}
	gv := 8 + 10*gl
	grayDist := sq(r-gv) + sq(g-gv) + sq(b-gv)

	if grayDist < cubeDist {
		return uint8(grayscaleStart + gl)
	}
	return uint8(ci)
}

// nearestCube returns the cube level index 0-5 closest to v
func nearestCube(v uint8) int {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sq(n int) int {
	return n * n
}
