package terminal

// xterm 256-color palette layout
//
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// Color cube channel levels for indices 16-231
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// Standard xterm values for the 16 system colors
var systemColors = [16][3]uint8{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Cube256 returns the palette index for an RGB cube coordinate, clamping each to [0,5]
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the palette index for a grayscale step in [0,23]
func Gray256(step uint8) uint8 {
	return 232 + min(step, 23)
}

// paletteRGB returns the nominal RGB value of a palette index
func paletteRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		c := systemColors[index]
		return c[0], c[1], c[2]
	case index < 232:
		n := index - 16
		return cubeValues[n/36], cubeValues[(n%36)/6], cubeValues[n%6]
	default:
		level := 8 + 10*(index-232)
		return level, level, level
	}
}
