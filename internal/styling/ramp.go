package styling

import "fmt"

// rampStops is the 9-class orange-red ColorBrewer ramp, light to dark.
var rampStops = [][3]uint8{
	{0xff, 0xf7, 0xec},
	{0xfe, 0xe8, 0xc8},
	{0xfd, 0xd4, 0x9e},
	{0xfd, 0xbb, 0x84},
	{0xfc, 0x8d, 0x59},
	{0xef, 0x65, 0x48},
	{0xd7, 0x30, 0x1f},
	{0xb3, 0x00, 0x00},
	{0x7f, 0x00, 0x00},
}

// rampColor maps a normalized position in [0,1] to a hex color on the ramp,
// interpolating linearly between adjacent stops.
func rampColor(pos float64) string {
	if pos <= 0 {
		return hex(rampStops[0])
	}
	if pos >= 1 {
		return hex(rampStops[len(rampStops)-1])
	}

	scaled := pos * float64(len(rampStops)-1)
	idx := int(scaled)
	frac := scaled - float64(idx)

	lo, hi := rampStops[idx], rampStops[idx+1]
	var mixed [3]uint8
	for c := 0; c < 3; c++ {
		mixed[c] = uint8(float64(lo[c]) + frac*(float64(hi[c])-float64(lo[c])) + 0.5)
	}
	return hex(mixed)
}

// dark reports whether text on the given background needs a light color.
func dark(color string) bool {
	var r, g, b uint8
	if _, err := fmt.Sscanf(color, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return false
	}
	// Perceived luminance, ITU-R BT.601 weights.
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return luma < 128
}

func hex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
