package colour

// HSV8 is an 8-bit HSV triple using OpenCV's conventions:
// H in [0, 179] (degrees halved), S and V in [0, 255].
type HSV8 struct {
	H, S, V uint8
}

// hsvShift is the fixed-point precision of the division tables.
const hsvShift = 12

// sdivTable[v] is round(255<<hsvShift / v) and hdivTable[d] is
// round(180<<hsvShift / 6d). Index 0 is zero in both.
var sdivTable, hdivTable = func() (s, h [256]int32) {
	for i := 1; i < 256; i++ {
		s[i] = int32((255<<hsvShift + i/2) / i)
		h[i] = int32((180<<hsvShift + 3*i) / (6 * i))
	}
	return s, h
}()

// ToHSV8 converts an RGB colour to 8-bit HSV with the same integer
// arithmetic as OpenCV's COLOR_RGB2HSV, so thresholds match it exactly.
// V is max(R, G, B); S and H are scaled through the division tables and
// rounded half up.
func ToHSV8(rgb RGB) HSV8 {
	r, g, b := int32(rgb.R), int32(rgb.G), int32(rgb.B)
	v := max(r, g, b)
	diff := v - min(r, g, b)

	s := (diff*sdivTable[v] + 1<<(hsvShift-1)) >> hsvShift

	var h int32
	switch v {
	case r:
		h = g - b
	case g:
		h = b - r + 2*diff
	default:
		h = r - g + 4*diff
	}
	h = (h*hdivTable[diff] + 1<<(hsvShift-1)) >> hsvShift
	if h < 0 {
		h += 180
	}

	return HSV8{H: uint8(h), S: uint8(s), V: uint8(v)}
}
