package colour

import "testing"

func TestHarmonyRed(t *testing.T) {
	got := Harmony(RGB{R: 255})

	if got.Complementary != (RGB{G: 255, B: 255}) {
		t.Errorf("Complementary = %v, want cyan", got.Complementary)
	}
	if got.Analogous != [2]RGB{{R: 255, G: 127}, {R: 255, B: 127}} {
		t.Errorf("Analogous = %v", got.Analogous)
	}
	if got.Triadic != [2]RGB{{G: 255}, {B: 255}} {
		t.Errorf("Triadic = %v", got.Triadic)
	}
}

func TestComplementaryInvolution(t *testing.T) {
	for _, c := range []RGB{{R: 52, G: 152, B: 219}, {R: 10, G: 10, B: 35}, White} {
		if got := Complementary(Complementary(c)); got != c {
			t.Errorf("Complementary twice of %v = %v", c, got)
		}
	}
}

func TestRotateHuePreservesLightness(t *testing.T) {
	base := RGB{R: 52, G: 152, B: 219}
	_, _, l := base.toColorful().Hsl()
	a1, a2 := Analogous(base)
	t1, t2 := Triadic(base)

	for _, c := range []RGB{a1, a2, t1, t2} {
		_, _, got := c.toColorful().Hsl()
		if diff := got - l; diff > 0.01 || diff < -0.01 {
			t.Errorf("lightness of %v = %f, base %f", c, got, l)
		}
	}
}

func TestHarmonyVariants(t *testing.T) {
	v := Harmony(RGB{R: 255}).Variants()
	if len(v) != 6 {
		t.Fatalf("got %d variants, want 6", len(v))
	}
	if v[0].Label != "Primary" || v[0].Colour != (RGB{R: 255}) {
		t.Errorf("first variant = %+v, want primary red", v[0])
	}
}

func TestHarmonyTruncatesExactValues(t *testing.T) {
	base := RGB{R: 0x44, G: 0x20, B: 0x82}
	a1, a2 := Analogous(base)
	t1, t2 := Triadic(base)

	want := []RGB{{R: 117, G: 32, B: 130}, {R: 32, G: 44, B: 130}, {R: 130, G: 67, B: 32}, {R: 32, G: 130, B: 68}}
	for i, got := range []RGB{a1, a2, t1, t2} {
		if got != want[i] {
			t.Errorf("relation %d of %s = %v, want %v", i, base.Hex(), got, want[i])
		}
	}
}
