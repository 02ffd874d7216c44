package colour

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestPaletteWeight(t *testing.T) {
	palette := &Palette{Colours: []RGB{{R: 255}, {G: 255}, {B: 255}}, Weights: []float64{0.5, 0.3, 0.2}}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}
	if got := palette.Weight(1); got != 0.3 {
		t.Errorf("Weight(1) = %f, want 0.3", got)
	}
	for _, idx := range []int{-1, 3} {
		if got := palette.Weight(idx); got != 0 {
			t.Errorf("Weight(%d) = %f, want 0", idx, got)
		}
	}
	if got := (&Palette{Colours: []RGB{{R: 1}}}).Weight(0); got != 0 {
		t.Errorf("Expected zero weight for unweighted palette, got %f", got)
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := &Palette{Colours: []RGB{{R: 255}, {G: 128, B: 1}}}
	got := palette.ToHex()
	if len(got) != 2 || got[0] != "#ff0000" || got[1] != "#008001" {
		t.Errorf("ToHex() = %v", got)
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{name: "red", color: color.RGBA{R: 255, A: 255}, want: RGB{R: 255}},
		{name: "white", color: color.White, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", color: color.Black, want: RGB{}},
		{name: "nrgba opaque", color: color.NRGBA{R: 10, G: 20, B: 30, A: 255}, want: RGB{R: 10, G: 20, B: 30}},
		{name: "already rgb", color: RGB{R: 1, G: 2, B: 3}, want: RGB{R: 1, G: 2, B: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.color); got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{R: 26, G: 43, B: 60}
	if got := c.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %q, want #1a2b3c", got)
	}
	if got := c.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %q, want rgb(26, 43, 60)", got)
	}
	if got := c.Triple(); got != "26, 43, 60" {
		t.Errorf("Triple() = %q, want 26, 43, 60", got)
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := &Palette{
		Colours: []RGB{{R: 255}, {B: 255}},
		Weights: []float64{0.75, 0.25},
		Inertia: 12.5,
	}

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("Count = %d, want 2", decoded.Count)
	}
	if decoded.Colours[0].Hex != "#ff0000" || decoded.Colours[0].Weight != 0.75 {
		t.Errorf("First colour = %+v, want #ff0000 weight 0.75", decoded.Colours[0])
	}
	if decoded.Inertia != 12.5 {
		t.Errorf("Inertia = %f, want 12.5", decoded.Inertia)
	}
}
