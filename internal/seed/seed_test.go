package seed

import (
	"image"
	"image/color"
	"testing"
)

func checker(w, h int, a, b color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

func TestCalculate(t *testing.T) {
	img := checker(20, 10, color.White, color.Black)
	manual := int64(42)

	tests := []struct {
		name    string
		img     image.Image
		path    string
		config  Config
		want    *int64
		wantErr bool
	}{
		{name: "manual", config: Config{Mode: ModeManual, Value: &manual}, want: &manual},
		{name: "manual without value", config: Config{Mode: ModeManual}, wantErr: true},
		{name: "content without image", config: Config{Mode: ModeContent}, wantErr: true},
		{name: "filepath without path", config: Config{Mode: ModeFilepath}, wantErr: true},
		{name: "unknown mode", img: img, config: Config{Mode: "dice"}, wantErr: true},
		{name: "content", img: img, config: Config{Mode: ModeContent}},
		{name: "default is content", img: img, config: Config{}},
		{name: "filepath", path: "photo.jpg", config: Config{Mode: ModeFilepath}},
		{name: "random", config: Config{Mode: ModeRandom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.img, tt.path, tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Calculate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != nil && got != *tt.want {
				t.Errorf("Calculate() = %d, want %d", got, *tt.want)
			}
		})
	}
}

func TestContentSeedStable(t *testing.T) {
	a := checker(30, 30, color.White, color.Black)
	b := checker(30, 30, color.White, color.Black)
	c := checker(30, 30, color.Black, color.White)

	if ContentSeed(a) != ContentSeed(b) {
		t.Error("Identical images produced different seeds")
	}
	if ContentSeed(a) == ContentSeed(c) {
		t.Error("Different images produced the same seed")
	}
}

func TestFilepathSeedStable(t *testing.T) {
	if FilepathSeed("a/b.png") != FilepathSeed("a/b.png") {
		t.Error("Same path produced different seeds")
	}
	if FilepathSeed("a/b.png") == FilepathSeed("a/c.png") {
		t.Error("Different paths produced the same seed")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		if got, err := ParseMode(string(m)); err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("Expected error for invalid mode")
	}
}

func TestFilepathSeedURL(t *testing.T) {
	const url = "https://example.com/photo.jpg"
	if FilepathSeed(url) != FilepathSeed(url) {
		t.Error("Same URL produced different seeds")
	}
	if FilepathSeed(url) == FilepathSeed("https://example.com/other.jpg") {
		t.Error("Different URLs produced the same seed")
	}
}
