package rasterkit

import (
	"errors"
	"image"
	"io/fs"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 8)
	if pm.Width() != 10 || pm.Height() != 8 {
		t.Fatalf("size = %dx%d, want 10x8", pm.Width(), pm.Height())
	}

	pm.Set(Pt(3, 4), testBlue)
	if got := pm.Get(Pt(3, 4)); !got.Equal(testBlue) {
		t.Errorf("Get(3,4) = %v, want %v", got, testBlue)
	}
	if got := pm.Get(Pt(4, 3)); !got.Equal(testBlack) {
		t.Errorf("Get(4,3) = %v, want black", got)
	}

	// Overwrite, no blending.
	pm.Set(Pt(3, 4), testRed)
	if got := pm.Get(Pt(3, 4)); !got.Equal(testRed) {
		t.Errorf("Get after overwrite = %v, want %v", got, testRed)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(testWhite)

	original := append([]uint8(nil), pm.Data()...)
	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		pm.Set(p, testRed)
		if got := pm.Get(p); got != (Color{}) {
			t.Errorf("Get(%v) = %v, want zero Color", p, got)
		}
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmapClearAndFillSpan(t *testing.T) {
	pm := NewPixmap(6, 3)
	pm.Clear(testWhite)
	if n := countColor(pm, testWhite); n != 18 {
		t.Fatalf("after Clear %d white pixels, want 18", n)
	}

	pm.FillSpan(1, 4, 1, testRed)
	for x := range 6 {
		want := testWhite
		if x >= 1 && x <= 4 {
			want = testRed
		}
		if got := pm.Get(Pt(x, 1)); !got.Equal(want) {
			t.Errorf("Get(%d,1) = %v, want %v", x, got, want)
		}
	}
	if n := countColor(pm, testRed); n != 4 {
		t.Errorf("FillSpan wrote %d pixels, want 4", n)
	}
}

func TestFillSpanClamps(t *testing.T) {
	pm := newTestPixmap(5, 5)
	if n := fillSpan(pm, -3, 10, 2, testRed); n != 5 {
		t.Errorf("fillSpan clamped count = %d, want 5", n)
	}
	if n := fillSpan(pm, 3, 1, 0, testRed); n != 3 {
		t.Errorf("fillSpan reversed count = %d, want 3", n)
	}
	if n := fillSpan(pm, 0, 4, 5, testRed); n != 0 {
		t.Errorf("fillSpan off-canvas row = %d, want 0", n)
	}
	if n := fillSpan(pm, 6, 9, 1, testRed); n != 0 {
		t.Errorf("fillSpan off-canvas span = %d, want 0", n)
	}
}

func TestPixmapImage(t *testing.T) {
	pm := newTestPixmap(3, 2)
	pm.Set(Pt(2, 1), testMagenta)

	if got := pm.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}

	img := pm.ToImage()
	if got := img.RGBAAt(2, 1); got.R != 255 || got.G != 0 || got.B != 255 || got.A != 255 {
		t.Errorf("ToImage pixel = %v, want opaque magenta", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 255 {
		t.Errorf("ToImage alpha = %d, want 255", got.A)
	}

	back := FromImage(img)
	if got := back.Get(Pt(2, 1)); !got.Equal(testMagenta) {
		t.Errorf("FromImage pixel = %v, want magenta", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := newTestPixmap(8, 8)
	FillCircle(pm, Pt(4, 4), 3, testBlue)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := FromColor(img.At(4, 4)); !got.Equal(testBlue) {
		t.Errorf("decoded center = %v, want %v", got, testBlue)
	}
}

func TestPixmapSavePNGError(t *testing.T) {
	pm := NewPixmap(1, 1)
	err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	if err == nil {
		t.Fatal("SavePNG into a missing directory succeeded")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("SavePNG error = %v, want a not-exist error", err)
	}
}

func TestNewPixmapNegative(t *testing.T) {
	pm := NewPixmap(-3, 4)
	if pm.Width() != 0 || len(pm.Data()) != 0 {
		t.Errorf("NewPixmap(-3, 4) = %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
}
