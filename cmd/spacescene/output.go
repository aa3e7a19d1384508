package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/rasterkit"
)

// project maps the camera rectangle of world (canvas coordinates) onto a
// width × height image. Nearest-neighbour scaling keeps rasterized pixels
// crisp when the camera is zoomed in.
func project(world *rasterkit.Pixmap, camera rasterkit.ClipRect, width, height int) *image.RGBA {
	src := image.Rect(
		int(math.Floor(camera.XMin)), int(math.Floor(camera.YMin)),
		int(math.Floor(camera.XMax))+1, int(math.Floor(camera.YMax))+1,
	)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(colorBlack.Color()), image.Point{}, xdraw.Src)

	visible := src.Intersect(world.Bounds())
	if visible.Empty() {
		return dst
	}

	// Parts of the camera outside the world stay black; scale only the
	// visible part into the matching sub-rectangle of dst.
	sx := float64(width) / float64(src.Dx())
	sy := float64(height) / float64(src.Dy())
	target := image.Rect(
		int(math.Round(float64(visible.Min.X-src.Min.X)*sx)),
		int(math.Round(float64(visible.Min.Y-src.Min.Y)*sy)),
		int(math.Round(float64(visible.Max.X-src.Min.X)*sx)),
		int(math.Round(float64(visible.Max.Y-src.Min.Y)*sy)),
	)
	xdraw.NearestNeighbor.Scale(dst, target, world.ToImage(), visible, xdraw.Src, nil)
	return dst
}

// drawLabel writes text in the top-left corner of img.
func drawLabel(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(6, 6+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// writePNG encodes img to path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close frame: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
