package renderer

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/scene"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSideBySide(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	out := SideBySide(solidImage(4, 3, red), solidImage(2, 5, blue))
	if out.Bounds().Dx() != 6 || out.Bounds().Dy() != 5 {
		t.Fatalf("expected 6x5 output; got %v", out.Bounds())
	}
	if out.RGBAAt(0, 0) != red {
		t.Fatalf("expected left half to contain the left image")
	}
	if out.RGBAAt(5, 4) != blue {
		t.Fatalf("expected right half to contain the right image")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	img := solidImage(8, 4, color.RGBA{10, 20, 30, 255})

	decoders := map[string]func(f *os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
		"out.TIF":  func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}

	for name, decode := range decoders {
		imgFile := filepath.Join(dir, name)
		if err := SaveImage(img, imgFile); err != nil {
			t.Fatalf("[%s] unexpected error: %v", name, err)
		}

		f, err := os.Open(imgFile)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("[%s] decode failed: %v", name, err)
		}
		if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 4 {
			t.Fatalf("[%s] expected 8x4 image; got %v", name, decoded.Bounds())
		}
	}

	err := SaveImage(img, filepath.Join(dir, "out.jpg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat; got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.jpg")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file to be created for unsupported formats")
	}
}

func TestRenderBvhLayers(t *testing.T) {
	sc := scene.GenerateRandom(rand.New(rand.NewSource(12345)), 60)
	tree := bvh.New(sc.Primitives, bvh.DefaultOptions())

	opts := DefaultLayerOptions()
	opts.Width, opts.Height = 128, 96
	img := RenderBvhLayers(tree, sc.Primitives, opts)

	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 96 {
		t.Fatalf("expected 128x96 image; got %v", img.Bounds())
	}

	bg := toRGBA(layerBackground)
	var drawn int
	for y := 0; y < 96; y++ {
		for x := 0; x < 128; x++ {
			if img.RGBAAt(x, y) != bg {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Fatal("expected boxes and primitives to be drawn")
	}

	empty := RenderBvhLayers(nil, nil, opts)
	for y := 0; y < 96; y++ {
		for x := 0; x < 128; x++ {
			if empty.RGBAAt(x, y) != bg {
				t.Fatalf("expected empty view to only contain the background; pixel (%d, %d) differs", x, y)
			}
		}
	}
}
