package reader

import (
	"archive/zip"
	"math"
	"strings"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/scene/writer"
	"github.com/achilleasa/bvhtrace/types"
)

func TestSnapshotRoundTrip(t *testing.T) {
	sc := scene.GenerateRandom(rand.New(rand.NewSource(42)), 20)
	file := filepath.Join(t.TempDir(), "scene.zip")

	if err := writer.WriteScene(sc, file); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadScene(file)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded.Primitives) != len(sc.Primitives) {
		t.Fatalf("expected %d primitives; got %d", len(sc.Primitives), len(loaded.Primitives))
	}
	for index, prim := range sc.Primitives {
		exp := prim.(*scene.Sphere)
		got, ok := loaded.Primitives[index].(*scene.Sphere)
		if !ok {
			t.Fatalf("expected primitive %d to be a sphere; got %T", index, loaded.Primitives[index])
		}
		if *exp != *got {
			t.Fatalf("expected primitive %d to be %+v; got %+v", index, exp, got)
		}
	}

	if loaded.Camera == nil || loaded.Camera.Position != sc.Camera.Position || loaded.Camera.FOV != sc.Camera.FOV {
		t.Fatalf("expected camera %v; got %v", sc.Camera, loaded.Camera)
	}
}

func TestUnsupportedFormats(t *testing.T) {
	if _, err := ReadScene("scene.obj"); err == nil {
		t.Fatal("expected an error for unsupported reader format")
	}
	if err := writer.WriteScene(&scene.Scene{}, "scene.obj"); err == nil {
		t.Fatal("expected an error for unsupported writer format")
	}
}

func TestMissingSceneData(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.zip")
	f, err := os.Create(file)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("readme.txt")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("not a scene"))
	zw.Close()
	f.Close()

	if _, err = ReadScene(file); err == nil {
		t.Fatal("expected an error for a zip file without scene data")
	}
}

func TestInvalidPrimitivesRejected(t *testing.T) {
	type spec struct {
		origin types.Vec3
		radius float64
	}
	specs := []spec{
		spec{types.XYZ(0, 0, 0), -1},
		spec{types.XYZ(0, 0, 0), 0},
		spec{types.XYZ(0, 0, 0), math.NaN()},
		spec{types.XYZ(0, 0, 0), math.Inf(1)},
		spec{types.XYZ(math.NaN(), 0, 0), 1},
		spec{types.XYZ(0, math.Inf(-1), 0), 1},
	}

	dir := t.TempDir()
	for index, s := range specs {
		sc := &scene.Scene{Camera: scene.DefaultCamera()}
		sc.Add(scene.NewSphere(types.XYZ(5, 0, 0), 1, scene.Material{}))
		sc.Add(scene.NewSphere(s.origin, s.radius, scene.Material{}))

		file := filepath.Join(dir, "invalid.zip")
		if err := writer.WriteScene(sc, file); err != nil {
			t.Fatalf("[spec %d] unexpected write error: %v", index, err)
		}

		_, err := ReadScene(file)
		if err == nil {
			t.Fatalf("[spec %d] expected an error for a sphere at %v with radius %v", index, s.origin, s.radius)
		}
		if !strings.Contains(err.Error(), "invalid primitive 1") {
			t.Fatalf("[spec %d] expected error to reference primitive 1; got %v", index, err)
		}
	}
}
