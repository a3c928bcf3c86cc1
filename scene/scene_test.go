package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/achilleasa/bvhtrace/types"
)

func TestBruteForceIntersect(t *testing.T) {
	sc := &Scene{}
	sc.Add(NewSphere(types.XYZ(0, 0, -10), 1, Material{}))
	sc.Add(NewSphere(types.XYZ(0, 0, -5), 1, Material{}))
	sc.Add(NewSphere(types.XYZ(5, 0, -5), 1, Material{}))

	var stats TraversalStats
	hit, ok := sc.Intersect(NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), 0.001, math.Inf(1), &stats)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.PrimitiveIndex != 1 {
		t.Fatalf("expected nearest primitive 1; got %d", hit.PrimitiveIndex)
	}
	if math.Abs(hit.T-4) > 1e-12 {
		t.Fatalf("expected t = 4; got %f", hit.T)
	}
	if stats.PrimitiveTests != 3 || stats.BoxTests != 0 {
		t.Fatalf("expected 3 primitive tests and 0 box tests; got %+v", stats)
	}

	if _, ok = sc.Intersect(NewRay(types.Vec3{}, types.XYZ(0, 0, 1)), 0.001, math.Inf(1), nil); ok {
		t.Fatal("expected ray pointing away to miss")
	}

	empty := &Scene{}
	if _, ok = empty.Intersect(NewRay(types.Vec3{}, types.XYZ(0, 0, 1)), 0.001, math.Inf(1), nil); ok {
		t.Fatal("expected empty scene to report no hit")
	}
}

func TestFeaturedScene(t *testing.T) {
	sc := NewFeaturedScene()
	if len(sc.Primitives) != 4 {
		t.Fatalf("expected 4 primitives; got %d", len(sc.Primitives))
	}

	// Look from the demo camera position towards the origin.
	from := types.XYZ(13, 2, 3)
	hit, ok := sc.Intersect(NewRay(from, types.Vec3{}.Sub(from)), 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected ray towards the origin to hit the scene")
	}
	if hit.PrimitiveIndex != 3 {
		t.Fatalf("expected metal sphere to be hit first; got primitive %d", hit.PrimitiveIndex)
	}
}

func TestGenerateRandomDeterminism(t *testing.T) {
	sc1 := GenerateRandom(rand.New(rand.NewSource(42)), 50)
	sc2 := GenerateRandom(rand.New(rand.NewSource(42)), 50)

	if len(sc1.Primitives) != len(sc2.Primitives) {
		t.Fatalf("expected same primitive count; got %d and %d", len(sc1.Primitives), len(sc2.Primitives))
	}
	if len(sc1.Primitives) > 54 || len(sc1.Primitives) < 5 {
		t.Fatalf("expected between 5 and 54 primitives; got %d", len(sc1.Primitives))
	}

	for index := range sc1.Primitives {
		s1 := sc1.Primitives[index].(*Sphere)
		s2 := sc2.Primitives[index].(*Sphere)
		if *s1 != *s2 {
			t.Fatalf("expected primitive %d to match; got %+v and %+v", index, s1, s2)
		}
		if index >= 4 {
			if s1.Radius != smallRadius {
				t.Fatalf("expected small sphere radius %f; got %f", smallRadius, s1.Radius)
			}
			if overlapsFeature(s1.Origin) {
				t.Fatalf("expected primitive %d not to overlap the featured spheres", index)
			}
		}
	}
}

func TestCameraRays(t *testing.T) {
	cam := DefaultCamera()
	cam.SetupProjection(2.0)

	// The center of the viewport looks straight at LookAt for a pinhole camera.
	r := cam.GetRay(0.5, 0.5, nil)
	expDir := cam.LookAt.Sub(cam.Position).Normalize()
	if !r.Dir.ApproxEqual(expDir, 1e-9) {
		t.Fatalf("expected center ray direction %v; got %v", expDir, r.Dir)
	}
	if r.Origin != cam.Position {
		t.Fatalf("expected pinhole ray to start at the camera position; got %v", r.Origin)
	}

	// Lens sampling keeps the origin within the aperture.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		r = cam.GetRay(rng.Float64(), rng.Float64(), rng)
		if d := r.Origin.Sub(cam.Position).Len(); d > cam.Aperture/2+1e-12 {
			t.Fatalf("expected lens offset <= %f; got %f", cam.Aperture/2, d)
		}
		if math.Abs(r.Dir.Len()-1) > 1e-9 {
			t.Fatalf("expected normalized ray direction; got length %f", r.Dir.Len())
		}
	}
}
