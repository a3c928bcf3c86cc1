package reader

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/achilleasa/bvhtrace/log"
	"github.com/achilleasa/bvhtrace/scene"
)

const (
	dataFile = "scene.bin"
)

type zipSceneReader struct {
	logger log.Logger
}

func newZipSceneReader() *zipSceneReader {
	return &zipSceneReader{
		logger: log.New("zip reader"),
	}
}

// Read scene definition from a local or remote zip file.
func (p *zipSceneReader) Read(filename string) (*scene.Scene, error) {
	p.logger.Noticef(`loading scene snapshot from "%s"`, filename)
	start := time.Now()

	res, err := newResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	// Remote streams are not seekable so the archive is buffered in memory.
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("zipSceneReader: %s is not a valid zip archive: %w", res.Path(), err)
	}

	var sc *scene.Scene
	for _, f := range zr.File {
		if f.Name != dataFile {
			p.logger.Warningf("unknown file %s in scene zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		sc = &scene.Scene{}
		err = gob.NewDecoder(rc).Decode(sc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zipSceneReader: failed to load %s: %w", f.Name, err)
		}
	}

	if sc == nil {
		return nil, fmt.Errorf("zipSceneReader: %s not found in %s", dataFile, filename)
	}

	if err = validateScene(sc); err != nil {
		return nil, err
	}

	p.logger.Infof("loaded %d primitives in %d ms", len(sc.Primitives), time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}

// Reject primitives that the bvh and brute force search would disagree on:
// spheres need a positive finite radius and every bbox must be finite and
// not inverted.
func validateScene(sc *scene.Scene) error {
	for index, prim := range sc.Primitives {
		if prim == nil {
			return fmt.Errorf("zipSceneReader: invalid primitive %d: nil primitive", index)
		}

		if sphere, ok := prim.(*scene.Sphere); ok {
			if !(sphere.Radius > 0) || math.IsInf(sphere.Radius, 0) {
				return fmt.Errorf("zipSceneReader: invalid primitive %d: radius %v", index, sphere.Radius)
			}
		}

		bbox := prim.BBox()
		for axis := 0; axis < 3; axis++ {
			lo, hi := bbox.Min[axis], bbox.Max[axis]
			if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
				return fmt.Errorf("zipSceneReader: invalid primitive %d: bbox %v", index, bbox)
			}
		}
	}
	return nil
}
