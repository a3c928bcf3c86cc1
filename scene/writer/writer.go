package writer

import (
	"fmt"
	"strings"

	"github.com/achilleasa/bvhtrace/scene"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Scene) error
}

// Write scene snapshot to a file. The file extension selects the format.
func WriteScene(sc *scene.Scene, filename string) error {
	var writer Writer
	switch {
	case strings.HasSuffix(filename, ".zip"):
		writer = newZipSceneWriter(filename)
	default:
		return fmt.Errorf("writeScene: unsupported file format %q", filename)
	}
	return writer.Write(sc)
}
