package reader

import (
	"fmt"
	"strings"

	"github.com/achilleasa/bvhtrace/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a file path or an http/https URL.
	Read(filename string) (*scene.Scene, error)
}

// Read scene snapshot from file.
func ReadScene(filename string) (*scene.Scene, error) {
	var reader Reader
	switch {
	case strings.HasSuffix(filename, ".zip"):
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("readScene: unsupported file format %q", filename)
	}
	return reader.Read(filename)
}
