package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInvalidFrame      = errors.New("renderer: invalid frame dimensions")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
	ErrUnsupportedFormat = errors.New("renderer: unsupported image format")
)
