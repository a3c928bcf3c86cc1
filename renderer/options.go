package renderer

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

// Mode selects what the renderer visualizes for each primary ray.
type Mode uint8

const (
	// Surface normals mapped to RGB.
	NormalMode Mode = iota

	// Hit distance mapped to a gray ramp.
	DepthMode

	// Bounding box tests per ray mapped to a blue-red ramp.
	HeatmapMode
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normals"
	case DepthMode:
		return "depth"
	case HeatmapMode:
		return "heatmap"
	}
	return "unknown"
}

// Parse a mode name.
func ParseMode(name string) (Mode, error) {
	for _, m := range []Mode{NormalMode, DepthMode, HeatmapMode} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return NormalMode, fmt.Errorf("renderer: unknown mode %q", name)
}

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of jittered samples.
	SamplesPerPixel uint32

	Mode Mode

	// Max number of blocks rendered in parallel.
	Workers int

	// Seed for the per-block random generators.
	Seed int64

	// Valid ray interval.
	TMin float64
	TMax float64

	// Box tests per ray mapped to the hottest heatmap color.
	HeatmapScale float64

	// Hit distance mapped to black in depth mode.
	MaxDistance float64
}

// Get the default render options.
func DefaultOptions() Options {
	return Options{
		FrameW:          400,
		FrameH:          225,
		SamplesPerPixel: 4,
		Mode:            NormalMode,
		Workers:         runtime.NumCPU(),
		Seed:            42,
		TMin:            0.001,
		TMax:            math.Inf(1),
		HeatmapScale:    64,
		MaxDistance:     30,
	}
}
