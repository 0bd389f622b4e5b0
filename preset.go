package teapot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("teapot: unknown preset")

// Preset selects the set of drawable objects and the shader program.
type Preset int

const (
	// PresetReflection draws a cube sky box followed by a teapot that
	// reflects the cube map.
	PresetReflection Preset = iota

	// PresetSingleMesh draws a flat white teapot with no texture.
	PresetSingleMesh
)

var presetNames = [...]string{
	PresetReflection: "reflection",
	PresetSingleMesh: "single",
}

// String returns the preset name accepted by ParsePreset.
func (p Preset) String() string {
	if p >= 0 && int(p) < len(presetNames) {
		return presetNames[p]
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// ParsePreset returns the preset with the given name. Matching ignores case.
func ParsePreset(name string) (Preset, error) {
	for i, n := range presetNames {
		if strings.EqualFold(n, name) {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// programName returns the embedded shader program the preset uses.
func (p Preset) programName() string {
	if p == PresetSingleMesh {
		return "flat"
	}
	return "reflection"
}

// textured reports whether the preset samples a cube map.
func (p Preset) textured() bool {
	return p == PresetReflection
}
