package teapot

import (
	"errors"
	"fmt"

	"github.com/gogpu/teapot/internal/shader"
	"github.com/gogpu/teapot/internal/texture"
)

// Scene errors.
var (
	// ErrNotReady is returned by Render before construction has finished.
	ErrNotReady = errors.New("teapot: scene not ready")

	// ErrRenderBusy is returned by Render while another Render is running.
	ErrRenderBusy = errors.New("teapot: render already in progress")

	// ErrDestroyed is returned by operations on a destroyed scene.
	ErrDestroyed = errors.New("teapot: scene destroyed")

	// ErrInvalidViewport is returned for a non-positive width or height.
	ErrInvalidViewport = errors.New("teapot: invalid viewport")
)

// Error types reported by scene construction. They are the types returned
// by the shader and texture builders, so errors.As works on either name.
type (
	// CompileError reports a shader stage that failed to compile.
	CompileError = shader.CompileError
	// LinkError reports a program that failed to link.
	LinkError = shader.LinkError
	// MissingAttributeError reports a required attribute the program lacks.
	MissingAttributeError = shader.MissingAttributeError
	// DecodeError reports a cube face whose image bytes are malformed.
	DecodeError = texture.DecodeError
)

// ResourceKind names a kind of GL object.
type ResourceKind int

const (
	ResourceBuffer ResourceKind = iota
	ResourceShader
	ResourceProgram
	ResourceTexture
	ResourceVertexArray
)

var resourceKindNames = [...]string{
	ResourceBuffer:      "buffer",
	ResourceShader:      "shader",
	ResourceProgram:     "program",
	ResourceTexture:     "texture",
	ResourceVertexArray: "vertex array",
}

// String returns the object kind name.
func (k ResourceKind) String() string {
	if k >= 0 && int(k) < len(resourceKindNames) {
		return resourceKindNames[k]
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

// ResourceCreationError reports a GL object the context could not allocate.
type ResourceCreationError struct {
	Kind ResourceKind
	Err  error
}

func (e *ResourceCreationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("teapot: cannot create %s", e.Kind)
	}
	return fmt.Sprintf("teapot: cannot create %s: %v", e.Kind, e.Err)
}

func (e *ResourceCreationError) Unwrap() error { return e.Err }

// ConstructionError wraps the failure that aborted NewScene. Step names the
// construction phase, such as "program" or "geometry teapot".
type ConstructionError struct {
	Step string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("teapot: construct %s: %v", e.Step, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
