// Package recording provides a software implementation of glctx.Context that
// records every call as a typed command.
//
// The recorder keeps the same object model a GL driver keeps: named buffers,
// shaders, programs, textures and vertex arrays, per-target bindings, a
// texture unit table and a sticky error flag. Shader sources are checked for
// the structural problems a real compiler rejects first (missing version
// directive, missing main, unbalanced delimiters, missing ES float precision)
// and their in/out/uniform declarations are reflected, so attribute and
// uniform lookups behave as they do against a driver.
//
// Design follows the command-struct approach of inspectable, typed records
// rather than an opaque byte stream: tests assert on Commands or Draws, and
// hosts without a GPU drive a Scene through the recorder unchanged.
//
// # Example
//
//	rec := recording.NewContext()
//	scene, err := teapot.NewScene(rec, 800, 600)
//	...
//	_ = scene.Render()
//	for _, d := range rec.Draws() {
//		fmt.Println(d.Count, d.Uniforms["mMatrix"])
//	}
//
// A Context is not safe for concurrent use.
package recording
