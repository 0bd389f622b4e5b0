// Package glctx defines the graphics context the scene renders against.
//
// Context mirrors the WebGL 2 / OpenGL ES 3 call surface closely enough that
// a desktop OpenGL binding, a browser binding, or the software recorder in
// package recording can implement it with thin adapters. Object handles are
// small integers where zero means "no object", as in GL itself.
//
// Enum arguments use the constants of package glctx/gl so callers never
// hard-code raw values.
package glctx
