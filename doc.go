// Package teapot renders a small fixed 3D scene, a Utah teapot and a cube
// sky box, with a perspective camera and optional cube-map environment
// reflection, against a GL-style context.
//
// # Overview
//
// A host owns the window and the graphics context. It constructs a Scene
// once and calls Render once per displayed frame:
//
//	scene, err := teapot.NewScene(ctx, 800, 600,
//	    teapot.WithPreset(teapot.PresetReflection),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer scene.Destroy()
//
//	for running {
//	    if err := scene.Render(); err != nil {
//	        log.Print(err)
//	    }
//	}
//
// # Presets
//
// PresetReflection draws a large cube textured with the environment map,
// then a teapot that reflects it. PresetSingleMesh draws only a flat white
// teapot and needs no texture.
//
// # Context
//
// Every graphics call goes through the glctx.Context interface. The
// backend/glfw package implements it over desktop OpenGL; the recording
// package implements it in memory and records every call, which is what the
// tests and the headless backend use.
//
// # Threading
//
// A Scene is driven from the goroutine that owns the context. Render
// returns ErrRenderBusy when called while another Render is in progress.
// Post is the only method meant for other goroutines: it queues an input
// event that is applied at the start of the next frame.
//
// # Logging
//
// Logging is silent by default. Call SetLogger to route diagnostics to a
// slog.Logger.
package teapot
