package main

import (
	"flag"
	"log"
	"runtime"

	glfwcontext "github.com/sunscape/sunscape/glfwcontext"
	meshes "github.com/sunscape/sunscape/meshes"
	options "github.com/sunscape/sunscape/options"
	renderer "github.com/sunscape/sunscape/renderer"
	scene "github.com/sunscape/sunscape/scene"
	shader "github.com/sunscape/sunscape/shader"
	view "github.com/sunscape/sunscape/view"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.Options{
		Width:    flag.Int("width", 1000, "Window width in pixels"),
		Height:   flag.Int("height", 800, "Window height in pixels"),
		Title:    flag.String("title", "sunscape", "Window title"),
		AssetDir: flag.String("assets", "textures", "Directory containing the scene textures"),
	}
	flag.Parse()

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		log.Fatalf("Failed to create display window: %v", err)
	}
	defer ctx.Shutdown()

	backend, err := renderer.NewBackend()
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	program, err := shader.NewProgram()
	if err != nil {
		log.Fatalf("Failed to build shader program: %v", err)
	}
	defer program.Delete()

	library := meshes.NewLibrary()
	defer library.Release()

	sceneManager := scene.NewManager(program, library, backend, ctx, *opts.AssetDir)
	viewManager := view.New(program, ctx, *opts.Width, *opts.Height)

	ctx.SetCursorHandler(viewManager.CursorMoved)
	ctx.SetScrollHandler(viewManager.Scrolled)

	if err := sceneManager.Prepare(); err != nil {
		log.Fatalf("Failed to prepare scene: %v", err)
	}
	sceneManager.Textures.BindAll()
	defer sceneManager.Textures.ReleaseAll()

	for !ctx.ShouldClose() {
		viewManager.FrameUpdate()
		sceneManager.Render()
		ctx.EndFrame()
	}
}
