package main

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/der-antikeks/deskscene/render"
	"github.com/der-antikeks/deskscene/scene"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := parseConfig()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("exiting", zap.Error(err))
	}
}

func run(cfg config, log *zap.Logger) error {
	ctx, err := render.NewContext(cfg.Title, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	program, err := render.NewSceneProgram()
	if err != nil {
		return err
	}
	defer program.Delete()
	program.Use()

	uploader := render.NewTextureUploader(log)
	textures := scene.NewTextureRegistry(uploader, log)
	meshes := render.NewMeshBuffers()
	defer meshes.Destroy()

	manager := scene.NewManager(program, meshes, textures, cfg.AssetDir, log)
	if err := manager.Prepare(); err != nil {
		return err
	}
	defer manager.Destroy()

	width, height := ctx.Size()
	if err := render.ApplyCamera(program, width, height); err != nil {
		return err
	}

	log.Info("scene ready",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("assets", cfg.AssetDir))

	for !ctx.ShouldClose() {
		ctx.BeginFrame()
		if err := manager.Render(); err != nil {
			return err
		}
		ctx.EndFrame()
	}
	return nil
}
