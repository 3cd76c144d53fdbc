package main

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"softbox/internal/config"
	"softbox/internal/input"
	"softbox/internal/physics"
	"softbox/internal/renderer"
	"softbox/internal/softbox"
)

// app bundles the soft box, its control frame, and everything needed to
// drive one frame of simulation, input, and rendering.
type app struct {
	cfg  *config.Config
	box  *softbox.SoftBox
	ctrl *input.InputController

	rlCamera   rl.Camera3D
	orbitCam   *renderer.Camera
	boxRender  *renderer.BoxRenderer
	uiRender   *renderer.UIRenderer
	loop       *renderer.RenderLoop
	yaw, pitch float32
	paused     bool
	wireframe  bool
}

func newApp(cfg *config.Config) *app {
	roomHalf := physics.NewVec3(cfg.RoomHalfExtentX, cfg.RoomHalfExtentY, cfg.RoomHalfExtentZ)
	box := softbox.NewSoftBox(cfg.LatticeX, cfg.LatticeY, cfg.LatticeZ, roomHalf)

	box.ParticleMass = cfg.ParticleMass
	box.InternalSpringConstant = cfg.InternalSpringConstant
	box.InternalAttenuation = cfg.InternalAttenuation
	box.MovementAttenuation = cfg.MovementAttenuation
	box.ElasticCollisionFactor = cfg.ElasticCollisionFactor
	box.Frame.SpringConstant = cfg.FrameSpringConstant
	box.Frame.Attenuation = cfg.FrameAttenuation
	box.Frame.Size = 2.0
	box.Frame.Position = physics.NewVec3(0, 0, 0)

	half := box.Frame.Size / 2
	box.DistributeUniformly(softbox.AABB{
		Min: physics.NewVec3(-half, -half, -half),
		Max: physics.NewVec3(half, half, half),
	})

	rlCamera := rl.Camera3D{
		Position:   rl.NewVector3(0, 3, 10),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	orbitCam := renderer.NewCamera(
		physics.Vec3FromRaylib(rlCamera.Position),
		physics.Vec3FromRaylib(rlCamera.Target),
		physics.Vec3FromRaylib(rlCamera.Up),
	)

	boxRender := renderer.NewBoxRenderer()
	boxRender.SetCamera(orbitCam)

	return &app{
		cfg:       cfg,
		box:       box,
		ctrl:      input.NewInputController(),
		rlCamera:  rlCamera,
		orbitCam:  orbitCam,
		boxRender: boxRender,
		uiRender:  renderer.NewUIRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
		loop:      renderer.NewRenderLoop(),
		yaw:       cfg.InitialYaw,
		pitch:     cfg.InitialPitch,
		paused:    cfg.StartPaused,
	}
}

func (a *app) update(dt float64) {
	a.ctrl.UpdateFromRaylib()

	inputCfg := &input.InputConfig{
		MoveSpeed:        a.cfg.MoveSpeed,
		FrameMoveSpeed:   a.cfg.FrameMoveSpeed,
		MouseSensitivity: a.cfg.MouseSensitivity,
		ScreenWidth:      a.cfg.ScreenWidth,
		ScreenHeight:     a.cfg.ScreenHeight,
	}
	state := &input.SimulationState{
		Pause:     a.paused,
		Wireframe: a.wireframe,
		Yaw:       a.yaw,
		Pitch:     a.pitch,
	}

	frameControl := a.ctrl.ProcessInput(&a.rlCamera, state, inputCfg)

	a.paused = state.Pause
	a.wireframe = state.Wireframe
	a.yaw = state.Yaw
	a.pitch = state.Pitch
	a.boxRender.SetWireframe(a.wireframe)

	a.box.Frame.Position.X += float64(frameControl.TranslateX)
	a.box.Frame.Position.Y += float64(frameControl.TranslateY)
	a.box.Frame.Orientation.Z += float64(frameControl.Roll)

	if state.DisturbanceKicked {
		a.box.ApplyRandomDisturbance()
	}

	a.orbitCam.SetPosition(physics.Vec3FromRaylib(a.rlCamera.Position))
	a.orbitCam.SetTarget(physics.Vec3FromRaylib(a.rlCamera.Target))

	// Forward the tunable panel's slider values (bound to cfg) to the box.
	a.box.ParticleMass = a.cfg.ParticleMass
	a.box.InternalSpringConstant = a.cfg.InternalSpringConstant
	a.box.InternalAttenuation = a.cfg.InternalAttenuation
	a.box.MovementAttenuation = a.cfg.MovementAttenuation
	a.box.ElasticCollisionFactor = a.cfg.ElasticCollisionFactor
	a.box.Frame.SpringConstant = a.cfg.FrameSpringConstant
	a.box.Frame.Attenuation = a.cfg.FrameAttenuation

	if !a.paused {
		a.box.Update(dt)
	}
}

func (a *app) render(dt float64) {
	rl.ClearBackground(rl.NewColor(10, 10, 20, 255))

	rl.BeginMode3D(a.rlCamera)
	a.boxRender.Render(a.box)
	rl.DrawGrid(10, 1.0)
	rl.EndMode3D()

	a.uiRender.SetActualFPS(int(rl.GetFPS()))
	a.uiRender.SetTargetFPS(a.loop.GetTargetFPS())
	a.uiRender.SetFrameTime(dt)
	a.uiRender.SetPaused(a.paused)

	if a.uiRender.Render(a.cfg) {
		a.box.ApplyRandomDisturbance()
	}
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Soft Box")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	a := newApp(cfg)
	a.loop.SetTargetFPS(60)
	a.loop.SetUpdateCallback(a.update)
	a.loop.SetRenderCallback(a.render)
	a.loop.SetBeginCallback(rl.BeginDrawing)
	a.loop.SetEndCallback(rl.EndDrawing)
	a.loop.Start()

	for !rl.WindowShouldClose() {
		a.loop.RecordFrameTime(float64(rl.GetFrameTime()))
		a.loop.ExecuteFrame()
	}
	a.loop.Stop()
}
