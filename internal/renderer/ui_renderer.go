package renderer

import (
	"fmt"

	"github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"softbox/internal/config"
)

// UIColor represents an RGB color for UI elements
type UIColor struct {
	R, G, B, A uint8
}

// UIRenderer tracks the tunable panel's layout and the diagnostic text
// drawn alongside it. Its Render method performs real immediate-mode
// drawing and must run inside an active raylib window; everything else is
// plain layout arithmetic so it can be exercised without one.
type UIRenderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int

	title     string
	targetFPS int
	actualFPS int
	frameTime float64
	paused    bool
}

// NewUIRenderer creates a new UI renderer for the given screen size.
func NewUIRenderer(screenWidth, screenHeight int) *UIRenderer {
	return &UIRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "Soft Box",
	}
}

// GetScreenDimensions returns the screen dimensions.
func (ui *UIRenderer) GetScreenDimensions() (int, int) {
	return ui.screenWidth, ui.screenHeight
}

// SetTitle sets the UI title.
func (ui *UIRenderer) SetTitle(title string) {
	ui.title = title
}

// GetTitle returns the UI title.
func (ui *UIRenderer) GetTitle() string {
	return ui.title
}

// GetControlInstructions returns the control instruction lines.
func (ui *UIRenderer) GetControlInstructions() []string {
	return []string{
		"Right-click + Mouse to look, W,A,S,D,Q,E to move",
		"Arrow keys translate the frame, [ and ] roll it",
		"P to pause, R for a random kick, F to toggle wireframe",
	}
}

// SetTargetFPS sets the target FPS.
func (ui *UIRenderer) SetTargetFPS(fps int) {
	ui.targetFPS = fps
}

// GetTargetFPS returns the target FPS.
func (ui *UIRenderer) GetTargetFPS() int {
	return ui.targetFPS
}

// SetActualFPS sets the actual FPS.
func (ui *UIRenderer) SetActualFPS(fps int) {
	ui.actualFPS = fps
}

// GetActualFPS returns the actual FPS.
func (ui *UIRenderer) GetActualFPS() int {
	return ui.actualFPS
}

// SetFrameTime sets the frame time.
func (ui *UIRenderer) SetFrameTime(time float64) {
	ui.frameTime = time
}

// GetFrameTime returns the frame time.
func (ui *UIRenderer) GetFrameTime() float64 {
	return ui.frameTime
}

// SetPaused sets the pause state.
func (ui *UIRenderer) SetPaused(paused bool) {
	ui.paused = paused
}

// IsPaused returns the pause state.
func (ui *UIRenderer) IsPaused() bool {
	return ui.paused
}

// GetPauseText returns the pause indicator text.
func (ui *UIRenderer) GetPauseText() string {
	return "PAUSED (Press P to unpause)"
}

// GetTitlePosition returns the title position.
func (ui *UIRenderer) GetTitlePosition() (int, int) {
	return 10, 10
}

// GetPausePosition returns the pause indicator position.
func (ui *UIRenderer) GetPausePosition() (int, int) {
	return ui.screenWidth/2 - 150, ui.screenHeight/2 - 10
}

// GetFPSPosition returns the FPS display position.
func (ui *UIRenderer) GetFPSPosition() (int, int) {
	return ui.screenWidth - 200, 10
}

// GetControlPosition returns the position for control instruction at the
// given index.
func (ui *UIRenderer) GetControlPosition(index int) (int, int) {
	return 10, ui.screenHeight - 100 + index*22
}

// GetTunablePanelPosition returns the top-left corner of the tunable
// slider panel.
func (ui *UIRenderer) GetTunablePanelPosition() (int, int) {
	return ui.screenWidth - 320, 100
}

// GetTitleColor returns the title color.
func (ui *UIRenderer) GetTitleColor() UIColor {
	return UIColor{R: 0, G: 255, B: 0, A: 255}
}

// GetDefaultTextColor returns the default text color.
func (ui *UIRenderer) GetDefaultTextColor() UIColor {
	return UIColor{R: 255, G: 255, B: 255, A: 255}
}

// GetPauseColor returns the pause indicator color.
func (ui *UIRenderer) GetPauseColor() UIColor {
	return UIColor{R: 255, G: 255, B: 0, A: 255}
}

// GetFontSize returns the font size.
func (ui *UIRenderer) GetFontSize() int {
	return ui.fontSize
}

// SetFontSize sets the font size.
func (ui *UIRenderer) SetFontSize(size int) {
	ui.fontSize = size
}

// GetFPSText returns formatted FPS/frame-time text.
func (ui *UIRenderer) GetFPSText() string {
	return fmt.Sprintf("FPS: %d / %d  (%.3fs)", ui.actualFPS, ui.targetFPS, ui.frameTime)
}

// tunableSlider names a slider, its bound value, and its range, letting
// Render iterate a fixed panel layout without repeating widget code per
// field.
type tunableSlider struct {
	label      string
	value      *float64
	min, max   float64
}

// tunableSliders enumerates the tunables named in the external interface,
// bound directly to cfg's fields.
func tunableSliders(cfg *config.Config) []tunableSlider {
	return []tunableSlider{
		{"Particle Mass", &cfg.ParticleMass, 0.001, 1000},
		{"Internal Spring k", &cfg.InternalSpringConstant, 0.01, 100},
		{"Internal Damping", &cfg.InternalAttenuation, 0, 100},
		{"Frame Spring k", &cfg.FrameSpringConstant, 0.1, 100},
		{"Frame Damping", &cfg.FrameAttenuation, 0, 20},
		{"Drag", &cfg.MovementAttenuation, 0, 10},
		{"Restitution", &cfg.ElasticCollisionFactor, 0, 1},
	}
}

// Render draws the tunable slider panel, diagnostic text, and a random
// disturbance button using raygui. It must run inside an active raylib
// drawing context (between rl.BeginDrawing/EndDrawing). It reports
// whether the disturbance button was pressed this frame.
func (ui *UIRenderer) Render(cfg *config.Config) (disturbPressed bool) {
	titleX, titleY := ui.GetTitlePosition()
	rl.DrawText(ui.title, int32(titleX), int32(titleY), int32(ui.fontSize), ui.GetTitleColor().toRaylib())

	for i, line := range ui.GetControlInstructions() {
		x, y := ui.GetControlPosition(i)
		rl.DrawText(line, int32(x), int32(y), 16, ui.GetDefaultTextColor().toRaylib())
	}

	fpsX, fpsY := ui.GetFPSPosition()
	rl.DrawText(ui.GetFPSText(), int32(fpsX), int32(fpsY), 18, ui.GetDefaultTextColor().toRaylib())

	if ui.paused {
		x, y := ui.GetPausePosition()
		rl.DrawText(ui.GetPauseText(), int32(x), int32(y), 24, ui.GetPauseColor().toRaylib())
	}

	panelX, panelY := ui.GetTunablePanelPosition()
	for i, s := range tunableSliders(cfg) {
		y := float32(panelY + i*40)
		label := fmt.Sprintf("%s: %.3f", s.label, *s.value)
		result := float64(raygui.Slider(
			rl.Rectangle{X: float32(panelX), Y: y, Width: 260, Height: 20},
			label, "", float32(*s.value), float32(s.min), float32(s.max),
		))
		*s.value = result
	}

	disturbY := float32(panelY + len(tunableSliders(cfg))*40 + 20)
	disturbPressed = raygui.Button(
		rl.Rectangle{X: float32(panelX), Y: disturbY, Width: 260, Height: 30},
		"Random Disturbance",
	)

	return disturbPressed
}

// toRaylib converts a UIColor to raylib's color type.
func (c UIColor) toRaylib() rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
