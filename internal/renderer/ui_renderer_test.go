package renderer

import (
	"testing"
)

// TestUIRendererCreation tests creating a UI renderer
func TestUIRendererCreation(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	if ui == nil {
		t.Fatal("Failed to create UI renderer")
	}

	w, h := ui.GetScreenDimensions()
	if w != 800 || h != 600 {
		t.Errorf("Screen dimensions incorrect: expected 800x600, got %dx%d", w, h)
	}
}

// TestUIText tests UI title text
func TestUIText(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	ui.SetTitle("Soft Box")
	if ui.GetTitle() != "Soft Box" {
		t.Error("Failed to set title")
	}
}

// TestUIControls tests UI control instructions
func TestUIControls(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	controls := ui.GetControlInstructions()
	if len(controls) < 3 {
		t.Error("Missing control instructions")
	}
}

// TestUIFPSDisplay tests FPS and frame time display
func TestUIFPSDisplay(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	ui.SetTargetFPS(60)
	ui.SetActualFPS(58)
	ui.SetFrameTime(0.017)

	if ui.GetTargetFPS() != 60 {
		t.Error("Failed to set target FPS")
	}
	if ui.GetActualFPS() != 58 {
		t.Error("Failed to set actual FPS")
	}
	if ui.GetFrameTime() != 0.017 {
		t.Error("Failed to set frame time")
	}
}

// TestUIPauseIndicator tests pause indicator
func TestUIPauseIndicator(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	if ui.IsPaused() {
		t.Error("Should not be paused initially")
	}

	ui.SetPaused(true)
	if !ui.IsPaused() {
		t.Error("Should be paused")
	}

	pauseText := ui.GetPauseText()
	if pauseText != "PAUSED (Press P to unpause)" {
		t.Errorf("Incorrect pause text: %s", pauseText)
	}
}

// TestUITextPositions tests text positioning
func TestUITextPositions(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	x, y := ui.GetTitlePosition()
	if x != 10 || y != 10 {
		t.Errorf("Title position incorrect: expected (10,10), got (%d,%d)", x, y)
	}

	x, y = ui.GetFPSPosition()
	if x != 600 || y != 10 {
		t.Errorf("FPS position incorrect: expected (600,10), got (%d,%d)", x, y)
	}

	x, y = ui.GetPausePosition()
	expectedX := 800/2 - 150
	expectedY := 600/2 - 10
	if x != expectedX || y != expectedY {
		t.Errorf("Pause position incorrect: expected (%d,%d), got (%d,%d)",
			expectedX, expectedY, x, y)
	}
}

// TestUIColors tests UI color settings
func TestUIColors(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	color := ui.GetTitleColor()
	if color.R != 0 || color.G != 255 || color.B != 0 {
		t.Error("Title color should be lime/green")
	}

	color = ui.GetDefaultTextColor()
	if color.R != 255 || color.G != 255 || color.B != 255 {
		t.Error("Default text color should be white")
	}

	color = ui.GetPauseColor()
	if color.R < 200 || color.G < 200 || color.B != 0 {
		t.Error("Pause color should be yellow")
	}
}

// TestUIFontSize tests font size settings
func TestUIFontSize(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	if ui.GetFontSize() != 20 {
		t.Errorf("Default font size should be 20, got %d", ui.GetFontSize())
	}

	ui.SetFontSize(24)
	if ui.GetFontSize() != 24 {
		t.Error("Failed to set font size")
	}
}

// TestGetFPSText checks the FPS/frame-time summary format.
func TestGetFPSText(t *testing.T) {
	ui := NewUIRenderer(800, 600)
	ui.SetTargetFPS(60)
	ui.SetActualFPS(59)
	ui.SetFrameTime(0.016)

	text := ui.GetFPSText()
	if text == "" {
		t.Error("expected non-empty FPS text")
	}
}

// Render itself performs live raygui/raylib drawing and requires an
// active window; it is exercised by hand via the host program, not by
// this package's unit tests.
