package scene

import "github.com/vovakirdan/blockshoot/internal/core"

// Canvas is the drawing surface a scene renders into, in world units.
// Frontends implement it for terminal cells and for a desktop window.
type Canvas interface {
	// Bounds returns the drawable area.
	Bounds() core.RectF

	// FillRect fills r with c at the given opacity (0..1).
	FillRect(r core.RectF, c core.Color, alpha float64)

	// FrameRect outlines r.
	FrameRect(r core.RectF, c core.Color)

	// FillCircle fills a circle.
	FillCircle(circle core.Circle, c core.Color)

	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, s string, c core.Color)

	// TextCentered draws s centered on (cx, cy).
	TextCentered(cx, cy float64, s string, c core.Color)
}
