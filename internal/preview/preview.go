// Package preview holds the zoom arithmetic for the on-screen preview.
// The scale is a purely visual transform; export resolution is fixed
// elsewhere and never affected by it.
package preview

import "cvstudio/internal/cv"

const (
	// ZoomStep is the increment for one zoom-in/out action.
	ZoomStep = 0.1
	// MinScale and MaxScale bound manual zoom.
	MinScale = 0.2
	MaxScale = 2.0
)

// FitScale computes the zoom factor at which the full A4 page fits the
// given viewport, never upscaling past 100%. A degenerate viewport
// renders at native size.
func FitScale(viewportW, viewportH float64) float64 {
	if viewportW <= 0 || viewportH <= 0 {
		return 1
	}
	scaleX := viewportW / float64(cv.A4WidthPx)
	scaleY := viewportH / float64(cv.A4HeightPx)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale > 1 {
		return 1
	}
	return scale
}

// ZoomIn returns the next larger scale, capped at MaxScale.
func ZoomIn(scale float64) float64 {
	next := scale + ZoomStep
	if next > MaxScale {
		return MaxScale
	}
	return next
}

// ZoomOut returns the next smaller scale, floored at MinScale.
func ZoomOut(scale float64) float64 {
	next := scale - ZoomStep
	if next < MinScale {
		return MinScale
	}
	return next
}
