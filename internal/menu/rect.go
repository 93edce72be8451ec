package menu

import (
	"image"
	"strings"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r. Bounds are inclusive-exclusive.
func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// alignFactors maps an alignment tag to the fraction of the extra screen
// space a panel moves by, horizontally and vertically.
var alignFactors = map[string][2]float64{
	"topleft":     {0, 0},
	"top":         {0.5, 0},
	"topright":    {1, 0},
	"left":        {0, 0.5},
	"center":      {0.5, 0.5},
	"right":       {1, 0.5},
	"bottomleft":  {0, 1},
	"bottom":      {0.5, 1},
	"bottomright": {1, 1},
}

// alignRect re-anchors r, authored for a layoutW x layoutH screen, onto a
// screenW x screenH screen. Unknown tags behave like topleft.
func alignRect(r Rect, alignment string, layoutW, layoutH, screenW, screenH int) Rect {
	f, ok := alignFactors[strings.ToLower(alignment)]
	if !ok {
		return r
	}
	r.X += int(f[0] * float64(screenW-layoutW))
	r.Y += int(f[1] * float64(screenH-layoutH))
	return r
}
