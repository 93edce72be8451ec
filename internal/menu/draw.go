package menu

import (
	"image"
	"image/color"
	"strconv"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorPanel      = color.RGBA{20, 20, 36, 220}
	colorBorder     = color.RGBA{120, 110, 80, 255}
	colorSlot       = color.RGBA{40, 40, 60, 255}
	colorSlotHover  = color.RGBA{70, 70, 110, 255}
	colorDisabled   = color.RGBA{0, 0, 0, 160}
	colorAttention  = color.RGBA{220, 180, 40, 255}
	colorTooltipBg  = color.RGBA{30, 30, 60, 255}
	colorBarHP      = color.RGBA{170, 30, 30, 255}
	colorBarMP      = color.RGBA{30, 60, 170, 255}
	colorBarXP      = color.RGBA{170, 140, 30, 255}
	colorTabActive  = color.RGBA{80, 70, 40, 255}
	colorButton     = color.RGBA{60, 50, 30, 255}
	colorButtonText = color.RGBA{230, 220, 180, 255}
)

const (
	iconsPerRow     = 16
	textCharWidth   = 6
	textLineHeight  = 16
	panelPadding    = 8
	borderThickness = 1
)

// painter draws panel chrome and icons.
type painter struct {
	icons    *ebiten.Image
	iconSize int
	mouse    image.Point
}

func drawFilledRect(dst *ebiten.Image, r Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawRectBorder(dst *ebiten.Image, r Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), borderThickness, clr, false)
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s) * textCharWidth
}

func (pt *painter) frame(dst *ebiten.Image, r Rect) {
	drawFilledRect(dst, r, colorPanel)
	drawRectBorder(dst, r, colorBorder)
}

func (pt *painter) label(dst *ebiten.Image, s string, x, y int) {
	if s == "" {
		return
	}
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

func (pt *painter) centered(dst *ebiten.Image, s string, r Rect) {
	if s == "" {
		return
	}
	ebitenutil.DebugPrintAt(dst, s, r.X+(r.W-textWidth(s))/2, r.Y+(r.H-textLineHeight)/2)
}

func (pt *painter) button(dst *ebiten.Image, s string, r Rect) {
	drawFilledRect(dst, r, colorButton)
	drawRectBorder(dst, r, colorBorder)
	pt.centered(dst, s, r)
}

// slot draws an empty slot background, highlighted under the pointer.
func (pt *painter) slot(dst *ebiten.Image, r Rect) {
	bg := colorSlot
	if r.Contains(pt.mouse) {
		bg = colorSlotHover
	}
	drawFilledRect(dst, r, bg)
}

// icon draws atlas entry id with its top-left corner at (x, y). The atlas is
// a grid of iconsPerRow columns.
func (pt *painter) icon(dst *ebiten.Image, id, x, y int) {
	if pt.icons == nil || id < 0 {
		return
	}
	sx := (id % iconsPerRow) * pt.iconSize
	sy := (id / iconsPerRow) * pt.iconSize
	src := pt.icons.SubImage(image.Rect(sx, sy, sx+pt.iconSize, sy+pt.iconSize)).(*ebiten.Image)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(src, opts)
}

// quantity prints a stack count in the slot's bottom-right corner.
func (pt *painter) quantity(dst *ebiten.Image, n int, r Rect) {
	if n <= 1 {
		return
	}
	s := strconv.Itoa(n)
	ebitenutil.DebugPrintAt(dst, s, r.X+r.W-textWidth(s)-1, r.Y+r.H-textLineHeight+2)
}

func (pt *painter) bar(dst *ebiten.Image, r Rect, cur, max int, clr color.Color) {
	drawFilledRect(dst, r, colorSlot)
	if max > 0 && cur > 0 {
		fill := r
		fill.W = r.W * min(cur, max) / max
		drawFilledRect(dst, fill, clr)
	}
	drawRectBorder(dst, r, colorBorder)
}

// gridSlots lays out n slots of size px in rows of cols starting at (x, y).
func gridSlots(x, y, cols, n, size int) []Rect {
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: x + (i%cols)*size, Y: y + (i/cols)*size, W: size, H: size}
	}
	return out
}

// slotAt returns the index of the slot containing p, or -1.
func slotAt(slots []Rect, p image.Point) int {
	for i, r := range slots {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}
