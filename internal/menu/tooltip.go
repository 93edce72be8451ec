package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TooltipData is the text of one tooltip.
type TooltipData struct {
	Lines []string
}

// Empty reports whether there is nothing to show.
func (t TooltipData) Empty() bool {
	return len(t.Lines) == 0
}

// Compare reports whether t and o have the same first line. Tooltips are
// identified by their first line only.
func (t TooltipData) Compare(o TooltipData) bool {
	if t.Empty() || o.Empty() {
		return t.Empty() && o.Empty()
	}
	return t.Lines[0] == o.Lines[0]
}

// Rasterizer turns tooltip text into an image.
type Rasterizer interface {
	Rasterize(tip TooltipData) *ebiten.Image
}

// TooltipCache keeps the last rendered tooltip and re-renders only when the
// first line changes.
type TooltipCache struct {
	raster Rasterizer
	data   TooltipData
	image  *ebiten.Image
	valid  bool
}

// NewTooltipCache returns an empty cache rendering through r.
func NewTooltipCache(r Rasterizer) *TooltipCache {
	return &TooltipCache{raster: r}
}

// Resolve returns the rendering for tip and whether it was rendered anew.
func (c *TooltipCache) Resolve(tip TooltipData) (*ebiten.Image, bool) {
	if c.valid && c.data.Compare(tip) {
		return c.image, false
	}
	c.data = tip
	c.image = c.raster.Rasterize(tip)
	c.valid = true
	return c.image, true
}

// Clear drops the cached rendering.
func (c *TooltipCache) Clear() {
	c.data = TooltipData{}
	c.image = nil
	c.valid = false
}

const tooltipMargin = 6

// debugTextRasterizer renders tooltips with the debug font on a solid box.
type debugTextRasterizer struct{}

// NewRasterizer returns the on-screen tooltip renderer.
func NewRasterizer() Rasterizer {
	return debugTextRasterizer{}
}

func (debugTextRasterizer) Rasterize(tip TooltipData) *ebiten.Image {
	w, h := tooltipBoxSize(tip.Lines)
	if w == 0 || h == 0 {
		return nil
	}
	img := ebiten.NewImage(w, h)
	img.Fill(colorTooltipBg)
	for i, line := range tip.Lines {
		ebitenutil.DebugPrintAt(img, line, tooltipMargin, tooltipMargin/2+i*textLineHeight)
	}
	return img
}

func tooltipBoxSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil() + 2*tooltipMargin; w > width {
			width = w
		}
	}
	return width, len(lines)*textLineHeight + tooltipMargin
}
