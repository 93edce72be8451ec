package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"emberhold/internal/character"
	"emberhold/internal/config"
	"emberhold/internal/items"
	"emberhold/internal/menu"
	"emberhold/internal/powers"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

// previewSizes are the screen resolutions the layout can be previewed at.
var previewSizes = [][2]int{
	{640, 480},
	{800, 600},
	{1280, 720},
	{1920, 1080},
}

var (
	panelColor    = color.RGBA{90, 140, 200, 255}
	selectedColor = color.RGBA{240, 200, 80, 255}
	screenColor   = color.RGBA{20, 20, 35, 255}
	frameColor    = color.RGBA{70, 70, 90, 255}
)

type viewer struct {
	menus      *menu.Manager
	layoutPath string
	sizeIndex  int
	selected   menu.PanelID
	sidebarTab int
	lastErr    string
}

const (
	tabInfo = iota
	tabPanels
)

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")
	itemTable, err := items.LoadItems(cfg.Data.Items)
	if err != nil {
		log.Printf("Warning: %v", err)
		itemTable = items.NewManager(nil)
	}
	powerTable, err := powers.LoadPowers(cfg.Data.Powers)
	if err != nil {
		log.Printf("Warning: %v", err)
		powerTable = powers.NewManager(nil)
	}

	layoutPath := cfg.UI.LayoutFile
	cfg.UI.LayoutFile = ""
	v := &viewer{
		menus: menu.NewManager(menu.Deps{
			Config: cfg,
			Stats:  character.NewStatBlock(cfg),
			Items:  itemTable,
			Powers: powerTable,
		}),
		layoutPath: layoutPath,
	}
	v.reload()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Emberhold Layout Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// reload re-reads the layout file so edits show without restarting.
func (v *viewer) reload() {
	v.lastErr = ""
	if err := v.menus.LoadLayout(v.layoutPath); err != nil {
		v.lastErr = err.Error()
	}
	size := previewSizes[v.sizeIndex]
	v.menus.Resize(size[0], size[1])
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabPanels
		} else {
			v.sidebarTab = tabInfo
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.sidebarTab = tabInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.sidebarTab = tabPanels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.reload()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.sizeIndex = (v.sizeIndex + 1) % len(previewSizes)
		v.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.sizeIndex--
		if v.sizeIndex < 0 {
			v.sizeIndex = len(previewSizes) - 1
		}
		v.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if v.selected < menu.PanelStash {
			v.selected++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if v.selected > menu.PanelHP {
			v.selected--
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	areaW := screenW - sidebarWidth - padding*3
	areaH := screenH - padding*2
	sidebarX := padding + areaW + padding

	v.drawPreview(screen, padding, padding, areaW, areaH)
	v.drawSidebar(screen, sidebarX, padding, sidebarWidth, areaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

// drawPreview scales the previewed screen into the given area and outlines
// every panel's on-screen rectangle.
func (v *viewer) drawPreview(screen *ebiten.Image, x, y, w, h int) {
	size := previewSizes[v.sizeIndex]
	scale := float32(w) / float32(size[0])
	if alt := float32(h) / float32(size[1]); alt < scale {
		scale = alt
	}
	pw := int(float32(size[0]) * scale)
	ph := int(float32(size[1]) * scale)
	ox := x + (w-pw)/2
	oy := y + (h-ph)/2

	drawFilledRect(screen, ox, oy, pw, ph, screenColor)
	drawRectBorder(screen, ox, oy, pw, ph, 2, frameColor)

	for id := menu.PanelHP; id <= menu.PanelStash; id++ {
		r := v.menus.Panel(id).Area()
		if r.Empty() {
			continue
		}
		clr := panelColor
		thickness := 1
		if id == v.selected {
			clr = selectedColor
			thickness = 2
		}
		rx := ox + int(float32(r.X)*scale)
		ry := oy + int(float32(r.Y)*scale)
		rw := int(float32(r.W) * scale)
		rh := int(float32(r.H) * scale)
		drawRectBorder(screen, rx, ry, rw, rh, thickness, clr)
		if id == v.selected || v.sidebarTab == tabPanels {
			ebitenutil.DebugPrintAt(screen, id.String(), rx+3, ry+2)
		}
	}
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, frameColor)

	tabHeight := 24
	drawSidebarTabs(screen, x, y, w, tabHeight, v.sidebarTab)
	row := y + tabHeight + 12

	if v.sidebarTab == tabPanels {
		for id := menu.PanelHP; id <= menu.PanelStash; id++ {
			p := v.menus.Panel(id)
			marker := "  "
			if id == v.selected {
				marker = "> "
			}
			line := fmt.Sprintf("%s%-10s %-11s", marker, id.String(), p.Alignment)
			ebitenutil.DebugPrintAt(screen, line, x+12, row)
			row += 16
		}
		return
	}

	size := previewSizes[v.sizeIndex]
	p := v.menus.Panel(v.selected)
	area := p.Area()
	lines := []string{
		fmt.Sprintf("Layout: %s", v.layoutPath),
		fmt.Sprintf("Screen: %dx%d", size[0], size[1]),
		"",
		fmt.Sprintf("Panel: %s", v.selected),
		fmt.Sprintf("Alignment: %s", p.Alignment),
		fmt.Sprintf("Window: %d,%d %dx%d", p.Window.X, p.Window.Y, p.Window.W, p.Window.H),
		fmt.Sprintf("On screen: %d,%d %dx%d", area.X, area.Y, area.W, area.H),
	}
	if v.lastErr != "" {
		lines = append(lines, "", "Error:", v.lastErr)
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}

	row += 8
	ebitenutil.DebugPrintAt(screen, "Keys:", x+12, row)
	row += 16
	ebitenutil.DebugPrintAt(screen, "Left/Right: screen size", x+12, row)
	row += 16
	ebitenutil.DebugPrintAt(screen, "Up/Down: panel  R: reload", x+12, row)
}

func drawSidebarTabs(screen *ebiten.Image, x, y, w, h int, active int) {
	tabW := w / 2
	infoColor := color.RGBA{40, 40, 55, 255}
	panelsColor := color.RGBA{40, 40, 55, 255}
	if active == tabInfo {
		infoColor = color.RGBA{70, 70, 95, 255}
	} else {
		panelsColor = color.RGBA{70, 70, 95, 255}
	}
	drawFilledRect(screen, x, y, tabW, h, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, h, panelsColor)
	drawRectBorder(screen, x, y, w, h, 2, frameColor)
	ebitenutil.DebugPrintAt(screen, "Info (1)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Panels (2)", x+tabW+10, y+6)
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
