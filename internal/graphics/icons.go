package graphics

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadIcons decodes the icon atlas, a PNG grid of square icons.
func LoadIcons(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon atlas: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon atlas %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// MustLoadIcons loads the icon atlas and terminates the process when it
// cannot, since no panel can draw without it.
func MustLoadIcons(path string) *ebiten.Image {
	icons, err := LoadIcons(path)
	if err != nil {
		log.Fatalf("graphics: %v", err)
	}
	return icons
}
