// Package audio plays short sound effects fire-and-forget on Ebiten's audio
// context.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// Sound names shared with the menus.
const (
	SoundOpen  = "open"
	SoundClose = "close"
)

// heroSounds are the per-appearance effects loaded after a save is restored.
var heroSounds = []string{"hit", "die", "level_up"}

// Bank holds decoded sounds by name. A nil *Bank is valid and silent, which is
// how the game runs when audio is disabled.
type Bank struct {
	ctx    *audio.Context
	sounds map[string][]byte
}

// NewBank returns a bank on the process audio context, creating it at
// sampleRate on first use.
func NewBank(sampleRate int) *Bank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Bank{ctx: ctx, sounds: make(map[string][]byte)}
}

// Load decodes an Ogg Vorbis file and stores it under name.
func (b *Bank) Load(name, path string) error {
	if b == nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sound %s: %w", path, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("decode sound %s: %w", path, err)
	}
	b.sounds[name] = pcm
	return nil
}

// LoadHero (re)loads the hero's appearance-specific sounds from dir, e.g.
// dir/male_hit.ogg for base "male". Missing files are logged and skipped.
func (b *Bank) LoadHero(dir, base string) {
	if b == nil || base == "" {
		return
	}
	for _, s := range heroSounds {
		path := filepath.Join(dir, base+"_"+s+".ogg")
		if err := b.Load("hero_"+s, path); err != nil {
			log.Printf("audio: %v", err)
		}
	}
}

// Play starts the named sound. Unknown names are ignored.
func (b *Bank) Play(name string) {
	if b == nil {
		return
	}
	pcm, ok := b.sounds[name]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(pcm).Play()
}

// Has reports whether name is loaded.
func (b *Bank) Has(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.sounds[name]
	return ok
}
