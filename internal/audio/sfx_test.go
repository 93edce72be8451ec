package audio

import "testing"

func TestNilBankIsSilent(t *testing.T) {
	var b *Bank
	b.Play(SoundOpen)
	b.LoadHero("assets/soundfx/hero", "male")
	if err := b.Load(SoundClose, "missing.ogg"); err != nil {
		t.Fatalf("nil bank Load should be a no-op, got %v", err)
	}
	if b.Has(SoundOpen) {
		t.Fatalf("nil bank has no sounds")
	}
}
