package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/pollo/config"
)

func TestSynthesizeLength(t *testing.T) {
	data := Synthesize(config.ToneDef{Frequency: 440, Duration: 0.5}, 44100)
	if want := 22050 * 4; len(data) != want {
		t.Fatalf("len = %d, want %d", len(data), want)
	}
}

func TestSynthesizeStereoAndFade(t *testing.T) {
	data := Synthesize(config.ToneDef{Frequency: 440, Duration: 0.1, Slide: -200}, 8000)

	for i := 0; i+4 <= len(data); i += 4 {
		l := binary.LittleEndian.Uint16(data[i:])
		r := binary.LittleEndian.Uint16(data[i+2:])
		if l != r {
			t.Fatalf("sample %d: left %d right %d", i/4, l, r)
		}
	}

	last := int16(binary.LittleEndian.Uint16(data[len(data)-4:]))
	if last > 200 || last < -200 {
		t.Fatalf("last sample %d not faded", last)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if data := Synthesize(config.ToneDef{Frequency: 440}, 44100); data != nil {
		t.Fatalf("zero duration produced %d bytes", len(data))
	}
	if data := Synthesize(config.ToneDef{Frequency: 440, Duration: 1}, 0); data != nil {
		t.Fatalf("zero sample rate produced %d bytes", len(data))
	}
}

func TestVolume(t *testing.T) {
	if got := volume(config.SoundMusic); got != config.Audio.DefaultMusicVol*0.3 {
		t.Fatalf("music volume = %v", got)
	}
	if got := volume(config.SoundJump); got != config.Audio.DefaultSFXVol {
		t.Fatalf("jump volume = %v", got)
	}
}
