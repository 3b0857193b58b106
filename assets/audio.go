package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/automoto/pollo/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sounds plays the game's sounds through an ebiten audio context. It
// implements engine.SoundSink.
type Sounds struct {
	context *audio.Context
	fsys    fs.FS
	pcm     map[config.SoundID][]byte
	loops   map[config.SoundID]*audio.Player
	muted   bool
}

func NewSounds(ctx *audio.Context, fsys fs.FS) *Sounds {
	return &Sounds{
		context: ctx,
		fsys:    fsys,
		pcm:     make(map[config.SoundID][]byte),
		loops:   make(map[config.SoundID]*audio.Player),
	}
}

// Preload decodes every configured sound. A sound without a readable file
// gets its synthesized tone instead.
func (s *Sounds) Preload() {
	for id := range config.Sound.Tones {
		s.load(id)
	}
	for id := range config.Sound.Paths {
		s.load(id)
	}
}

func (s *Sounds) load(id config.SoundID) []byte {
	if data, ok := s.pcm[id]; ok {
		return data
	}

	data, err := s.decode(config.Sound.Paths[id])
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: %v", err)
		}
		tone, ok := config.Sound.Tones[id]
		if !ok {
			return nil
		}
		data = Synthesize(tone, s.context.SampleRate())
	}

	s.pcm[id] = data
	return data
}

func (s *Sounds) decode(path string) ([]byte, error) {
	if path == "" || s.fsys == nil {
		return nil, fs.ErrNotExist
	}

	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(s.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(s.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

func (s *Sounds) Play(id config.SoundID) {
	if s.muted {
		return
	}
	data := s.load(id)
	if len(data) == 0 {
		return
	}
	player := s.context.NewPlayerFromBytes(data)
	player.SetVolume(volume(id))
	player.Play()
}

func (s *Sounds) StartLoop(id config.SoundID) {
	if _, ok := s.loops[id]; ok {
		return
	}
	data := s.load(id)
	if len(data) == 0 {
		return
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := s.context.NewPlayer(loop)
	if err != nil {
		log.Printf("Warning: loop %d: %v", id, err)
		return
	}
	player.SetVolume(volume(id))
	if !s.muted {
		player.Play()
	}
	s.loops[id] = player
}

func (s *Sounds) StopLoop(id config.SoundID) {
	player, ok := s.loops[id]
	if !ok {
		return
	}
	_ = player.Close()
	delete(s.loops, id)
}

// StopAll closes every running loop, for scene changes.
func (s *Sounds) StopAll() {
	for id := range s.loops {
		s.StopLoop(id)
	}
}

// SetMuted pauses running loops and drops effects while muted.
func (s *Sounds) SetMuted(muted bool) {
	s.muted = muted
	for _, player := range s.loops {
		if muted {
			player.Pause()
		} else {
			player.Play()
		}
	}
}

func (s *Sounds) Muted() bool { return s.muted }

func volume(id config.SoundID) float64 {
	base := config.Audio.DefaultSFXVol
	if config.Sound.Loops[id] {
		base = config.Audio.DefaultMusicVol
	}
	if m, ok := config.Sound.VolumeMultipliers[id]; ok {
		base *= m
	}
	return base
}

// Synthesize renders a sine tone as 16-bit little-endian stereo PCM, the
// format ebiten's audio players expect. The pitch slides linearly and the
// last tenth fades out to avoid a click.
func Synthesize(tone config.ToneDef, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	fade := n / 10
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := tone.Frequency + tone.Slide*t
		if freq < 0 {
			freq = 0
		}
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 0.3
		if rest := n - i; fade > 0 && rest < fade {
			amp *= float64(rest) / float64(fade)
		}
		v := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
