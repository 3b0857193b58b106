package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Character sounds
	SoundJump
	SoundThrow
	SoundCollect
	SoundHurt
	SoundWalking
	// Combat sounds
	SoundHit
	SoundSplash
	// Outcome sounds
	SoundGameOver
	SoundVictory
	// Music
	SoundMusic
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// ToneDef describes the synthesized fallback for a sound that has no file
type ToneDef struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Slide     float64 // Hz per second, negative falls
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Paths             map[SoundID]string
	Tones             map[SoundID]ToneDef
	VolumeMultipliers map[SoundID]float64
	Loops             map[SoundID]bool
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Paths: map[SoundID]string{
			SoundJump:     "audio/jump.wav",
			SoundThrow:    "audio/throw.wav",
			SoundCollect:  "audio/collect.wav",
			SoundHurt:     "audio/hurt.wav",
			SoundWalking:  "audio/walking.wav",
			SoundHit:      "audio/hit.wav",
			SoundSplash:   "audio/splash.wav",
			SoundGameOver: "audio/game_over.wav",
			SoundVictory:  "audio/victory.wav",
			SoundMusic:    "audio/music.ogg",
		},
		Tones: map[SoundID]ToneDef{
			SoundJump:     {Frequency: 440, Duration: 0.15, Slide: 1200},
			SoundThrow:    {Frequency: 660, Duration: 0.10, Slide: -800},
			SoundCollect:  {Frequency: 990, Duration: 0.12, Slide: 600},
			SoundHurt:     {Frequency: 220, Duration: 0.25, Slide: -300},
			SoundWalking:  {Frequency: 90, Duration: 0.20},
			SoundHit:      {Frequency: 160, Duration: 0.15, Slide: -200},
			SoundSplash:   {Frequency: 300, Duration: 0.20, Slide: -900},
			SoundGameOver: {Frequency: 330, Duration: 1.2, Slide: -200},
			SoundVictory:  {Frequency: 523, Duration: 1.2, Slide: 300},
			SoundMusic:    {Frequency: 196, Duration: 2.0},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWalking: 0.4,
			SoundMusic:   0.3,
		},
		Loops: map[SoundID]bool{
			SoundWalking: true,
			SoundMusic:   true,
		},
	}
}
