// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Tube     TubeConfig     `yaml:"tube"`
	Motion   MotionConfig   `yaml:"motion"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// TubeConfig holds the body mesh generation parameters.
type TubeConfig struct {
	SamplesPerSegment int     `yaml:"samples_per_segment"`
	RingSegments      int     `yaml:"ring_segments"`
	MaxRadius         float32 `yaml:"max_radius"`
	HeadRoundness     float32 `yaml:"head_roundness"`
	TailSharpness     float32 `yaml:"tail_sharpness"`
	BellyAmount       float32 `yaml:"belly_amount"`
	BellyFrequency    float32 `yaml:"belly_frequency"`
	AttachmentStep    int     `yaml:"attachment_step"`
}

// MotionConfig holds the centerline animation settings.
type MotionConfig struct {
	PointCount     int     `yaml:"point_count"`
	Spacing        float32 `yaml:"spacing"`
	Speed          float32 `yaml:"speed"`
	TurnRate       float32 `yaml:"turn_rate"`
	WanderStrength float32 `yaml:"wander_strength"`
	Bounds         float32 `yaml:"bounds"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Tube: TubeConfig{
			SamplesPerSegment: 8,
			RingSegments:      16,
			MaxRadius:         0.5,
			HeadRoundness:     0.6,
			TailSharpness:     2.2,
			BellyAmount:       0.15,
			BellyFrequency:    1.0,
			AttachmentStep:    4,
		},
		Motion: MotionConfig{
			PointCount:     10,
			Spacing:        0.5,
			Speed:          1.5,
			TurnRate:       2.0,
			WanderStrength: 0.8,
			Bounds:         6.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
