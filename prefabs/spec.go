package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlayerFile is the prefab holding the dog's tuning.
const PlayerFile = "player.yaml"

type SheetSpec struct {
	// Image is a PNG path on disk. Empty means the generated placeholder.
	Image  string `yaml:"image"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Cols   int    `yaml:"cols"`
	Rows   int    `yaml:"rows"`
}

// FrameSize returns the size of one sheet cell.
func (s SheetSpec) FrameSize() (float64, float64) {
	if s.Cols <= 0 || s.Rows <= 0 {
		return 0, 0
	}
	return float64(s.Width) / float64(s.Cols), float64(s.Height) / float64(s.Rows)
}

type PlayerSpec struct {
	Name        string    `yaml:"name"`
	GameWidth   float64   `yaml:"game_width"`
	GameHeight  float64   `yaml:"game_height"`
	MaxSpeed    float64   `yaml:"max_speed"`
	Weight      float64   `yaml:"weight"`
	JumpImpulse float64   `yaml:"jump_impulse"`
	AirControl  float64   `yaml:"air_control"`
	FPS         float64   `yaml:"fps"`
	Sheet       SheetSpec `yaml:"sheet"`
}

// DefaultPlayerSpec mirrors the embedded player.yaml.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:        "dog",
		GameWidth:   1280,
		GameHeight:  720,
		MaxSpeed:    10,
		Weight:      0.5,
		JumpImpulse: 20,
		AirControl:  0.5,
		FPS:         25,
		Sheet: SheetSpec{
			Width:  1800,
			Height: 2182,
			Cols:   9,
			Rows:   12,
		},
	}
}

var (
	ErrBadDimensions = errors.New("dimensions must be positive")
	ErrBadTuning     = errors.New("tuning out of range")
)

// Validate reports the first field that cannot drive a player.
func (s PlayerSpec) Validate() error {
	if s.GameWidth <= 0 || s.GameHeight <= 0 {
		return fmt.Errorf("game %vx%v: %w", s.GameWidth, s.GameHeight, ErrBadDimensions)
	}
	if s.Sheet.Width <= 0 || s.Sheet.Height <= 0 || s.Sheet.Cols <= 0 || s.Sheet.Rows <= 0 {
		return fmt.Errorf("sheet %dx%d (%dx%d cells): %w",
			s.Sheet.Width, s.Sheet.Height, s.Sheet.Cols, s.Sheet.Rows, ErrBadDimensions)
	}
	fw, fh := s.Sheet.FrameSize()
	if fw > s.GameWidth || fh > s.GameHeight {
		return fmt.Errorf("frame %.1fx%.1f larger than game %vx%v: %w", fw, fh, s.GameWidth, s.GameHeight, ErrBadDimensions)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("fps %v: %w", s.FPS, ErrBadTuning)
	}
	if s.MaxSpeed < 0 || s.Weight < 0 || s.JumpImpulse < 0 || s.AirControl < 0 {
		return fmt.Errorf("negative speed, weight, impulse or air control: %w", ErrBadTuning)
	}
	return nil
}

// ParsePlayerSpec decodes YAML over the defaults, so a file only needs the
// keys it changes.
func ParsePlayerSpec(data []byte) (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: unmarshal player spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: player spec: %w", err)
	}
	return spec, nil
}

// LoadPlayerSpec loads and validates a player prefab by name.
func LoadPlayerSpec(filename string) (PlayerSpec, error) {
	if filename == "" {
		filename = PlayerFile
	}
	data, err := Load(filename)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := ParsePlayerSpec(data)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("%s: %w", filename, err)
	}
	return spec, nil
}

// ReadPlayerSpec loads a player prefab from an explicit path on disk.
func ReadPlayerSpec(path string) (PlayerSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	spec, err := ParsePlayerSpec(data)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}
