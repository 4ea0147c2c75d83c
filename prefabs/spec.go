package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/sprite"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SoldierSpec describes a soldier type: its sheet, sequences, sounds and
// attack/death constants.
type SoldierSpec struct {
	Name            string           `yaml:"name"`
	Sheet           string           `yaml:"sheet"`
	Cols            int              `yaml:"cols"`
	Rows            int              `yaml:"rows"`
	Scale           float64          `yaml:"scale"`
	FPS             float64          `yaml:"fps"`
	Footprint       float64          `yaml:"footprint"`
	ChromaKey       ChromaKeySpec    `yaml:"chroma_key"`
	DefaultSequence string           `yaml:"default_sequence"`
	AttackSequence  string           `yaml:"attack_sequence"`
	Sequences       map[string][]int `yaml:"sequences"`
	Sounds          SoundsSpec       `yaml:"sounds"`
	Lifecycle       LifecycleSpec    `yaml:"lifecycle"`
}

type ChromaKeySpec struct {
	Tolerance int         `yaml:"tolerance"`
	Colors    []YAMLColor `yaml:"colors"`
}

type SoundsSpec struct {
	RefDistance float64     `yaml:"ref_distance"`
	Attack      AudioSpec   `yaml:"attack"`
	Death       []AudioSpec `yaml:"death"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type LifecycleSpec struct {
	WalkSequence      string  `yaml:"walk_sequence"`
	DeathSequence     string  `yaml:"death_sequence"`
	InitialTimerMaxMs float64 `yaml:"initial_timer_max_ms"`
	IntervalMinMs     float64 `yaml:"interval_min_ms"`
	IntervalJitterMs  float64 `yaml:"interval_jitter_ms"`
	BurstMin          int     `yaml:"burst_min"`
	BurstMax          int     `yaml:"burst_max"`
	RerollInterval    bool    `yaml:"reroll_interval"`
}

func LoadSoldierSpec(filename string) (*SoldierSpec, error) {
	spec, err := LoadSpec[SoldierSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// SheetConfig converts the prefab into the animator configuration.
func (s *SoldierSpec) SheetConfig() sprite.SheetConfig {
	seqs := make(map[string][]int, len(s.Sequences))
	for name, frames := range s.Sequences {
		seqs[name] = append([]int(nil), frames...)
	}
	return sprite.SheetConfig{
		Cols:            s.Cols,
		Rows:            s.Rows,
		FPS:             s.FPS,
		Sequences:       seqs,
		DefaultSequence: s.DefaultSequence,
		AttackSequence:  s.AttackSequence,
	}
}

// LifecycleConfig converts the prefab into lifecycle constants, filling
// unset fields from the defaults.
func (s *SoldierSpec) LifecycleConfig() sprite.LifecycleConfig {
	cfg := sprite.DefaultLifecycleConfig()
	l := s.Lifecycle
	if l.WalkSequence != "" {
		cfg.WalkSequence = l.WalkSequence
	}
	if l.DeathSequence != "" {
		cfg.DeathSequence = l.DeathSequence
	}
	cfg.AttackSequence = s.SheetConfig().AttackName()
	if l.InitialTimerMaxMs > 0 {
		cfg.InitialTimerMaxMs = l.InitialTimerMaxMs
	}
	if l.IntervalMinMs > 0 {
		cfg.IntervalMinMs = l.IntervalMinMs
	}
	if l.IntervalJitterMs > 0 {
		cfg.IntervalJitterMs = l.IntervalJitterMs
	}
	if l.BurstMin > 0 {
		cfg.BurstMin = l.BurstMin
	}
	if l.BurstMax > 0 {
		cfg.BurstMax = l.BurstMax
	}
	cfg.RerollInterval = l.RerollInterval
	return cfg
}

// ChromaKeyConfig returns the background removal settings.
func (s *SoldierSpec) ChromaKeyConfig() sprite.ChromaKey {
	key := sprite.ChromaKey{Tolerance: s.ChromaKey.Tolerance}
	for _, c := range s.ChromaKey.Colors {
		if c.Color == nil {
			continue
		}
		r, g, b, _ := c.RGBA()
		key.Colors = append(key.Colors, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff})
	}
	return key
}

// Validate checks the sheet and the sequences the lifecycle depends on.
func (s *SoldierSpec) Validate() error {
	if s.Scale <= 0 {
		return fmt.Errorf("scale %v must be positive", s.Scale)
	}
	sheet := s.SheetConfig()
	if err := sheet.Validate(); err != nil {
		return err
	}
	lc := s.LifecycleConfig()
	for _, name := range []string{lc.WalkSequence, lc.AttackSequence, lc.DeathSequence} {
		if _, ok := sheet.Sequence(name); !ok {
			return fmt.Errorf("lifecycle sequence %q: %w", name, sprite.ErrUnknownSequence)
		}
	}
	if lc.BurstMax < lc.BurstMin {
		return fmt.Errorf("burst range %d..%d is empty", lc.BurstMin, lc.BurstMax)
	}
	return nil
}

// SceneSpec lays out a scene: which soldier prefab to spawn, how many, where,
// and the camera.
type SceneSpec struct {
	Name         string     `yaml:"name"`
	Soldier      string     `yaml:"soldier"`
	Count        int        `yaml:"count"`
	SpawnSpread  float64    `yaml:"spawn_spread"`
	SpawnOffsetZ float64    `yaml:"spawn_offset_z"`
	MaxCorpses   int        `yaml:"max_corpses"`
	Script       string     `yaml:"script"`
	Camera       CameraSpec `yaml:"camera"`
	Ground       GroundSpec `yaml:"ground"`
}

type CameraSpec struct {
	Radius       float64 `yaml:"radius"`
	Height       float64 `yaml:"height"`
	TargetY      float64 `yaml:"target_y"`
	FOV          float64 `yaml:"fov"`
	Near         float64 `yaml:"near"`
	Far          float64 `yaml:"far"`
	FogDensity   float64 `yaml:"fog_density"`
	MaxYawSpeed  float64 `yaml:"max_yaw_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
}

type GroundSpec struct {
	Size       int        `yaml:"size"`
	Background *YAMLColor `yaml:"background"`
	Grid       *YAMLColor `yaml:"grid"`
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(spec.Soldier) == "" {
		return nil, fmt.Errorf("prefabs: %s: scene does not name a soldier prefab", filename)
	}
	if spec.Count < 0 {
		return nil, fmt.Errorf("prefabs: %s: negative soldier count %d", filename, spec.Count)
	}
	return &spec, nil
}

// OrbitCamera builds the camera controller, keeping defaults for unset
// fields.
func (c CameraSpec) OrbitCamera() *common.OrbitCamera {
	cam := common.NewOrbitCamera()
	if c.Radius > 0 {
		cam.Radius = c.Radius
	}
	if c.Height != 0 {
		cam.Height = c.Height
	}
	if c.TargetY != 0 {
		cam.TargetY = c.TargetY
	}
	if c.MaxYawSpeed > 0 {
		cam.MaxYawSpeed = c.MaxYawSpeed
	}
	if c.Acceleration > 0 {
		cam.Acceleration = c.Acceleration
	}
	if c.Friction > 0 {
		cam.Friction = c.Friction
	}
	return cam
}

// YAMLColor accepts either a "#rrggbb[aa]" string or an {r, g, b, a} mapping.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		var m struct {
			R uint8  `yaml:"r"`
			G uint8  `yaml:"g"`
			B uint8  `yaml:"b"`
			A *uint8 `yaml:"a"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		a := uint8(255)
		if m.A != nil {
			a = *m.A
		}
		c.Color = color.NRGBA{R: m.R, G: m.G, B: m.B, A: a}
		return nil
	}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string or a mapping")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
