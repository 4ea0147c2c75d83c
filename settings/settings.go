// Package settings persists user preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user data directory.
	AppName = "spritesim"

	settingsObject   = "settings"
	settingsProperty = "user"
)

// Settings are the preferences restored at start-up. Flags override them.
type Settings struct {
	Scene       string  `yaml:"scene"`
	Volume      float64 `yaml:"volume"`
	Muted       bool    `yaml:"muted"`
	CameraAngle float64 `yaml:"camera_angle"`
}

func Default() *Settings {
	return &Settings{
		Scene:  "wolfenstein.yaml",
		Volume: 1,
	}
}

// Store reads and writes Settings. A Store without a manager keeps nothing
// and always loads the defaults.
type Store struct {
	manager *gdata.Manager
}

// Open returns a store backed by the user data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("settings: open %q: %w", appName, err)
	}
	return &Store{manager: m}, nil
}

// NewStore wraps an existing manager, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Persistent reports whether saves outlive the process.
func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}

// Load returns the saved settings, or the defaults when nothing was saved.
// Unset fields keep their defaults.
func (s *Store) Load() (*Settings, error) {
	out := Default()
	if !s.Persistent() || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return out, nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return out, fmt.Errorf("settings: load: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return Default(), fmt.Errorf("settings: unmarshal: %w", err)
	}
	out.clamp()
	return out, nil
}

// Save writes st. It is a no-op for a store without a manager.
func (s *Store) Save(st *Settings) error {
	if !s.Persistent() || st == nil {
		return nil
	}
	st.clamp()
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	log.Printf("settings: saved")
	return nil
}

func (st *Settings) clamp() {
	if st.Volume < 0 {
		st.Volume = 0
	}
	if st.Volume > 1 {
		st.Volume = 1
	}
}
