package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func newTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("spritesim_test_%d", time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestMemoryStore(t *testing.T) {
	s := NewStore(nil)
	if s.Persistent() {
		t.Fatalf("store without manager reported persistent")
	}
	if err := s.Save(&Settings{Scene: "x.yaml"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *Default() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	m := newTestManager(t)
	if m == nil {
		t.Skip("cannot create gdata manager")
	}
	s := NewStore(m)

	first, err := s.Load()
	if err != nil || *first != *Default() {
		t.Fatalf("fresh load %+v, %v", first, err)
	}

	want := &Settings{Scene: "warehouse.yaml", Volume: 3, Muted: true, CameraAngle: 1.5}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Scene != "warehouse.yaml" || got.Volume != 1 || !got.Muted || got.CameraAngle != 1.5 {
		t.Fatalf("loaded %+v", got)
	}
}
