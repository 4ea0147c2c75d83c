package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every sound is resampled to.
const SampleRate = 44100

var (
	mu       sync.RWMutex
	assetsFS fs.FS = os.DirFS("assets")
	pcmCache       = map[string][]byte{}

	contextOnce  sync.Once
	audioContext *audio.Context
)

// SetFS replaces the asset source, for example with os.DirFS of a -assets
// flag or an fstest.MapFS in tests.
func SetFS(fsys fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	assetsFS = fsys
	pcmCache = map[string][]byte{}
}

// SetDir reads assets from dir.
func SetDir(dir string) {
	SetFS(os.DirFS(dir))
}

// AudioContext returns the process-wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// LoadFile loads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	mu.RLock()
	fsys := assetsFS
	mu.RUnlock()
	return fs.ReadFile(fsys, clean)
}

// LoadImage decodes an image asset.
func LoadImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// ErrUnsupportedAudio is returned for sound files other than WAV, OGG and MP3.
var ErrUnsupportedAudio = errors.New("assets: unsupported audio format")

// LoadPCM decodes a WAV, OGG or MP3 asset into 16-bit stereo PCM at
// SampleRate. Results are cached per path.
func LoadPCM(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	mu.RLock()
	if pcm, ok := pcmCache[clean]; ok {
		mu.RUnlock()
		return pcm, nil
	}
	mu.RUnlock()

	b, err := LoadFile(clean)
	if err != nil {
		return nil, err
	}
	pcm, err := decodePCM(clean, b)
	if err != nil {
		return nil, fmt.Errorf("decode audio %q: %w", path, err)
	}

	mu.Lock()
	pcmCache[clean] = pcm
	mu.Unlock()
	return pcm, nil
}

func decodePCM(name string, b []byte) ([]byte, error) {
	r := bytes.NewReader(b)
	var stream io.Reader
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, r)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, r)
	default:
		return nil, ErrUnsupportedAudio
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// NewPlayer creates a player for a sound asset. Looping players restart from
// the beginning when they reach the end.
func NewPlayer(path string, loop bool) (*audio.Player, error) {
	pcm, err := LoadPCM(path)
	if err != nil {
		return nil, err
	}
	ctx := AudioContext()
	if !loop {
		return ctx.NewPlayerFromBytes(pcm), nil
	}
	return ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
