package config

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpticalFlyer/peppy/action"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Screen.Width != 480 || cfg.Screen.Height != 320 {
		t.Errorf("expected 480x320 screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.FilePlayback.CurrentFilePlaybackMode != PlaybackAudio {
		t.Errorf("expected audio playback mode, got %q", cfg.FilePlayback.CurrentFilePlaybackMode)
	}
	for _, name := range []string{ColorDarkLight, ColorContrast} {
		if _, err := cfg.Color(name); err != nil {
			t.Errorf("default color %s: %v", name, err)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Screen != DefaultConfig().Screen {
		t.Errorf("expected default screen, got %+v", cfg.Screen)
	}
}

func TestLoadFillsMissingOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[usage]
use_web = true

[colors]
dark_light = "1,2,3"

[labels]
genre = "Genres"

[file_playback]
current_folder = "/music/jazz"
current_file_playlist = "best.m3u"
current_file_playback_mode = "playlist"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Usage.UseWeb {
		t.Error("expected use_web to be true")
	}
	if cfg.Screen.Width != 480 {
		t.Errorf("expected default width, got %d", cfg.Screen.Width)
	}
	c, err := cfg.Color(ColorDarkLight)
	if err != nil || c != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("dark_light = %v, %v", c, err)
	}
	if _, err := cfg.Color(ColorContrast); err != nil {
		t.Errorf("contrast not filled from defaults: %v", err)
	}
	if l, _ := cfg.Label("genre"); l != "Genres" {
		t.Errorf("genre label = %q", l)
	}
	if l, _ := cfg.Label("artist"); l != "Artist" {
		t.Errorf("artist label = %q", l)
	}
	if cfg.FilePlayback.CurrentFilePlaybackMode != PlaybackPlaylist {
		t.Errorf("playback mode = %q", cfg.FilePlayback.CurrentFilePlaybackMode)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[usage\nuse_web = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.FilePlayback.CurrentFolder = "/media/usb"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file not cleaned up")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.FilePlayback.CurrentFolder != "/media/usb" {
		t.Errorf("current folder = %q", got.FilePlayback.CurrentFolder)
	}
}

func TestMissingOptions(t *testing.T) {
	cfg := DefaultConfig()

	if _, err := cfg.Color("nope"); !errors.Is(err, ErrConfigurationMissing) {
		t.Errorf("Color error = %v; want ErrConfigurationMissing", err)
	}
	if _, err := cfg.Label("nope"); !errors.Is(err, ErrConfigurationMissing) {
		t.Errorf("Label error = %v; want ErrConfigurationMissing", err)
	}
	if err := (action.Map{}).Require(action.KeyHome); !errors.Is(err, ErrConfigurationMissing) {
		t.Errorf("listener error = %v; want ErrConfigurationMissing", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "0,0,0", want: color.RGBA{0, 0, 0, 255}},
		{in: " 255, 128 ,7", want: color.RGBA{255, 128, 7, 255}},
		{in: "1,2", wantErr: true},
		{in: "1,2,256", wantErr: true},
		{in: "a,b,c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v; wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan *Config, 4)
	if err := Watch(ctx, path, func(c *Config) { changed <- c }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Usage.UseWeb = true
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if !got.Usage.UseWeb {
			t.Error("reloaded config does not carry the change")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}
