package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mp3"))
	touch(t, filepath.Join(dir, "A.flac"))
	touch(t, filepath.Join(dir, "cover.jpg"))
	touch(t, filepath.Join(dir, ".hidden.mp3"))
	touch(t, filepath.Join(dir, "mix.m3u"))
	touch(t, filepath.Join(dir, "Zeta", "x.mp3"))
	touch(t, filepath.Join(dir, "alpha", "y.mp3"))

	u := &Util{Root: "/"}
	got, err := u.List(dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []struct {
		name string
		typ  action.FileType
	}{
		{"alpha", action.FileFolder},
		{"Zeta", action.FileFolder},
		{"A.flac", action.FileAudio},
		{"b.mp3", action.FileAudio},
		{"mix.m3u", action.FilePlaylist},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries; want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].FileName != w.name || got[i].FileType != w.typ || got[i].Index != i {
			t.Errorf("entry %d = %+v; want %s (%s)", i, got[i], w.name, w.typ)
		}
		if got[i].URL != filepath.Join(dir, w.name) {
			t.Errorf("entry %d url = %q", i, got[i].URL)
		}
	}
}

func TestListMissingFolder(t *testing.T) {
	u := &Util{}
	if _, err := u.List(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error")
	}
}

func TestParent(t *testing.T) {
	u := &Util{Root: "/"}
	tests := []struct{ in, want string }{
		{"/music/jazz", "/music"},
		{"/music/jazz/", "/music"},
		{"/", "/"},
		{"music", "/"},
	}
	for _, tt := range tests {
		if got := u.Parent(tt.in); got != tt.want {
			t.Errorf("Parent(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewPicksStartFolder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audio.MusicFolder = "/music"
	if u := New(cfg); u.CurrentFolder != "/music" {
		t.Errorf("got %q; want music folder", u.CurrentFolder)
	}

	cfg.FilePlayback.CurrentFolder = "/music/rock"
	if u := New(cfg); u.CurrentFolder != "/music/rock" {
		t.Errorf("got %q; want saved folder", u.CurrentFolder)
	}
}

func TestLoadPlaylist(t *testing.T) {
	dir := t.TempDir()
	data := "#EXTM3U\n#EXTINF:123,Artist - One\none.mp3\n\n/abs/two.flac\nhttp://radio.example/stream\n"
	if err := os.WriteFile(filepath.Join(dir, "list.m3u"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadPlaylist(dir, "list.m3u")
	if err != nil {
		t.Fatalf("LoadPlaylist failed: %v", err)
	}
	want := []string{filepath.Join(dir, "one.mp3"), "/abs/two.flac", "http://radio.example/stream"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries; want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].URL != w || got[i].Index != i || got[i].FileType != action.FileAudio {
			t.Errorf("entry %d = %+v; want %s", i, got[i], w)
		}
	}
}

func TestLoadPlaylistMissing(t *testing.T) {
	if _, err := LoadPlaylist(t.TempDir(), "none.m3u"); err == nil {
		t.Error("expected error")
	}
}
