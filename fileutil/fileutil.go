// Package fileutil lists folders and reads playlists for the file browser.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".wav":  true,
	".m4a":  true,
	".aac":  true,
	".ape":  true,
	".wv":   true,
	".opus": true,
}

var playlistExtensions = map[string]bool{
	".m3u":  true,
	".m3u8": true,
}

// IsAudio reports whether name has an audio file extension.
func IsAudio(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsPlaylist reports whether name has a playlist extension.
func IsPlaylist(name string) bool {
	return playlistExtensions[strings.ToLower(filepath.Ext(name))]
}

// Util tracks the browser's current folder and its anchors.
type Util struct {
	CurrentFolder string
	MusicFolder   string
	UserHome      string
	Root          string
}

// New returns a Util starting from the folder saved in cfg, falling back
// to the music folder and then the user's home directory.
func New(cfg *config.Config) *Util {
	home, err := os.UserHomeDir()
	if err != nil {
		home = string(filepath.Separator)
	}
	u := &Util{
		MusicFolder: cfg.Audio.MusicFolder,
		UserHome:    home,
		Root:        string(filepath.Separator),
	}
	switch {
	case cfg.FilePlayback.CurrentFolder != "":
		u.CurrentFolder = cfg.FilePlayback.CurrentFolder
	case u.MusicFolder != "":
		u.CurrentFolder = u.MusicFolder
	default:
		u.CurrentFolder = home
	}
	return u
}

// Parent returns the parent of folder, or folder itself at the root.
func (u *Util) Parent(folder string) string {
	p := filepath.Dir(filepath.Clean(folder))
	if p == "." {
		return u.Root
	}
	return p
}

// List returns the visible folders, audio files and playlists in folder.
// Folders come first; each group is sorted case-insensitively.
func (u *Util) List(folder string) ([]*action.FileEntry, error) {
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}

	var folders, files []*action.FileEntry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entry := &action.FileEntry{
			FileName: name,
			URL:      filepath.Join(folder, name),
			Folder:   folder,
		}
		switch {
		case de.IsDir():
			entry.FileType = action.FileFolder
			folders = append(folders, entry)
		case IsPlaylist(name):
			entry.FileType = action.FilePlaylist
			files = append(files, entry)
		case IsAudio(name):
			entry.FileType = action.FileAudio
			files = append(files, entry)
		}
	}

	byName := func(s []*action.FileEntry) {
		sort.SliceStable(s, func(i, j int) bool {
			return strings.ToLower(s[i].FileName) < strings.ToLower(s[j].FileName)
		})
	}
	byName(folders)
	byName(files)

	out := append(folders, files...)
	for i, e := range out {
		e.Index = i
	}
	return out, nil
}
