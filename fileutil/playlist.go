package fileutil

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpticalFlyer/peppy/action"
)

// LoadPlaylist reads an .m3u playlist stored in folder. Relative entries
// are resolved against folder; comment lines are skipped.
func LoadPlaylist(folder, name string) ([]*action.FileEntry, error) {
	path := filepath.Join(folder, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) && !strings.Contains(line, "://") {
			line = filepath.Join(folder, line)
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", path, err)
	}
	return PlaylistEntries(urls), nil
}

// PlaylistEntries turns playlist URLs into audio file entries.
func PlaylistEntries(urls []string) []*action.FileEntry {
	entries := make([]*action.FileEntry, 0, len(urls))
	for i, u := range urls {
		entries = append(entries, &action.FileEntry{
			Index:    i,
			FileType: action.FileAudio,
			FileName: u,
			URL:      u,
			Folder:   filepath.Dir(u),
		})
	}
	return entries
}
