package menu

import (
	"image/color"
	"log"
	"path/filepath"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/fileutil"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
	"github.com/OpticalFlyer/peppy/ui"
)

// PlaylistProvider returns the URLs of the player's live playlist.
type PlaylistProvider func() []string

// FileMenu is an ItemMenu over folder listings and playlists.
type FileMenu struct {
	*ItemMenu

	util *fileutil.Util

	changeFolderListeners []func(string)
	playFileListeners     []action.Listener
}

// NewFileMenu builds the menu and shows entries.
func NewFileMenu(factory *ui.Factory, util *fileutil.Util, entries []*action.FileEntry, bounds layout.Rectangle, rows, cols int, bgr color.Color) *FileMenu {
	m := &FileMenu{util: util}
	m.ItemMenu = NewItemMenu(factory, "file.menu", bounds, rows, cols, bgr, m.selectEntry)
	m.Reload(fileItems(entries))
	return m
}

// AddChangeFolderListener registers fn for the folder shown after every
// folder change.
func (m *FileMenu) AddChangeFolderListener(fn func(string)) {
	m.changeFolderListeners = append(m.changeFolderListeners, fn)
}

// AddPlayFileListener registers l for audio entries selected by the user.
// The request passed to l is an *action.FileEntry.
func (m *FileMenu) AddPlayFileListener(l action.Listener) {
	if l != nil {
		m.playFileListeners = append(m.playFileListeners, l)
	}
}

// ChangeFolder lists folder and shows its first page.
func (m *FileMenu) ChangeFolder(folder string) error {
	entries, err := m.util.List(folder)
	if err != nil {
		return err
	}
	m.util.CurrentFolder = folder
	m.Reload(fileItems(entries))
	for _, fn := range m.changeFolderListeners {
		fn(folder)
	}
	return nil
}

// SwitchToUserHome shows the user's home folder.
func (m *FileMenu) SwitchToUserHome(action.Request) {
	m.switchTo(m.util.UserHome)
}

// SwitchToRoot shows the file system root.
func (m *FileMenu) SwitchToRoot(action.Request) {
	m.switchTo(m.util.Root)
}

// SwitchToParentFolder shows the parent of the current folder.
func (m *FileMenu) SwitchToParentFolder(action.Request) {
	m.switchTo(m.util.Parent(m.util.CurrentFolder))
}

func (m *FileMenu) switchTo(folder string) {
	if folder == "" {
		return
	}
	if err := m.ChangeFolder(folder); err != nil {
		log.Printf("file menu: %v", err)
	}
}

func (m *FileMenu) selectEntry(r action.Request) {
	entry, err := action.As[*action.FileEntry](r)
	if err != nil {
		log.Printf("file menu: %v", err)
		return
	}
	switch entry.FileType {
	case action.FileFolder:
		if err := m.ChangeFolder(entry.URL); err != nil {
			log.Printf("file menu: %v", err)
		}
	case action.FilePlaylist:
		entries, err := fileutil.LoadPlaylist(entry.Folder, entry.FileName)
		if err != nil {
			log.Printf("file menu: %v", err)
			return
		}
		m.Reload(fileItems(entries))
	default:
		for _, l := range m.playFileListeners {
			l(entry)
		}
	}
}

func fileItems(entries []*action.FileEntry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		image := icons.AudioFile
		switch e.FileType {
		case action.FileFolder:
			image = icons.Folder
		case action.FilePlaylist:
			image = icons.Playlist
		}
		items = append(items, Item{
			Name:    e.URL,
			Label:   filepath.Base(e.FileName),
			Image:   image,
			Request: e,
		})
	}
	return items
}
