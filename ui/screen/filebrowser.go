// Package screen assembles full-screen layouts out of menus and
// navigators.
package screen

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
	"github.com/OpticalFlyer/peppy/fileutil"
	"github.com/OpticalFlyer/peppy/layout"
	"github.com/OpticalFlyer/peppy/ui"
	"github.com/OpticalFlyer/peppy/ui/menu"
)

// FileBrowserName is the name the file browser registers under.
const FileBrowserName = "file.browser"

const (
	percentTopHeight    = 14.0625
	percentBottomHeight = 16.5
	percentTitleFont    = 66.66

	fileMenuRows = 3
	fileMenuCols = 3
)

var fileBrowserKeys = []string{
	action.KeyHome, action.GoBack, action.GoPlayer, action.KeyPlayFile,
}

// FileBrowser shows the current folder or playlist with a title line on
// top and the navigator bar below.
type FileBrowser struct {
	*ui.Panel

	Layout    *layout.BorderLayout
	Title     *ui.DynamicText
	FileMenu  *menu.FileMenu
	Navigator *menu.Navigator

	cfg  *config.Config
	util *fileutil.Util
	mode string
}

// NewFileBrowser builds the screen. The paging and folder entries of
// listeners (go-left-page, go-right-page, go-user-home, go-root,
// go-to-parent) are rebound to the screen's file menu. playlist may be
// nil.
func NewFileBrowser(factory *ui.Factory, cfg *config.Config, util *fileutil.Util, listeners action.Map, playlist menu.PlaylistProvider) (*FileBrowser, error) {
	if err := listeners.Require(fileBrowserKeys...); err != nil {
		return nil, fmt.Errorf("file browser: %w", err)
	}
	dark, err := cfg.Color(config.ColorDark)
	if err != nil {
		return nil, fmt.Errorf("file browser: %w", err)
	}
	contrast, err := cfg.Color(config.ColorContrast)
	if err != nil {
		return nil, fmt.Errorf("file browser: %w", err)
	}
	darkLight, err := cfg.Color(config.ColorDarkLight)
	if err != nil {
		return nil, fmt.Errorf("file browser: %w", err)
	}

	bounds := cfg.ScreenRect()
	s := &FileBrowser{
		Panel:  ui.NewPanel(FileBrowserName, bounds),
		Layout: layout.NewBorderLayout(bounds),
		cfg:    cfg,
		util:   util,
	}
	s.Bgr = color.Black
	s.Layout.SetPercentConstraints(percentTopHeight, percentBottomHeight, 0, 0)

	s.mode = cfg.FilePlayback.CurrentFilePlaybackMode
	if s.mode == "" {
		s.mode = config.PlaybackAudio
		cfg.FilePlayback.CurrentFilePlaybackMode = s.mode
	}

	title, entries := s.content(playlist)

	top := s.Layout.Top
	fontSize := int(float64(top.Height) * percentTitleFont / 100)
	s.Title = factory.CreateDynamicText("file.browser.title", top, dark, contrast, fontSize)
	s.Title.SetText(title)

	s.FileMenu = menu.NewFileMenu(factory, util, entries, s.Layout.Center, fileMenuRows, fileMenuCols, dark)
	s.FileMenu.AddChangeFolderListener(s.Title.SetText)
	s.FileMenu.AddChangeFolderListener(func(folder string) {
		cfg.FilePlayback.CurrentFolder = folder
	})
	s.FileMenu.AddPlayFileListener(listeners[action.KeyPlayFile])

	listeners[action.GoLeftPage] = s.FileMenu.PageDown
	listeners[action.GoRightPage] = s.FileMenu.PageUp
	listeners[action.GoUserHome] = s.FileMenu.SwitchToUserHome
	listeners[action.GoRoot] = s.FileMenu.SwitchToRoot
	listeners[action.GoToParent] = s.FileMenu.SwitchToParentFolder

	s.Navigator, err = menu.NewNavigator(factory, s.navigatorBounds(), listeners, darkLight)
	if err != nil {
		return nil, fmt.Errorf("file browser: %w", err)
	}
	s.FileMenu.AddLeftNumberListener(s.Navigator.LeftButton.ChangeLabel)
	s.FileMenu.AddRightNumberListener(s.Navigator.RightButton.ChangeLabel)
	page := s.FileMenu.Page()
	s.Navigator.LeftButton.ChangeLabel(strconv.Itoa(page.LeftItemsNumber()))
	s.Navigator.RightButton.ChangeLabel(strconv.Itoa(page.RightItemsNumber()))

	s.AddComponent(s.Title)
	s.AddComponent(s.FileMenu)
	s.AddComponent(s.Navigator)
	return s, nil
}

// Mode returns the playback mode the screen was built for.
func (s *FileBrowser) Mode() string {
	return s.mode
}

// content returns the title and the entries to show for the current mode.
func (s *FileBrowser) content(playlist menu.PlaylistProvider) (string, []*action.FileEntry) {
	fp := s.cfg.FilePlayback
	if s.mode == config.PlaybackPlaylist {
		title := fp.CurrentFolder + string(os.PathSeparator) + fp.CurrentFilePlaylist
		var urls []string
		if playlist != nil {
			urls = playlist()
		}
		if len(urls) > 0 {
			return title, fileutil.PlaylistEntries(urls)
		}
		entries, err := fileutil.LoadPlaylist(fp.CurrentFolder, fp.CurrentFilePlaylist)
		if err != nil {
			log.Printf("file browser: %v", err)
		}
		return title, entries
	}

	entries, err := s.util.List(s.util.CurrentFolder)
	if err != nil {
		log.Printf("file browser: %v", err)
		s.util.CurrentFolder = s.util.UserHome
		if entries, err = s.util.List(s.util.CurrentFolder); err != nil {
			log.Printf("file browser: %v", err)
		}
	}
	return s.util.CurrentFolder, entries
}

// navigatorBounds closes the gap the percent rounding leaves between the
// file menu and the navigator.
func (s *FileBrowser) navigatorBounds() layout.Rectangle {
	top, center := s.Layout.Top, s.Layout.Center
	height := s.Layout.Bounds().Height

	b := s.Layout.Bottom
	b.Height = height - (top.Height + center.Height + 2)
	b.Y = top.Height + center.Height + 1
	if height == 320 {
		b.Height++
		b.Y--
	}
	s.Layout.Bottom = b
	return b
}

// AddObservers connects every widget of the screen to the controller.
func (s *FileBrowser) AddObservers(update ui.UpdateObserver, redraw ui.RedrawObserver) {
	s.Title.SetUpdateObserver(update)
	s.FileMenu.AddObservers(update, redraw)
	s.Navigator.AddObservers(update, redraw)
}

// ClickableRect returns the area below the title that reacts to taps.
func (s *FileBrowser) ClickableRect() layout.Rectangle {
	b := s.Bounds()
	top := s.Title.Bounds().Height
	return layout.Rect(b.X, b.Y+top, b.Width, b.Height-top)
}

// Exit hides the screen and remembers the folder it was showing.
func (s *FileBrowser) Exit() {
	if s.mode == config.PlaybackAudio {
		s.cfg.FilePlayback.CurrentFolder = s.util.CurrentFolder
	}
	s.SetVisible(false)
}
