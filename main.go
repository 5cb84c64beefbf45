package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
	"github.com/OpticalFlyer/peppy/fileutil"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/ui"
	"github.com/OpticalFlyer/peppy/ui/screen"
)

// Peppy implements ebiten.Game interface.
type Peppy struct {
	ui        *ui.Controller
	debugMode bool

	cfg     *config.Config
	icons   *icons.Set
	util    *fileutil.Util
	reloads chan *config.Config

	// Touch state, one entry per finger on the screen
	touches map[ebiten.TouchID]touchPoint
}

func (p *Peppy) Update() error {
	select {
	case cfg := <-p.reloads:
		p.applyConfig(cfg)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.debugMode = !p.debugMode
		p.ui.Redraw()
	}

	p.handleTouchEvents()
	return p.ui.Update()
}

func (p *Peppy) Draw(screen *ebiten.Image) {
	redraw := p.ui.NeedsRedraw()
	p.ui.Draw(screen)
	if p.debugMode && redraw {
		p.ui.ShowDebugInfo(screen)
	}
}

func (p *Peppy) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.cfg.Screen.Width, p.cfg.Screen.Height
}

// listeners binds the actions handled outside the file browser. The
// player and the other screens are not part of this program, so they
// only log.
func (p *Peppy) listeners() action.Map {
	logAction := func(r action.Request) {
		log.Printf("action %s", r.Action())
	}
	return action.Map{
		action.KeyHome:  logAction,
		action.GoBack:   logAction,
		action.GoPlayer: logAction,
		action.KeyPlayFile: func(r action.Request) {
			e, err := action.As[*action.FileEntry](r)
			if err != nil {
				log.Print(err)
				return
			}
			p.cfg.FilePlayback.CurrentFile = e.FileName
			p.cfg.FilePlayback.CurrentTrackTime = ""
			log.Printf("play %s", e.URL)
		},
	}
}

func (p *Peppy) buildScreens() error {
	factory, err := ui.NewFactory(p.cfg, p.icons)
	if err != nil {
		return err
	}
	browser, err := screen.NewFileBrowser(factory, p.cfg, p.util, p.listeners(), nil)
	if err != nil {
		return err
	}
	browser.AddObservers(p.ui.UpdateObserver, p.ui.RedrawObserver)
	p.ui.AddScreen(screen.FileBrowserName, browser)
	return p.ui.SetScreen(screen.FileBrowserName)
}

// applyConfig rebuilds the screens for a configuration edited on disk.
// The browser keeps its folder; a config that fails to build is dropped.
func (p *Peppy) applyConfig(cfg *config.Config) {
	cfg.FilePlayback = p.cfg.FilePlayback
	cfg.Screen = p.cfg.Screen
	old := p.cfg
	p.cfg = cfg
	if err := p.buildScreens(); err != nil {
		log.Printf("config reload: %v", err)
		p.cfg = old
		return
	}
	log.Print("config reloaded")
}

func loadIcons(path string) *icons.Set {
	set := icons.Builtin()
	extra, err := icons.LoadShapefile(path)
	switch {
	case err == nil:
		set.Merge(extra)
		log.Printf("loaded %d icons from %s", len(extra.Names()), path)
	case !errors.Is(err, os.ErrNotExist):
		log.Printf("icons: %v", err)
	}
	return set
}

func main() {
	configPath := flag.String("config", "config.toml", "configuration file")
	iconsPath := flag.String("icons", "icons.shp", "shapefile with extra icons")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	app := &Peppy{
		ui:      ui.NewController(),
		cfg:     cfg,
		icons:   loadIcons(*iconsPath),
		util:    fileutil.New(cfg),
		reloads: make(chan *config.Config, 1),
	}
	if err := app.buildScreens(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = config.Watch(ctx, *configPath, func(c *config.Config) {
		select {
		case app.reloads <- c:
		default:
		}
	})
	if err != nil {
		log.Printf("config watcher: %v", err)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Peppy")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	if !cfg.Usage.UseMouse {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	runErr := ebiten.RunGame(app)
	cancel()
	if err := config.Save(*configPath, app.cfg); err != nil {
		log.Printf("save config: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
