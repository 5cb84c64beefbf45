package config

import "github.com/OpticalFlyer/peppy/layout"

// Playback modes of the file browser.
const (
	PlaybackAudio    = "audio"
	PlaybackPlaylist = "playlist"
)

// Colour names in the [colors] section.
const (
	ColorWebBgr    = "web_bgr"
	ColorDark      = "dark"
	ColorDarkLight = "dark_light"
	ColorMedium    = "medium"
	ColorBright    = "bright"
	ColorContrast  = "contrast"
	ColorMute      = "mute"
)

// Config is the player configuration stored in config.toml.
type Config struct {
	Version      int               `toml:"version"`
	Usage        Usage             `toml:"usage"`
	Screen       Screen            `toml:"screen"`
	Colors       map[string]string `toml:"colors"`
	Labels       map[string]string `toml:"labels"`
	Audio        Audio             `toml:"audio"`
	FilePlayback FilePlayback      `toml:"file_playback"`
}

// Usage switches optional features on and off.
type Usage struct {
	UseWeb         bool `toml:"use_web"`
	UseTouchscreen bool `toml:"use_touchscreen"`
	UseMouse       bool `toml:"use_mouse"`
}

// Screen is the display size in pixels.
type Screen struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Audio holds player settings the UI reads.
type Audio struct {
	MusicFolder string `toml:"music_folder"`
}

// FilePlayback remembers where the file browser was left.
type FilePlayback struct {
	CurrentFolder           string `toml:"current_folder"`
	CurrentFilePlaylist     string `toml:"current_file_playlist"`
	CurrentFilePlaybackMode string `toml:"current_file_playback_mode"`
	CurrentFile             string `toml:"current_file"`
	CurrentTrackTime        string `toml:"current_track_time"`
}

// ScreenRect returns the full screen rectangle.
func (c *Config) ScreenRect() layout.Rectangle {
	return layout.Rect(0, 0, c.Screen.Width, c.Screen.Height)
}

// DefaultConfig returns a Config for a 480x320 touchscreen.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Usage: Usage{
			UseWeb:         false,
			UseTouchscreen: true,
			UseMouse:       true,
		},
		Screen: Screen{
			Width:  480,
			Height: 320,
		},
		Colors: map[string]string{
			ColorWebBgr:    "0,38,42",
			ColorDark:      "0,70,75",
			ColorDarkLight: "20,90,100",
			ColorMedium:    "70,140,150",
			ColorBright:    "160,190,210",
			ColorContrast:  "255,190,120",
			ColorMute:      "230,160,140",
		},
		Labels: map[string]string{
			"genre":    "Genre",
			"artist":   "Artist",
			"album":    "Album",
			"title":    "Title",
			"date":     "Date",
			"type":     "Type",
			"composer": "Composer",
			"wifi":     "Wi-Fi",
			"playlist": "Playlist",
		},
		FilePlayback: FilePlayback{
			CurrentFilePlaybackMode: PlaybackAudio,
		},
	}
}
