// Package action holds the well-known action keys, the listener map that
// screens hand to their menus and the typed requests passed to listeners.
package action

// Action keys used in listener maps and as button image names.
const (
	GoLeftPage  = "go-left-page"
	GoRightPage = "go-right-page"
	GoBack      = "go-back"
	GoRoot      = "go-root"
	GoUserHome  = "go-user-home"
	GoToParent  = "go-to-parent"
	GoPlayer    = "go-player"

	KeyHome        = "home"
	KeyBack        = "back"
	KeyPlayer      = "player"
	KeyParent      = "parent"
	KeyNetwork     = "network"
	KeySetup       = "setup"
	KeyPlayPause   = "play-pause"
	KeyCallback    = "callback"
	KeyRefresh     = "refresh"
	KeySort        = "sort"
	KeyKeyboardKey = "keyboard-key"
	KeyABC         = "abc"
	KeyPlayFile    = "play-file"
	KeyRoot        = "root"
	KeyUserHome    = "user-home"
	KeySelect      = "select"
	KeyPageUp      = "page-up"
	KeyPageDown    = "page-down"

	Collection = "collection"
)
