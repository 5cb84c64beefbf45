package action

import (
	"errors"
	"fmt"
)

// ErrStateShapeMismatch is returned when a listener receives a request of
// a different type than it handles.
var ErrStateShapeMismatch = errors.New("action: unexpected request type")

// Request is the parameter object handed to a Listener.
type Request interface {
	// Action returns the key of the action that produced the request.
	Action() string
}

// As converts r to the concrete request type T.
func As[T Request](r Request) (T, error) {
	t, ok := r.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, got %T", ErrStateShapeMismatch, zero, r)
	}
	return t, nil
}

// ButtonState describes the button that fired an action.
type ButtonState struct {
	Name     string
	KeyAlias string
	Index    int
	Label    string
}

func (s *ButtonState) Action() string { return s.Name }

// ABCEntry asks the ABC (alphabet index) screen to open.
type ABCEntry struct {
	Title    string
	Visible  bool
	Callback Listener
}

func (*ABCEntry) Action() string { return KeyABC }

// KeyboardEntry asks the on-screen keyboard to open.
type KeyboardEntry struct {
	Title    string
	Visible  bool
	Callback Listener
}

func (*KeyboardEntry) Action() string { return KeyKeyboardKey }

// NewABCEntry builds an ABC entry request. The entry screen stays hidden
// until the keyboard screen makes it visible.
func NewABCEntry(title string, callback Listener) *ABCEntry {
	return &ABCEntry{Title: title, Visible: false, Callback: callback}
}

// NewKeyboardEntry builds a keyboard entry request.
func NewKeyboardEntry(title string, callback Listener) *KeyboardEntry {
	return &KeyboardEntry{Title: title, Visible: false, Callback: callback}
}

// FileType classifies a FileEntry.
type FileType int

const (
	FileAudio FileType = iota
	FileFolder
	FilePlaylist
)

func (t FileType) String() string {
	switch t {
	case FileAudio:
		return "audio"
	case FileFolder:
		return "folder"
	case FilePlaylist:
		return "playlist"
	}
	return "unknown"
}

// FileEntry is one item of a folder listing or a playlist.
type FileEntry struct {
	Index    int
	FileType FileType
	FileName string
	URL      string
	Folder   string
}

func (*FileEntry) Action() string { return KeyPlayFile }
