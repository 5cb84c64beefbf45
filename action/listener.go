package action

import (
	"errors"
	"fmt"
)

// ErrConfigurationMissing is returned when a required listener, option,
// label or colour is absent.
var ErrConfigurationMissing = errors.New("configuration missing")

// Listener reacts to a button action. The request carries whatever the
// action needs; listeners that expect a particular shape use As.
type Listener func(r Request)

// Map binds action keys to listeners. Screens pass a Map to their menus
// and may overwrite entries to reroute an action.
type Map map[string]Listener

// Get returns the listener bound to key.
func (m Map) Get(key string) (Listener, error) {
	l, ok := m[key]
	if !ok || l == nil {
		return nil, fmt.Errorf("listener %q: %w", key, ErrConfigurationMissing)
	}
	return l, nil
}

// Require checks that every key is bound.
func (m Map) Require(keys ...string) error {
	for _, k := range keys {
		if _, err := m.Get(k); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Func adapts a function without arguments to a Listener.
func Func(f func()) Listener {
	return func(Request) { f() }
}
