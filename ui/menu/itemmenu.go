package menu

import (
	"image/color"
	"log"
	"strconv"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/layout"
	"github.com/OpticalFlyer/peppy/ui"
)

// ItemMenu shows one page of items as a grid of buttons.
type ItemMenu struct {
	*ui.Panel

	factory    *ui.Factory
	page       *Page
	rows, cols int
	bgr        color.Color
	onSelect   action.Listener

	leftListeners  []func(string)
	rightListeners []func(string)
	buttons        []*ui.Button

	update ui.UpdateObserver
	redraw ui.RedrawObserver
}

// NewItemMenu returns an empty menu; onSelect receives the request of the
// item whose button was released.
func NewItemMenu(factory *ui.Factory, name string, bounds layout.Rectangle, rows, cols int, bgr color.Color, onSelect action.Listener) *ItemMenu {
	return &ItemMenu{
		Panel:    ui.NewPanel(name, bounds),
		factory:  factory,
		page:     NewPage(nil, rows, cols),
		rows:     max(rows, 1),
		cols:     max(cols, 1),
		bgr:      bgr,
		onSelect: onSelect,
	}
}

// Page returns the page state backing the menu.
func (m *ItemMenu) Page() *Page {
	return m.page
}

// Buttons returns the buttons of the current page.
func (m *ItemMenu) Buttons() []*ui.Button {
	return m.buttons
}

// AddLeftNumberListener registers fn for the number of items on earlier
// pages.
func (m *ItemMenu) AddLeftNumberListener(fn func(string)) {
	m.leftListeners = append(m.leftListeners, fn)
}

// AddRightNumberListener registers fn for the number of items on later
// pages.
func (m *ItemMenu) AddRightNumberListener(fn func(string)) {
	m.rightListeners = append(m.rightListeners, fn)
}

// AddObservers installs the screen observers on the item buttons,
// including those of pages built later.
func (m *ItemMenu) AddObservers(update ui.UpdateObserver, redraw ui.RedrawObserver) {
	m.update = update
	m.redraw = redraw
	for _, b := range m.buttons {
		m.AddButtonObservers(b, update, redraw)
	}
}

// Reload replaces the items and shows the first page.
func (m *ItemMenu) Reload(items []Item) {
	m.page = NewPage(items, m.rows, m.cols)
	m.rebuild()
}

// SelectItem shows the page holding the item at index.
func (m *ItemMenu) SelectItem(index int) {
	m.page.SelectPage(index)
	m.rebuild()
}

// PageUp shows the next page. It has the Listener signature so it can be
// bound to a paging button.
func (m *ItemMenu) PageUp(action.Request) {
	if m.page.PageUp() {
		m.rebuild()
	}
}

// PageDown shows the previous page.
func (m *ItemMenu) PageDown(action.Request) {
	if m.page.PageDown() {
		m.rebuild()
	}
}

func (m *ItemMenu) rebuild() {
	m.Clear()
	m.buttons = nil

	grid := layout.NewGridLayout(m.Bounds())
	grid.SetPixelConstraints(m.rows, m.cols, 1, 1)
	for _, item := range m.page.Items() {
		c, err := grid.Next()
		if err != nil {
			log.Printf("menu %s: %v", m.Name(), err)
			break
		}
		req := item.Request
		b := m.factory.CreateTextButton(item.Name, item.Image, item.Label, c, func(action.Request) {
			if m.onSelect != nil {
				m.onSelect(req)
			}
		}, m.bgr)
		m.AddComponent(b)
		m.buttons = append(m.buttons, b)
		if m.update != nil {
			m.AddButtonObservers(b, m.update, m.redraw)
		}
	}

	m.notifyNumbers()
	if m.redraw != nil {
		m.redraw()
	}
}

func (m *ItemMenu) notifyNumbers() {
	left := strconv.Itoa(m.page.LeftItemsNumber())
	right := strconv.Itoa(m.page.RightItemsNumber())
	for _, fn := range m.leftListeners {
		fn(left)
	}
	for _, fn := range m.rightListeners {
		fn(right)
	}
}
