// Package menu assembles navigator bars and paged item menus from
// factory-built buttons.
package menu

import "github.com/OpticalFlyer/peppy/action"

// Item is one entry of a paged menu.
type Item struct {
	Name    string
	Label   string
	Image   string
	Request action.Request
}

// Page splits a list of items into pages of rows*cols items.
type Page struct {
	items      []Item
	rows, cols int
	current    int
}

// NewPage returns the first page of items.
func NewPage(items []Item, rows, cols int) *Page {
	return &Page{items: items, rows: max(rows, 1), cols: max(cols, 1)}
}

// Size returns the number of items per page.
func (p *Page) Size() int {
	return p.rows * p.cols
}

// Len returns the total number of items.
func (p *Page) Len() int {
	return len(p.items)
}

// Pages returns the number of pages; an empty list still has one page.
func (p *Page) Pages() int {
	return max((len(p.items)+p.Size()-1)/p.Size(), 1)
}

// Current returns the index of the current page.
func (p *Page) Current() int {
	return p.current
}

// Items returns the items on the current page.
func (p *Page) Items() []Item {
	start := p.current * p.Size()
	end := min(start+p.Size(), len(p.items))
	if start >= end {
		return nil
	}
	return p.items[start:end]
}

// PageUp moves to the next page. It reports false on the last page.
func (p *Page) PageUp() bool {
	if p.current+1 >= p.Pages() {
		return false
	}
	p.current++
	return true
}

// PageDown moves to the previous page. It reports false on the first page.
func (p *Page) PageDown() bool {
	if p.current == 0 {
		return false
	}
	p.current--
	return true
}

// SelectPage jumps to the page holding the item at index.
func (p *Page) SelectPage(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	p.current = index / p.Size()
}

// LeftItemsNumber returns how many items are on earlier pages.
func (p *Page) LeftItemsNumber() int {
	return p.current * p.Size()
}

// RightItemsNumber returns how many items are on later pages.
func (p *Page) RightItemsNumber() int {
	return max(len(p.items)-(p.current+1)*p.Size(), 0)
}
