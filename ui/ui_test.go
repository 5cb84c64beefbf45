package ui

import (
	"image/color"
	"testing"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()
	f, err := NewFactory(config.DefaultConfig(), icons.Builtin())
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	return f
}

func TestPanelKeepsInsertionOrder(t *testing.T) {
	p := NewPanel("root", layout.Rect(0, 0, 100, 100))
	a := NewButton("a", "", layout.Rect(0, 0, 10, 10))
	b := NewButton("b", "", layout.Rect(10, 0, 10, 10))
	c := NewButton("c", "", layout.Rect(20, 0, 10, 10))

	p.AddComponent(a)
	p.AddComponent(b)
	p.AddComponent(c)
	p.AddComponent(a) // duplicates are allowed

	names := func() []string {
		var out []string
		for _, comp := range p.Components() {
			out = append(out, comp.Name())
		}
		return out
	}
	if got := names(); len(got) != 4 || got[0] != "a" || got[1] != "b" || got[2] != "c" || got[3] != "a" {
		t.Fatalf("order = %v", got)
	}
	if b.GetParent() != Container(p) {
		t.Error("AddComponent did not set parent")
	}

	p.RemoveComponent(b)
	if got := names(); len(got) != 3 || got[0] != "a" || got[1] != "c" {
		t.Errorf("after remove = %v", got)
	}
	if b.GetParent() != nil {
		t.Error("RemoveComponent left parent set")
	}
}

func TestSetVisibleDoesNotCascade(t *testing.T) {
	p := NewPanel("root", layout.Rect(0, 0, 100, 100))
	b := NewButton("b", "", layout.Rect(0, 0, 10, 10))
	p.AddComponent(b)

	p.SetVisible(false)
	if !b.IsVisible() {
		t.Error("hiding the panel hid its child")
	}
	if HitTest(p, 5, 5) != nil {
		t.Error("hidden panel still hit")
	}
}

func TestHitTestTopmost(t *testing.T) {
	p := NewPanel("root", layout.Rect(0, 0, 100, 100))
	under := NewButton("under", "", layout.Rect(0, 0, 50, 50))
	over := NewButton("over", "", layout.Rect(25, 25, 50, 50))
	nested := NewPanel("nested", layout.Rect(60, 60, 40, 40))
	deep := NewButton("deep", "", layout.Rect(70, 70, 10, 10))
	nested.AddComponent(deep)
	p.AddComponent(under)
	p.AddComponent(over)
	p.AddComponent(nested)

	tests := []struct {
		x, y int
		want string
	}{
		{10, 10, "under"},
		{30, 30, "over"},
		{65, 65, "over"},
		{75, 75, "deep"},
		{95, 95, ""},
		{200, 200, ""},
	}
	for _, tt := range tests {
		hit := HitTest(p, tt.x, tt.y)
		got := ""
		if hit != nil {
			got = hit.Name()
		}
		if got != tt.want {
			t.Errorf("HitTest(%d,%d) = %q; want %q", tt.x, tt.y, got, tt.want)
		}
	}

	over.SetVisible(false)
	if hit := HitTest(p, 30, 30); hit == nil || hit.Name() != "under" {
		t.Errorf("hidden button still hit: %v", hit)
	}
}

func TestButtonPressRelease(t *testing.T) {
	b := NewButton("home", action.KeyHome, layout.Rect(0, 0, 10, 10))
	var events []string
	b.AddPressListener(func(r action.Request) { events = append(events, "press:"+r.Action()) })
	b.AddReleaseListener(func(r action.Request) { events = append(events, "release:"+r.Action()) })
	b.SetObservers(
		func(c Component) { events = append(events, "update:"+c.Name()) },
		func() { events = append(events, "redraw") },
	)

	if !b.HandleInput(5, 5, true) {
		t.Fatal("press inside not handled")
	}
	if !b.Selected() {
		t.Error("button not selected after press")
	}
	b.HandleInput(5, 5, false)

	want := []string{"press:home", "update:home", "release:home", "update:home", "redraw"}
	if len(events) != len(want) {
		t.Fatalf("events = %v; want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %q; want %q", i, events[i], want[i])
		}
	}
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	b := NewButton("home", "", layout.Rect(0, 0, 10, 10))
	released := false
	b.AddReleaseListener(action.Func(func() { released = true }))

	b.HandleInput(5, 5, true)
	if b.HandleInput(50, 50, false) {
		t.Error("release outside reported as handled")
	}
	if released || b.Selected() {
		t.Error("release outside fired the listener or kept selection")
	}
}

func TestSetObserversReplaces(t *testing.T) {
	p := NewPanel("root", layout.Rect(0, 0, 10, 10))
	b := NewButton("b", "", layout.Rect(0, 0, 10, 10))
	count := 0
	update := func(Component) { count++ }

	p.AddButtonObservers(b, update, nil)
	p.AddButtonObservers(b, update, nil)
	b.Press()

	if count != 1 {
		t.Errorf("observer called %d times; want 1", count)
	}
}

func TestFactoryCreateButton(t *testing.T) {
	f := newTestFactory(t)
	bgr := color.RGBA{1, 2, 3, 255}
	fired := 0
	r := layout.Rect(10, 10, 40, 40)

	b := f.CreateButton(icons.Home, action.KeyHome, r, action.Func(func() { fired++ }), bgr, 64)
	if b.Bounds() != r || b.Bgr != bgr || b.ImageWidthPercent != 64 || b.KeyAlias != action.KeyHome {
		t.Errorf("unexpected button %+v", b)
	}
	b.Press()
	b.Release()
	if fired != 1 {
		t.Errorf("listener fired %d times", fired)
	}

	if nb := f.CreateButton("no-such-icon", "", r, nil, bgr, 64); nb.ReleaseListeners() != 0 {
		t.Error("nil listener registered")
	}
}

func TestFactoryPageButtons(t *testing.T) {
	f := newTestFactory(t)
	left := f.CreatePageDownButton(layout.Rect(0, 0, 64, 48), "0", 40, 100)
	right := f.CreatePageUpButton(layout.Rect(400, 0, 64, 48), "7", 40, 100)

	if left.KeyAlias != action.KeyPageDown || left.Label != "0" {
		t.Errorf("left = %+v", left)
	}
	if right.KeyAlias != action.KeyPageUp || right.Label != "7" {
		t.Errorf("right = %+v", right)
	}

	var seen string
	right.AddLabelListener(func(s string) { seen = s })
	right.ChangeLabel("3")
	if seen != "3" || right.State.Label != "3" {
		t.Errorf("label change not propagated: %q %q", seen, right.State.Label)
	}
}

func TestNewFactoryMissingColor(t *testing.T) {
	cfg := config.DefaultConfig()
	delete(cfg.Colors, config.ColorBright)
	if _, err := NewFactory(cfg, nil); err == nil {
		t.Fatal("expected error for missing colour")
	}
}

func TestDynamicTextNotifies(t *testing.T) {
	f := newTestFactory(t)
	txt := f.CreateDynamicText("title", layout.Rect(0, 0, 100, 20), color.Black, color.White, 12)
	updates := 0
	txt.SetUpdateObserver(func(Component) { updates++ })

	txt.SetText("/music")
	txt.SetText("/music")
	if txt.Text() != "/music" || updates != 1 {
		t.Errorf("text %q, updates %d", txt.Text(), updates)
	}
}

func TestControllerDispatch(t *testing.T) {
	screenA := NewPanel("a", layout.Rect(0, 0, 100, 100))
	screenB := NewPanel("b", layout.Rect(0, 0, 100, 100))
	var pressedOn []string
	btnA := NewButton("btnA", action.KeyHome, layout.Rect(0, 0, 50, 50))
	btnA.AddReleaseListener(func(r action.Request) { pressedOn = append(pressedOn, r.Action()) })
	screenA.AddComponent(btnA)
	btnB := NewButton("btnB", action.KeyHome, layout.Rect(0, 0, 50, 50))
	screenB.AddComponent(btnB)

	c := NewController()
	c.AddScreen("a", screenA)
	c.AddScreen("b", screenB)
	if err := c.SetScreen("a"); err != nil {
		t.Fatal(err)
	}

	c.Press(10, 10)
	if !c.IsInteractingWithUI() {
		t.Error("press not tracked")
	}
	c.Release(12, 12)
	if len(pressedOn) != 1 || pressedOn[0] != "btnA" {
		t.Fatalf("released on %v", pressedOn)
	}

	if c.FindKey(action.KeyHome) != btnA {
		t.Error("FindKey did not find the active screen's button")
	}

	if err := c.SetScreen("b"); err != nil {
		t.Fatal(err)
	}
	if screenA.IsVisible() || !screenB.IsVisible() {
		t.Error("screen switch did not toggle visibility")
	}
	if c.FindKey(action.KeyHome) != btnB {
		t.Error("FindKey looked at the hidden screen")
	}
	if err := c.SetScreen("missing"); err == nil {
		t.Error("expected error for unknown screen")
	}
}

func TestControllerRedrawTracking(t *testing.T) {
	screen := NewPanel("s", layout.Rect(0, 0, 100, 100))
	b := NewButton("b", "", layout.Rect(0, 0, 10, 10))
	screen.AddComponent(b)

	c := NewController()
	c.AddScreen("s", screen)
	if err := c.SetScreen("s"); err != nil {
		t.Fatal(err)
	}
	screen.AddButtonObservers(b, c.UpdateObserver, c.RedrawObserver)

	c.fullRedraw = false
	b.Press()
	if !c.NeedsRedraw() || c.fullRedraw {
		t.Error("press should mark only the button dirty")
	}
	if _, ok := c.dirty[b.ID()]; !ok {
		t.Error("button not in dirty set")
	}
	b.Release()
	if !c.fullRedraw {
		t.Error("release should request a full redraw")
	}
}
