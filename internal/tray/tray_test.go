package tray_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/watchfire-io/deskshell/internal/host/memory"
	"github.com/watchfire-io/deskshell/internal/tray"
	"github.com/watchfire-io/deskshell/internal/window"
)

func newHost(t *testing.T, labels ...string) *memory.Host {
	t.Helper()
	host := memory.New()
	for _, label := range labels {
		if _, err := host.CreateWindow(window.CreationParams{Label: label, Visible: true}); err != nil {
			t.Fatalf("CreateWindow(%s): %v", label, err)
		}
	}
	return host
}

func visible(t *testing.T, host *memory.Host, label string) bool {
	t.Helper()
	w, ok := host.Get(label)
	if !ok {
		t.Fatalf("window %s missing", label)
	}
	return w.Snapshot().Visible
}

func TestMenuModel(t *testing.T) {
	menu := tray.NewMenu()

	if got, want := menu.IDs(), []string{"show", "hide", "quit"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}

	items := menu.Items()
	if len(items) != 4 || !items[2].Separator {
		t.Fatalf("Items() = %+v, want show, hide, separator, quit", items)
	}
	for _, it := range items {
		if !it.Separator && !it.Enabled {
			t.Errorf("item %s disabled", it.ID)
		}
	}

	items[0].ID = "mutated"
	if menu.IDs()[0] != "show" {
		t.Error("Items() exposed the menu's backing slice")
	}
}

func TestMenuShowAndHideTargetPrimaryOnly(t *testing.T) {
	host := newHost(t, "main", "todo")
	ctrl := tray.NewController(host, host, nil)

	if err := ctrl.HandleMenuEvent(tray.ItemHide); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if err := ctrl.HandleMenuEvent(tray.ItemShow); err != nil {
		t.Fatalf("show: %v", err)
	}

	want := []memory.Call{
		{Label: "main", Op: "hide"},
		{Label: "main", Op: "show"},
		{Label: "main", Op: "focus"},
	}
	if got := host.Calls(); !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
	if _, exited := host.Exited(); exited {
		t.Error("show/hide exited the process")
	}
}

func TestMenuShowWithoutPrimaryFails(t *testing.T) {
	host := newHost(t, "todo")
	ctrl := tray.NewController(host, host, nil)

	for _, id := range []string{tray.ItemShow, tray.ItemHide} {
		err := ctrl.HandleMenuEvent(id)
		if !errors.Is(err, tray.ErrPrimaryWindowMissing) {
			t.Errorf("HandleMenuEvent(%s) = %v, want ErrPrimaryWindowMissing", id, err)
		}
	}
	if calls := host.Calls(); len(calls) != 0 {
		t.Errorf("calls = %v, want none", calls)
	}
}

func TestMenuQuitExitsZero(t *testing.T) {
	host := newHost(t)
	ctrl := tray.NewController(host, host, nil)

	if err := ctrl.HandleMenuEvent(tray.ItemQuit); err != nil {
		t.Fatalf("quit: %v", err)
	}
	code, exited := host.Exited()
	if !exited || code != 0 {
		t.Errorf("Exited() = %d, %v; want 0, true", code, exited)
	}
}

func TestMenuUnknownIDIsNoop(t *testing.T) {
	host := newHost(t, "main")
	ctrl := tray.NewController(host, host, nil)

	if err := ctrl.HandleMenuEvent("settings"); err != nil {
		t.Errorf("unknown id: %v", err)
	}
	if calls := host.Calls(); len(calls) != 0 {
		t.Errorf("calls = %v, want none", calls)
	}
	if _, exited := host.Exited(); exited {
		t.Error("unknown id exited the process")
	}
}

func TestTrayLeftClickToggles(t *testing.T) {
	host := newHost(t, "main")
	ctrl := tray.NewController(host, host, nil)

	if err := ctrl.HandleTrayEvent(tray.LeftClick); err != nil {
		t.Fatal(err)
	}
	if visible(t, host, "main") {
		t.Fatal("left click on a visible window did not hide it")
	}

	if err := ctrl.HandleTrayEvent(tray.LeftClick); err != nil {
		t.Fatal(err)
	}
	w, _ := host.Get("main")
	if s := w.Snapshot(); !s.Visible || !s.Focused {
		t.Errorf("left click on a hidden window: visible=%v focused=%v, want both true", s.Visible, s.Focused)
	}
}

func TestTrayOtherEventsIgnored(t *testing.T) {
	events := []tray.Event{
		{Kind: tray.EventClick, Button: tray.ButtonRight},
		{Kind: tray.EventClick, Button: tray.ButtonMiddle},
		{Kind: tray.EventDoubleClick, Button: tray.ButtonLeft},
		{Kind: tray.EventEnter},
		{Kind: tray.EventLeave},
	}

	for _, startVisible := range []bool{true, false} {
		for _, ev := range events {
			host := newHost(t, "main")
			if !startVisible {
				w, _ := host.Get("main")
				_ = w.Hide()
				host.ResetCalls()
			}
			ctrl := tray.NewController(host, host, nil)

			if err := ctrl.HandleTrayEvent(ev); err != nil {
				t.Errorf("%s/%s: %v", ev.Kind, ev.Button, err)
			}
			if got := visible(t, host, "main"); got != startVisible {
				t.Errorf("%s/%s changed visibility to %v", ev.Kind, ev.Button, got)
			}
			if calls := host.Calls(); len(calls) != 0 {
				t.Errorf("%s/%s performed %v", ev.Kind, ev.Button, calls)
			}
		}
	}
}

func TestTrayLeftClickWithoutPrimary(t *testing.T) {
	host := newHost(t)
	ctrl := tray.NewController(host, host, nil)

	if err := ctrl.HandleTrayEvent(tray.LeftClick); !errors.Is(err, tray.ErrPrimaryWindowMissing) {
		t.Errorf("HandleTrayEvent = %v, want ErrPrimaryWindowMissing", err)
	}
}

func TestVisibilityIsIdempotent(t *testing.T) {
	host := newHost(t, "main")
	ctrl := tray.NewController(host, host, nil)

	for i := 0; i < 2; i++ {
		if err := ctrl.HandleMenuEvent(tray.ItemShow); err != nil {
			t.Fatalf("show #%d: %v", i+1, err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := ctrl.HandleMenuEvent(tray.ItemHide); err != nil {
			t.Fatalf("hide #%d: %v", i+1, err)
		}
	}
	if visible(t, host, "main") {
		t.Error("window visible after hide")
	}
}

func TestInstallRoutesHostEvents(t *testing.T) {
	host := newHost(t, "todo")
	ctrl := tray.NewController(host, host, nil)

	var errs []string
	if err := ctrl.Install(host, func(source string, err error) {
		errs = append(errs, source)
	}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	menu, tooltip, ok := host.Menu()
	if !ok || tooltip != tray.Tooltip || len(menu.IDs()) != 3 {
		t.Fatalf("installed menu = %v, %q, %v", menu.IDs(), tooltip, ok)
	}

	host.ClickMenu(tray.ItemShow)
	host.TrayEvent(tray.LeftClick)
	host.TrayEvent(tray.Event{Kind: tray.EventClick, Button: tray.ButtonRight})

	if want := []string{"menu", "tray"}; !reflect.DeepEqual(errs, want) {
		t.Errorf("error sources = %v, want %v", errs, want)
	}

	if err := ctrl.Install(host, nil); err == nil {
		t.Error("second Install succeeded")
	}
}
