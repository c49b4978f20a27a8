package shortcut

import (
	"errors"
	"testing"

	"github.com/hotbind/hotbind/internal/key"
)

func TestRegisterAndDispatch(t *testing.T) {
	reg := NewRegistry()
	fired := 0

	_, err := reg.Register(MustNew("search", "Ctrl+K", func(ev key.Event) Result {
		fired++
		return Handled
	}))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if !out.Handled {
		t.Fatal("Dispatch should report handled")
	}
	if out.ShortcutID != "search" {
		t.Errorf("ShortcutID = %q, want %q", out.ShortcutID, "search")
	}
	if !out.SuppressDefault {
		t.Error("default preventDefault should suppress the event")
	}
	if out.StopPropagation {
		t.Error("plain Handled result should not stop propagation")
	}
	if fired != 1 {
		t.Errorf("handler fired %d times, want 1", fired)
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := NewRegistry()
	handler := func(key.Event) Result { return Handled }

	tests := []struct {
		name    string
		s       Shortcut
		wantErr error
	}{
		{"empty id", Shortcut{Handler: handler, Combos: key.MustParseList("K")}, ErrEmptyID},
		{"nil handler", Shortcut{ID: "x", Combos: key.MustParseList("K")}, ErrNilHandler},
		{"no combos", Shortcut{ID: "x", Handler: handler}, ErrNoCombos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := reg.Register(tt.s); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDispatchExtraModifierFails(t *testing.T) {
	reg := NewRegistry()
	fired := false

	mustRegister(t, reg, "search", "Ctrl+K", func(key.Event) Result {
		fired = true
		return Handled
	})
	mustRegister(t, reg, "help", "Shift+?", func(key.Event) Result {
		fired = true
		return Handled
	})

	// Extra shiftKey breaks the Ctrl+K exact match, and Shift+? needs
	// the "?" key, not "k".
	out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl | key.ModShift})
	if out.Handled || fired {
		t.Error("no shortcut should fire for Ctrl+Shift+K")
	}
}

func TestDispatchFirstRegisteredWins(t *testing.T) {
	reg := NewRegistry()
	var order []string

	mustRegister(t, reg, "a", "Ctrl+K", func(key.Event) Result {
		order = append(order, "a")
		return Handled
	})
	mustRegister(t, reg, "b", "Ctrl+K", func(key.Event) Result {
		order = append(order, "b")
		return Handled
	})

	out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if out.ShortcutID != "a" {
		t.Errorf("ShortcutID = %q, want first-registered %q", out.ShortcutID, "a")
	}
	if len(order) != 1 || order[0] != "a" {
		t.Errorf("handlers fired: %v, want only a", order)
	}
}

func TestDispatchSkipsDisabled(t *testing.T) {
	reg := NewRegistry()
	var order []string

	mustRegister(t, reg, "a", "Ctrl+K", func(key.Event) Result {
		order = append(order, "a")
		return Handled
	})
	mustRegister(t, reg, "b", "Ctrl+K", func(key.Event) Result {
		order = append(order, "b")
		return Handled
	})

	if !reg.SetEnabled("a", false) {
		t.Fatal("SetEnabled should find a")
	}

	out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if out.ShortcutID != "b" {
		t.Errorf("ShortcutID = %q, want %q after disabling a", out.ShortcutID, "b")
	}

	reg.SetEnabled("a", true)
	out = reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if out.ShortcutID != "a" {
		t.Errorf("ShortcutID = %q, want %q after re-enabling", out.ShortcutID, "a")
	}
}

func TestUnregisterStopsDispatch(t *testing.T) {
	reg := NewRegistry()
	fired := false

	unregister := mustRegister(t, reg, "search", "Ctrl+K", func(key.Event) Result {
		fired = true
		return Handled
	})
	unregister()

	out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if out.Handled || fired {
		t.Error("unregistered shortcut should not fire")
	}
}

func TestUnregisterAbsentIsNoop(t *testing.T) {
	reg := NewRegistry()
	reg.Unregister("ghost")
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0", reg.Len())
	}
}

func TestRegisterUpsertKeepsSlot(t *testing.T) {
	reg := NewRegistry()
	var order []string

	mustRegister(t, reg, "a", "Ctrl+K", func(key.Event) Result {
		order = append(order, "a1")
		return Handled
	})
	mustRegister(t, reg, "b", "Ctrl+K", func(key.Event) Result {
		order = append(order, "b")
		return Handled
	})

	// Re-registering a overwrites silently and keeps its slot ahead of b.
	mustRegister(t, reg, "a", "Ctrl+K", func(key.Event) Result {
		order = append(order, "a2")
		return Handled
	})

	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}

	reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if len(order) != 1 || order[0] != "a2" {
		t.Errorf("handlers fired: %v, want only a2", order)
	}
}

func TestInputGuard(t *testing.T) {
	reg := NewRegistry()
	fired := map[string]int{}

	mustRegister(t, reg, "guarded", "Ctrl+K", func(key.Event) Result {
		fired["guarded"]++
		return Handled
	})
	_, err := reg.Register(MustNew("typing", "Ctrl+B", func(key.Event) Result {
		fired["typing"]++
		return Handled
	}).WithAllowInInput())
	if err != nil {
		t.Fatal(err)
	}

	inInput := key.Event{Key: "k", Mods: key.ModCtrl, Target: key.TargetInput}
	if out := reg.Dispatch(inInput); out.Handled {
		t.Error("guarded shortcut should not fire while focus is in an input")
	}

	bold := key.Event{Key: "b", Mods: key.ModCtrl, Target: key.TargetTextArea}
	if out := reg.Dispatch(bold); !out.Handled {
		t.Error("AllowInInput shortcut should fire inside a text area")
	}

	// Outside any text-entry context the guarded shortcut fires again.
	if out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl}); !out.Handled {
		t.Error("guarded shortcut should fire outside inputs")
	}

	if fired["guarded"] != 1 || fired["typing"] != 1 {
		t.Errorf("fired = %v, want guarded:1 typing:1", fired)
	}
}

func TestAllowInInputToggle(t *testing.T) {
	reg := NewRegistry()
	fired := 0

	s := MustNew("save", "Ctrl+S", func(key.Event) Result {
		fired++
		return Handled
	})
	mustRegisterShortcut(t, reg, s)

	ev := key.Event{Key: "s", Mods: key.ModCtrl, Target: key.TargetInput}
	if out := reg.Dispatch(ev); out.Handled {
		t.Fatal("should not fire while focused in input")
	}

	mustRegisterShortcut(t, reg, s.WithAllowInInput())
	if out := reg.Dispatch(ev); !out.Handled {
		t.Fatal("should fire after enabling AllowInInput")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestSetGlobalEnabled(t *testing.T) {
	reg := NewRegistry()
	fired := 0

	mustRegister(t, reg, "search", "Ctrl+K", func(key.Event) Result {
		fired++
		return Handled
	})

	reg.SetGlobalEnabled(false)
	if reg.GlobalEnabled() {
		t.Error("GlobalEnabled should report false")
	}
	if out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl}); out.Handled {
		t.Error("nothing should fire while globally disabled")
	}

	reg.SetGlobalEnabled(true)
	if out := reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl}); !out.Handled {
		t.Error("shortcut should fire after re-enabling")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestHandledStopPropagation(t *testing.T) {
	reg := NewRegistry()

	mustRegister(t, reg, "modal-escape", "Escape", func(key.Event) Result {
		return HandledStop
	})

	out := reg.Dispatch(key.Event{Key: "Escape"})
	if !out.StopPropagation {
		t.Error("HandledStop should request propagation stop")
	}
}

func TestDispatchReentrantUnregister(t *testing.T) {
	reg := NewRegistry()
	var order []string

	mustRegister(t, reg, "a", "Ctrl+K", func(key.Event) Result {
		order = append(order, "a")
		// Mid-dispatch mutation takes effect for the next event only.
		reg.Unregister("a")
		return Handled
	})

	reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})

	if len(order) != 1 {
		t.Errorf("handler fired %d times, want 1", len(order))
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0 after self-unregister", reg.Len())
	}
}

func TestDispatchReentrantRegister(t *testing.T) {
	reg := NewRegistry()
	fired := 0

	mustRegister(t, reg, "opener", "Ctrl+K", func(key.Event) Result {
		fired++
		// Registering from a handler must not disturb the current pass.
		mustRegister(t, reg, "late", "Ctrl+K", func(key.Event) Result {
			fired += 100
			return Handled
		})
		return Handled
	})

	reg.Dispatch(key.Event{Key: "k", Mods: key.ModCtrl})
	if fired != 1 {
		t.Errorf("fired = %d, want 1 (late handler must not run this pass)", fired)
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d, want 2", reg.Len())
	}
}

func TestGroupLifecycle(t *testing.T) {
	reg := NewRegistry()
	handler := func(key.Event) Result { return Handled }

	group := NewGroup("palette",
		MustNew("palette.open", "Ctrl+P", handler),
		MustNew("palette.commands", "Ctrl+Shift+P", handler),
	)
	if err := reg.RegisterGroup(group); err != nil {
		t.Fatalf("RegisterGroup error: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}

	// A shortcut registered independently after the group is unaffected
	// by group teardown.
	mustRegister(t, reg, "independent", "Ctrl+I", handler)

	reg.UnregisterGroup("palette")
	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after group teardown", reg.Len())
	}
	if _, ok := reg.Get("independent"); !ok {
		t.Error("independent shortcut should survive group teardown")
	}
	if _, ok := reg.Get("palette.open"); ok {
		t.Error("group member should be gone")
	}
}

func TestGroupMembershipSnapshot(t *testing.T) {
	reg := NewRegistry()
	handler := func(key.Event) Result { return Handled }

	group := NewGroup("nav", MustNew("nav.next", "Ctrl+N", handler))
	if err := reg.RegisterGroup(group); err != nil {
		t.Fatal(err)
	}

	// Overwriting a member id independently does not change the
	// membership snapshot: group teardown still removes the id.
	mustRegister(t, reg, "nav.next", "Ctrl+J", handler)

	reg.UnregisterGroup("nav")
	if _, ok := reg.Get("nav.next"); ok {
		t.Error("membership snapshot id should be removed with the group")
	}
}

func TestUnregisterAbsentGroupIsNoop(t *testing.T) {
	reg := NewRegistry()
	reg.UnregisterGroup("ghost")
}

func TestReset(t *testing.T) {
	reg := NewRegistry()
	handler := func(key.Event) Result { return Handled }

	mustRegister(t, reg, "a", "Ctrl+A", handler)
	if err := reg.RegisterGroup(NewGroup("g", MustNew("b", "Ctrl+B", handler))); err != nil {
		t.Fatal(err)
	}

	reg.Reset()
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0 after reset", reg.Len())
	}
	if reg.GroupMembers("g") != nil {
		t.Error("groups should be cleared by reset")
	}
}

func TestDestroy(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "a", "Ctrl+A", func(key.Event) Result { return Handled })

	reg.Destroy()

	if out := reg.Dispatch(key.Event{Key: "a", Mods: key.ModCtrl}); out.Handled {
		t.Error("destroyed registry should not dispatch")
	}
	if _, err := reg.Register(MustNew("b", "Ctrl+B", func(key.Event) Result { return Handled })); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Register after Destroy error = %v, want ErrDestroyed", err)
	}
}

func TestSubscribe(t *testing.T) {
	reg := NewRegistry()
	var snapshots []Snapshot

	cancel := reg.Subscribe(func(snap Snapshot) {
		snapshots = append(snapshots, snap)
	})

	// Immediate delivery of the current (empty) table.
	if len(snapshots) != 1 || len(snapshots[0]) != 0 {
		t.Fatalf("want immediate empty snapshot, got %v", snapshots)
	}

	mustRegister(t, reg, "a", "Ctrl+A", func(key.Event) Result { return Handled })
	if len(snapshots) != 2 || len(snapshots[1]) != 1 {
		t.Fatalf("want snapshot after register, got %d snapshots", len(snapshots))
	}
	if snapshots[1][0].ID != "a" {
		t.Errorf("snapshot entry = %q, want %q", snapshots[1][0].ID, "a")
	}

	cancel()
	reg.Unregister("a")
	if len(snapshots) != 2 {
		t.Errorf("cancelled observer still notified: %d snapshots", len(snapshots))
	}
}

func TestSnapshotInsertionOrder(t *testing.T) {
	reg := NewRegistry()
	handler := func(key.Event) Result { return Handled }

	for _, id := range []string{"c", "a", "b"} {
		mustRegister(t, reg, id, "Ctrl+"+id, handler)
	}

	snap := reg.Shortcuts()
	got := make([]string, 0, len(snap))
	for _, s := range snap {
		got = append(got, s.ID)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot order = %v, want %v", got, want)
		}
	}
}

type recordingHook struct {
	consume bool
	pre     int
	post    int
	lastOut Outcome
}

func (h *recordingHook) PreDispatch(ev *key.Event) bool {
	h.pre++
	return h.consume
}

func (h *recordingHook) PostDispatch(ev key.Event, out Outcome) {
	h.post++
	h.lastOut = out
}

func TestDispatchHooks(t *testing.T) {
	reg := NewRegistry()
	hook := &recordingHook{}
	reg.AddHook(hook)

	mustRegister(t, reg, "a", "Ctrl+A", func(key.Event) Result { return Handled })

	reg.Dispatch(key.Event{Key: "a", Mods: key.ModCtrl})
	if hook.pre != 1 || hook.post != 1 {
		t.Errorf("hook calls pre=%d post=%d, want 1/1", hook.pre, hook.post)
	}
	if !hook.lastOut.Handled {
		t.Error("post hook should see the outcome")
	}

	hook.consume = true
	out := reg.Dispatch(key.Event{Key: "a", Mods: key.ModCtrl})
	if out.Handled {
		t.Error("consuming hook should stop dispatch")
	}
}

// mustRegister registers a simple shortcut and fails the test on error.
func mustRegister(t *testing.T, reg *Registry, id, keys string, handler Handler) func() {
	t.Helper()
	unregister, err := reg.Register(MustNew(id, keys, handler))
	if err != nil {
		t.Fatalf("Register(%q) error: %v", id, err)
	}
	return unregister
}

func mustRegisterShortcut(t *testing.T, reg *Registry, s Shortcut) {
	t.Helper()
	if _, err := reg.Register(s); err != nil {
		t.Fatalf("Register(%q) error: %v", s.ID, err)
	}
}
