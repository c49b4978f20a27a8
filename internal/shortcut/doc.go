// Package shortcut provides the process-wide shortcut registry.
//
// The registry maps shortcut identifiers to handlers and dispatches live
// key events against them. It supports dynamic registration and
// unregistration, group lifecycles, per-shortcut and global enable flags,
// advisory conflict lookup, and observer subscriptions over the live
// shortcut table.
//
// # Dispatch Policy
//
// On each event the registry walks registered shortcuts in insertion
// order and fires the first enabled, matching one; no further shortcuts
// are checked. When two shortcuts share a combo, whichever was registered
// first wins. Conflict detection is advisory and never blocks
// registration.
//
// Dispatch iterates a snapshot taken at event start, so handlers may
// register or unregister shortcuts freely; mutations take effect for the
// next event.
//
// # Usage
//
//	reg := shortcut.NewRegistry()
//	defer reg.Destroy()
//
//	search, _ := shortcut.New("search", "Ctrl+K", openSearch)
//	unregister, _ := reg.Register(search)
//	defer unregister()
//
//	out := reg.Dispatch(ev)
//	if out.SuppressDefault {
//	    // swallow the event in the host
//	}
package shortcut
