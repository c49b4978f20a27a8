// Package app implements the interactive key tester: a tcell screen
// that feeds every keystroke through a shortcut registry and shows
// what matched, alongside a live cheatsheet of the current bindings.
package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/hotbind/hotbind/internal/bindfile"
	"github.com/hotbind/hotbind/internal/key"
	"github.com/hotbind/hotbind/internal/shortcut"
	"github.com/hotbind/hotbind/internal/tcellkey"
)

// ErrQuit signals that the tester should exit normally.
var ErrQuit = errors.New("quit requested")

// Config carries the pieces the tester needs. Zero value is usable:
// no binds file, detected platform, silent logger.
type Config struct {
	// BindsPath, when set, is loaded into the registry on startup and
	// re-applied whenever the file changes on disk.
	BindsPath string

	// Platform controls how combos are rendered in the cheatsheet.
	Platform key.Platform

	Log zerolog.Logger
}

// App is the interactive tester.
type App struct {
	cfg      Config
	screen   tcell.Screen
	registry *shortcut.Registry
	watcher  *bindfile.Watcher
	log      zerolog.Logger

	// UI state, touched only from the event loop goroutine.
	inputMode bool
	inputText []rune
	showSheet bool
	lastEvent string
	lastMatch string
	status    string
	quit      bool
}

// New builds the tester around an existing registry. The registry may
// already hold shortcuts; the tester adds its own control bindings on
// Run and removes them on exit.
func New(cfg Config, reg *shortcut.Registry) *App {
	return &App{
		cfg:       cfg,
		registry:  reg,
		log:       cfg.Log,
		showSheet: true,
		status:    "ready",
	}
}

// Run takes over the terminal until the quit binding fires or the
// screen is lost. It returns nil on a clean quit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen
	defer screen.Fini()

	cleanup, err := a.installControls()
	if err != nil {
		return err
	}
	defer cleanup()

	if a.cfg.BindsPath != "" {
		if err := a.loadBinds(); err != nil {
			return err
		}
		w, err := bindfile.Watch(a.cfg.BindsPath, func(string) { a.reloadBinds() },
			bindfile.WithWatchLogger(a.log))
		if err != nil {
			a.log.Warn().Err(err).Msg("binds watcher unavailable")
		} else {
			a.watcher = w
			defer a.watcher.Close()
		}
	}

	// Redraw on any registry change, including reloads from the
	// watcher goroutine.
	unsubscribe := a.registry.Subscribe(func(shortcut.Snapshot) {
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer unsubscribe()

	return a.eventLoop()
}

func (a *App) eventLoop() error {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return nil
		}
	}
}

func (a *App) handleKey(tev *tcell.EventKey) error {
	ev := tcellkey.FromEventKey(tev)
	if a.inputMode {
		ev.Target = key.TargetInput
	}

	a.lastEvent = ev.String()
	outcome := a.registry.Dispatch(ev)
	if outcome.Handled {
		a.lastMatch = outcome.ShortcutID
		a.log.Debug().
			Str("event", a.lastEvent).
			Str("shortcut", outcome.ShortcutID).
			Bool("suppress_default", outcome.SuppressDefault).
			Msg("dispatched")
	} else {
		a.lastMatch = ""
		// Unmatched keystrokes in input mode feed the fake text field,
		// mirroring a browser's default action.
		if a.inputMode && tev.Key() == tcell.KeyRune {
			a.inputText = append(a.inputText, tev.Rune())
		}
	}

	if a.quit {
		return ErrQuit
	}
	return nil
}

// installControls registers the tester's own bindings as a group so
// they can be removed in one call and cannot collide with a reloaded
// binds file.
func (a *App) installControls() (func(), error) {
	group := shortcut.NewGroup("hotbind.tester",
		shortcut.MustNew("tester.quit", "Ctrl+Q", func(key.Event) shortcut.Result {
			a.quit = true
			return shortcut.Handled
		}).WithDescription("Quit the tester").WithCategory("Tester").WithAllowInInput(),
		shortcut.MustNew("tester.sheet", "F1", func(key.Event) shortcut.Result {
			a.showSheet = !a.showSheet
			return shortcut.Handled
		}).WithDescription("Toggle cheatsheet").WithCategory("Tester"),
		shortcut.MustNew("tester.input", "Ctrl+E", func(key.Event) shortcut.Result {
			a.inputMode = true
			a.status = "input mode: unguarded shortcuts are suspended"
			return shortcut.Handled
		}).WithDescription("Focus the text field").WithCategory("Tester"),
		shortcut.MustNew("tester.blur", "Escape", func(key.Event) shortcut.Result {
			if !a.inputMode {
				return shortcut.Handled
			}
			a.inputMode = false
			a.status = "ready"
			return shortcut.Handled
		}).WithDescription("Leave the text field").WithCategory("Tester").WithAllowInInput(),
		shortcut.MustNew("tester.platform", "Ctrl+P", func(key.Event) shortcut.Result {
			a.cfg.Platform = nextPlatform(a.cfg.Platform)
			return shortcut.Handled
		}).WithDescription("Cycle display platform").WithCategory("Tester"),
	)

	if err := a.registry.RegisterGroup(group); err != nil {
		return nil, fmt.Errorf("install tester controls: %w", err)
	}
	return func() { a.registry.UnregisterGroup(group.ID) }, nil
}

func (a *App) loadBinds() error {
	file, err := bindfile.Load(a.cfg.BindsPath)
	if err != nil {
		return fmt.Errorf("load binds: %w", err)
	}
	group, err := file.Group(announceHandlers(a, file))
	if err != nil {
		return fmt.Errorf("bind binds file: %w", err)
	}
	if err := a.registry.RegisterGroup(group); err != nil {
		return fmt.Errorf("apply binds: %w", err)
	}
	a.log.Info().Str("path", a.cfg.BindsPath).Int("count", len(file.Shortcuts)).Msg("binds loaded")
	return nil
}

// reloadBinds runs on the watcher goroutine. Registry mutation is safe
// there; UI state is not touched, the subscription wakes the loop.
func (a *App) reloadBinds() {
	if err := a.loadBinds(); err != nil {
		a.log.Warn().Err(err).Msg("binds reload failed")
	}
}

// announceHandlers gives every entry in a binds file a handler that
// reports the hit on screen. The tester exercises matching, not the
// actions behind the bindings.
func announceHandlers(a *App, file *bindfile.File) map[string]shortcut.Handler {
	handlers := make(map[string]shortcut.Handler, len(file.Shortcuts))
	for _, entry := range file.Shortcuts {
		id := entry.ID
		handlers[id] = func(key.Event) shortcut.Result {
			a.status = "fired: " + id
			return shortcut.Handled
		}
	}
	return handlers
}

func nextPlatform(p key.Platform) key.Platform {
	switch p {
	case key.PlatformLinux:
		return key.PlatformMac
	case key.PlatformMac:
		return key.PlatformWindows
	default:
		return key.PlatformLinux
	}
}
