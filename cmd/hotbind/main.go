// Package main is the entry point for the hotbind key tester and
// binds-file tooling.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hotbind/hotbind/internal/app"
	"github.com/hotbind/hotbind/internal/bindfile"
	"github.com/hotbind/hotbind/internal/key"
	"github.com/hotbind/hotbind/internal/logging"
	"github.com/hotbind/hotbind/internal/shortcut"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	bindsPath  string
	check      string
	cheatsheet bool
	platform   string
	rebind     string
	logLevel   string
}

func run() int {
	opts := parseFlags()

	platform := key.DetectPlatform()
	if opts.platform != "" {
		p, err := key.ParsePlatform(opts.platform)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		platform = p
	}

	switch {
	case opts.check != "":
		return runCheck(opts.check)
	case opts.rebind != "":
		return runRebind(opts.bindsPath, opts.rebind)
	case opts.cheatsheet:
		return runCheatsheet(opts.bindsPath, platform)
	}

	log := logging.New(opts.logLevel)
	reg := shortcut.NewRegistry(shortcut.WithLogger(log))
	defer reg.Destroy()

	tester := app.New(app.Config{
		BindsPath: opts.bindsPath,
		Platform:  platform,
		Log:       log,
	}, reg)

	if err := tester.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runCheck validates a binds file and reports conflicts between its
// entries. A clean file exits 0.
func runCheck(path string) int {
	file, err := loadBinds(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	problems := file.Validate()
	if len(problems) == 0 {
		fmt.Printf("%s: %d shortcuts, no problems\n", path, len(file.Shortcuts))
		return 0
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, p)
	}
	return 1
}

// runRebind rewrites the keys of one entry in place, touching nothing
// else in the file.
func runRebind(path, spec string) int {
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: -rebind requires -binds")
		return 1
	}
	id, keys, ok := strings.Cut(spec, "=")
	if !ok || id == "" {
		fmt.Fprintln(os.Stderr, "Error: -rebind wants id=keys, e.g. -rebind nav.search=Ctrl+Shift+K")
		return 1
	}
	if _, err := key.ParseList(keys); err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad keys %q: %v\n", keys, err)
		return 1
	}
	if err := bindfile.SetKeysFile(path, id, keys); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("%s: %s -> %s\n", path, id, keys)
	return 0
}

func runCheatsheet(path string, platform key.Platform) int {
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: -cheatsheet requires -binds")
		return 1
	}
	file, err := loadBinds(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Handlers are irrelevant for printing; give every entry a no-op.
	handlers := make(map[string]shortcut.Handler, len(file.Shortcuts))
	for _, e := range file.Shortcuts {
		handlers[e.ID] = func(key.Event) shortcut.Result { return shortcut.Handled }
	}
	group, err := file.Group(handlers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := app.WriteCheatsheet(os.Stdout, group.Shortcuts, platform); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadBinds picks the parser from the extension: .ini and .conf files
// use the sectioned format, everything else is JSON.
func loadBinds(path string) (*bindfile.File, error) {
	switch filepath.Ext(path) {
	case ".ini", ".conf":
		return bindfile.LoadINI(path)
	default:
		return bindfile.Load(path)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.bindsPath, "binds", "", "Path to a binds file (JSON, or INI with .ini/.conf extension)")
	flag.StringVar(&opts.bindsPath, "b", "", "Path to a binds file (shorthand)")
	flag.StringVar(&opts.check, "check", "", "Validate a binds file and exit")
	flag.BoolVar(&opts.cheatsheet, "cheatsheet", false, "Print the cheatsheet for -binds and exit")
	flag.StringVar(&opts.platform, "platform", "", "Format combos for a platform (mac, windows, linux)")
	flag.StringVar(&opts.rebind, "rebind", "", "Rewrite one entry's keys in -binds, as id=keys")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error, disabled)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hotbind - keyboard shortcut tester and binds tooling\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hotbind [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hotbind                              Interactive tester with built-in bindings\n")
		fmt.Fprintf(os.Stderr, "  hotbind -b binds.json                Tester with your bindings, live-reloaded\n")
		fmt.Fprintf(os.Stderr, "  hotbind -check binds.json            Validate a binds file\n")
		fmt.Fprintf(os.Stderr, "  hotbind -b binds.json -cheatsheet    Print the bindings, grouped by category\n")
		fmt.Fprintf(os.Stderr, "  hotbind -b binds.json -rebind nav.search=Ctrl+Shift+K\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("hotbind %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
