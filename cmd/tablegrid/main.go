// Package main is the entry point for the tablegrid viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/dshills/tablegrid/internal/app"
	"github.com/dshills/tablegrid/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions are the flags that do not configure the application itself.
type cliOptions struct {
	dump          bool
	stats         bool
	width, height int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, cli := parseFlags()

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	if cli.stats {
		if err := printStats(os.Stdout, application, cli.width, cli.height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Without a terminal there is nothing to drive, print one frame
	if cli.dump || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := application.Dump(os.Stdout, cli.width, cli.height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Create terminal backend
	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// printStats renders every view once and prints its scroll bookkeeping.
func printStats(w io.Writer, application *app.Application, width, height int) error {
	active := application.ActiveView()
	for _, name := range application.ViewNames() {
		if err := application.SetActiveView(name); err != nil {
			return err
		}
		if err := application.Dump(io.Discard, width, height); err != nil {
			return err
		}
	}
	if err := application.SetActiveView(active); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("view", "regime", "rows", "counted", "reported", "offset", "max offset", "page")
	for _, st := range application.Stats() {
		row := []string{
			st.Name,
			st.Regime,
			strconv.Itoa(st.Rows),
			strconv.Itoa(st.CountedRows),
			strconv.Itoa(st.ReportedRows),
			strconv.Itoa(st.RowOffset),
			strconv.Itoa(st.RowMaxOffset),
			strconv.Itoa(st.PageLen),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func parseFlags() (app.Options, cliOptions) {
	var opts app.Options
	var cli cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Watch, "watch", true, "Reload the configuration file when it changes")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable table diagnostics")
	flag.BoolVar(&opts.Debug, "d", false, "Enable table diagnostics (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.JSONPath, "json", "", "JSON array shown in the json view")
	flag.StringVar(&opts.LuaPath, "lua", "", "Lua script feeding the script view")
	flag.StringVar(&opts.View, "view", "", "View shown first (huge, records, script, json, keys)")
	flag.BoolVar(&cli.dump, "dump", false, "Print one frame instead of running interactively")
	flag.BoolVar(&cli.stats, "stats", false, "Print the scroll bookkeeping of every view")
	flag.IntVar(&cli.width, "width", 0, "Frame width for -dump and -stats")
	flag.IntVar(&cli.height, "height", 0, "Frame height for -dump and -stats")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tablegrid - virtualized tables for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tablegrid [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tablegrid                          Browse the demo views\n")
		fmt.Fprintf(os.Stderr, "  tablegrid -json items.json         Browse and edit a JSON array\n")
		fmt.Fprintf(os.Stderr, "  tablegrid -lua rows.lua -view script\n")
		fmt.Fprintf(os.Stderr, "  tablegrid -view huge -dump | less  Print one frame\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("tablegrid %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	cli.width, cli.height = frameSize(cli.width, cli.height)
	return opts, cli
}

// frameSize fills unset dimensions from the terminal, or 80x24.
func frameSize(width, height int) (int, int) {
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = 80, 24
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
