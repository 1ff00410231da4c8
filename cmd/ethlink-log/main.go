// Command ethlink-log views and analyzes ethlinkd event captures.
//
// Capture files are written by ethlinkd when run with -capture.
//
// Usage:
//
//	ethlink-log <command> [flags] <file.elog>
//
// Commands:
//
//	view     View capture in human-readable format
//	stats    Show statistics about the capture
//	export   Export capture to JSON lines or CSV
//	filter   Filter capture and write to new file
//
// Examples:
//
//	# View all events
//	ethlink-log view link.elog
//
//	# View only errors of one session
//	ethlink-log view -category error -session 3f2a9c1e-... link.elog
//
//	# Count address acquisitions
//	ethlink-log stats -kind address_acquired link.elog
//
//	# Export to CSV
//	ethlink-log export -format csv -o link.csv link.elog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ethlink/ethlink-go/cmd/ethlink-log/commands"
)

const usage = `ethlink-log - ethlink Capture Analyzer

Usage:
  ethlink-log <command> [flags] <file.elog>

Commands:
  view     View capture in human-readable format
  stats    Show statistics about the capture
  export   Export capture to JSON lines or CSV
  filter   Filter capture and write to new file

Use "ethlink-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared filter flags bound to opts.
func newFlagSet(name, summary string, opts *commands.FilterOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ethlink-log %s - %s

Usage:
  ethlink-log %s [flags] <file.elog>

Flags:
`, name, summary, name)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (driver, netif, events, lifecycle)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (state, link, error)")
	fs.StringVar(&opts.Kind, "kind", "", "Filter link events by kind (e.g. link_connected)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter events at or after this time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter events before this time (RFC3339)")
	return fs
}

// capturePath parses args and returns the capture file argument.
func capturePath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("view", "View capture in human-readable format", &opts)
	path := capturePath(fs, args)

	if err := commands.RunView(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("stats", "Show statistics about the capture", &opts)
	path := capturePath(fs, args)

	if err := commands.RunStats(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("export", "Export capture to JSON lines or CSV", &opts)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := capturePath(fs, args)

	if err := commands.RunExport(path, *format, *output, opts); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("filter", "Filter capture and write to new file", &opts)
	output := fs.String("o", "", "Output file (required)")
	path := capturePath(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file required (-o)")
		fs.Usage()
		os.Exit(1)
	}
	if err := commands.RunFilter(path, *output, opts, os.Stdout); err != nil {
		fail(err)
	}
}
