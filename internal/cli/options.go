// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"cvardump/internal/cliutil"
	"cvardump/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input: either a live server over RCON or saved cvarlist output.
	Server     string
	Password   string
	Timeout    time.Duration
	InputFiles []string // positionals; "-" = stdin

	// Output
	Output string

	// Config / diagnostics
	ConfigFile string
	Quiet      bool
	Verbose    bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: dump Source engine cvars into a CSV spreadsheet

Parses the output of the "cvarlist" console command and writes one CSV row per
cvar (name, flags, default value, description). Input comes from saved console
output (a file, or "-" for stdin) or straight from a server over RCON.

Version: %s

Usage: %s [flags] [input-file | -]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Server, "server", "", "server address and port for RCON, ex: 192.168.1.100:27015 [none]")
	fs.StringVar(&opt.Password, "password", "", "RCON password [none]")
	fs.DurationVar(&opt.Timeout, "timeout", 10*time.Second, "RCON dial/exec timeout [10s]")

	fs.StringVar(&opt.Output, "output", "", "output CSV path (default: stdout)")
	fs.StringVar(&opt.Output, "o", "", "output CSV path (shorthand)")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file with server/password/output defaults [none]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress advisory warnings [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging to stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.InputFiles = files

	// Validation. Password completeness is checked by the app after config
	// and environment values are merged in.
	switch {
	case opt.Server != "" && len(opt.InputFiles) > 0:
		return opt, errors.New("--server conflicts with file/stdin input")
	case len(opt.InputFiles) > 1:
		return opt, errors.New("expected a single input file")
	}
	if opt.Timeout <= 0 {
		return opt, errors.New("--timeout must be > 0")
	}
	return opt, nil
}
