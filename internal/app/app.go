// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cvardump-core/cvar"
	"cvardump/internal/cli"
	"cvardump/internal/cmdutil"
	"cvardump/internal/config"
	"cvardump/internal/input"
	"cvardump/internal/logger"
	"cvardump/internal/rcon"
	"cvardump/internal/version"
	"cvardump/internal/writers"
)

// RunContext is the whole program behind the binary: flags, config, input
// acquisition, extraction, advisory count check, CSV out. Exit codes follow
// the usual split: 0 ok, 1 runtime failure, 2 usage error, 3 flush error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("cvardump")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cvardump version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfgPath := opts.ConfigFile
	if cfgPath == "" {
		if p := defaultConfigPath(); config.Exists(p) {
			cfgPath = p
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Config fills only what the command line left unset. A configured server
	// is ignored when the user pointed at a file or stdin.
	if opts.Server == "" && len(opts.InputFiles) == 0 {
		opts.Server = cfg.Server
	}
	if opts.Password == "" {
		opts.Password = cfg.Password
	}
	if opts.Output == "" {
		opts.Output = cfg.Output
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log := logger.New(stderr, level)
	if cfgPath != "" {
		log.Debug("config loaded", "path", cfgPath)
	}

	if opts.Server != "" && opts.Password == "" {
		_, _ = fmt.Fprintln(stderr, "error: --server requires a password (flag, config file, or CVARDUMP_PASSWORD)")
		return 2
	}

	var text string
	if opts.Server != "" {
		text, err = rcon.Fetch(parent, opts.Server, opts.Password, opts.Timeout, log)
	} else {
		path := "-"
		if len(opts.InputFiles) == 1 {
			path = opts.InputFiles[0]
		}
		text, err = input.ReadAll(path)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	log.Debug("input acquired", "bytes", len(text))

	res, err := cvar.Extract(text)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	log.Debug("extracted", "records", len(res.Records), "has_count", res.HasCount)

	// Advisory only: a mismatch means truncated or padded input, which is
	// worth a warning but the records extracted are still good.
	if res.HasCount {
		switch {
		case len(res.Records) < res.ExpectedCount:
			cmdutil.Warnf(stderr, opts.Quiet,
				"extracted fewer cvars (%d) than reported by %s (%d)",
				len(res.Records), rcon.ListCommand, res.ExpectedCount)
		case len(res.Records) > res.ExpectedCount:
			cmdutil.Warnf(stderr, opts.Quiet,
				"extracted more cvars (%d) than reported by %s (%d)",
				len(res.Records), rcon.ListCommand, res.ExpectedCount)
		}
	}

	sink, closeSink, err := writers.OpenSink(opts.Output, outw)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	werr := cvar.WriteCSV(sink, res.Records)
	cerr := closeSink()
	switch {
	case writers.IsBrokenPipe(werr):
		return 0
	case werr != nil:
		_, _ = fmt.Fprintln(stderr, werr)
		return 1
	case cerr != nil:
		_, _ = fmt.Fprintln(stderr, cerr)
		return 1
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is RunContext without cancellation, for tests and embedding.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cvardump", "config.yaml")
}
