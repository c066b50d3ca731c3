package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/matkrin/lspwire/internal/check"
	"github.com/matkrin/lspwire/internal/config"
	"github.com/matkrin/lspwire/internal/logging"
	"github.com/matkrin/lspwire/lsp"
)

const (
	name    = "lspcheck"
	version = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	method      string
	result      bool
	configPath  string
	logLevel    string
	logFile     string
	colorMode   string
	jobs        int
	drift       bool
	ignore      []string
	print       bool
	listMethods bool
	version     bool
}

func parseFlags(args []string, stderr io.Writer) (*pflag.FlagSet, flags, error) {
	var f flags
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [file|dir|-]...\n\n", name)
		fmt.Fprintln(stderr, "Decodes recorded LSP messages and reports payloads that do not fit the protocol.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	fs.StringVarP(&f.method, "method", "m", "", "decode bare payloads as params of this method")
	fs.BoolVar(&f.result, "result", false, "with --method, decode payloads as results instead of params")
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (default ./"+config.FileName+")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
	fs.StringVar(&f.colorMode, "color", "", "colorize output: auto, always, never")
	fs.IntVarP(&f.jobs, "jobs", "j", 0, "files checked in parallel (default GOMAXPROCS)")
	fs.BoolVar(&f.drift, "drift", true, "report fields lost or changed on re-encoding")
	fs.StringSliceVar(&f.ignore, "ignore", nil, "methods to skip")
	fs.BoolVar(&f.print, "print", false, "print the re-encoded form of every decoded payload")
	fs.BoolVar(&f.listMethods, "list-methods", false, "list the known methods and exit")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	err := fs.Parse(args)
	return fs, f, err
}

// loadConfig applies defaults, then the config file, then explicitly set flags.
func loadConfig(fs *pflag.FlagSet, f flags) (config.Config, error) {
	cfg := config.Default()
	path := f.configPath
	if path == "" {
		found, err := config.Find(".")
		if err == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-file") {
		logFile, err := config.ExpandPath(f.logFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogFile = logFile
	}
	if fs.Changed("color") {
		cfg.Color = f.colorMode
	}
	if fs.Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if fs.Changed("drift") {
		cfg.Check.Drift = f.drift
	}
	cfg.Check.IgnoreMethods = append(cfg.Check.IgnoreMethods, f.ignore...)
	return cfg, cfg.Validate()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, f, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if f.version {
		fmt.Fprintf(stdout, "%s %s (proposed features: %t)\n", name, version, lsp.Proposed)
		return 0
	}
	if f.listMethods {
		printMethods(stdout)
		return 0
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 2
	}
	closer, err := logging.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 2
	}
	defer closer.Close()
	slog.Debug("Logging initialized", "level", cfg.LogLevel)

	switch cfg.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	checker, err := check.New(check.Options{
		Method:        f.method,
		Result:        f.result,
		Drift:         cfg.Check.Drift,
		IgnoreMethods: cfg.Check.IgnoreMethods,
	})
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 2
	}

	results, err := collect(checker, fs.Args(), cfg, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 2
	}

	summary := check.Summarize(results)
	report(stdout, results, summary, f.print)
	slog.Debug("Check finished", "ok", summary.OK, "failed", summary.Failed, "drift", summary.Drift, "skipped", summary.Skipped)
	if summary.Failed > 0 || summary.Drift > 0 {
		return 1
	}
	return 0
}

func collect(checker *check.Checker, args []string, cfg config.Config, stdin io.Reader) ([]check.Result, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return checker.Check("<stdin>", stdin)
	}
	files, err := check.CollectFiles(args, cfg.ExcludeDirs)
	if err != nil {
		return nil, err
	}
	slog.Debug("Collected files", "count", len(files))
	return checker.CheckFiles(context.Background(), files, cfg.Jobs)
}
