// Command happydomfmt parses an HTML file, optionally runs a CSS
// selector query against it, and prints the (optionally re-indented)
// result — a thin consumer of the happydom package's core surface.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	happydom "github.com/veryhappydom/happydom"
	"github.com/veryhappydom/happydom/config"
	"github.com/veryhappydom/happydom/internal/diag"
	"github.com/veryhappydom/happydom/serialize"
)

// Opts holds all CLI options.
type Opts struct {
	File     string `short:"f" long:"file" env:"FILE" description:"HTML file to parse" required:"true"`
	Selector string `short:"s" long:"selector" description:"CSS selector to run against the parsed document"`
	Config   string `short:"c" long:"config" env:"CONFIG" default:"happydomfmt.yml" description:"configuration file"`
	Pretty   bool   `long:"pretty" description:"pretty-print the serialized output"`
	Debug    bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version  bool   `short:"V" long:"version" description:"show version info"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("happydomfmt %s (%s), golang: %s\n", happydom.Version, revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)
	diag.SetVerbose(opts.Debug)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		lgr.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	if err := run(opts, cfg); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(opts Opts, cfg *config.Config) error {
	data, err := os.ReadFile(opts.File) //nolint:gosec // path comes from a CLI flag
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.File, err)
	}

	doc, err := happydom.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.File, err)
	}

	serializeOpts := serialize.Options{
		Pretty:     opts.Pretty || cfg.Output.Pretty,
		IndentSize: cfg.Output.IndentSize,
	}

	if opts.Selector == "" {
		fmt.Println(serialize.ToHTML(doc, serializeOpts))
		return nil
	}

	matches, err := happydom.QuerySelectorAll(doc.DocumentElement(), opts.Selector)
	if err != nil {
		return fmt.Errorf("query %q: %w", opts.Selector, err)
	}
	lgr.Printf("[INFO] %q matched %d element(s)", opts.Selector, len(matches))
	for _, el := range matches {
		fmt.Println(serialize.ToHTML(el, serializeOpts))
	}
	return nil
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces}
	}

	colorizer := lgr.Mapper{
		ErrorFunc: func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:  func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:  func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc: func(s string) string { return color.New(color.FgWhite).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	lgr.Setup(logOpts...)
}
