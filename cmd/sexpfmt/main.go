// Command sexpfmt rewrites S-expressions in canonical form.
//
// Usage:
//
//	sexpfmt [flags] [path ...]
//
// Without paths it reads standard input. By default the canonical form of
// each input is written to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/xiam/sexpr/internal/census"
	"github.com/xiam/sexpr/internal/config"
	"github.com/xiam/sexpr/parser"
)

const stdinName = "<stdin>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "sexpfmt: ", 0)

	var (
		list, write, all  bool
		asJSON, atoms     bool
		maxDepth, workers int
		configPath        string
	)

	fs := flag.NewFlagSet("sexpfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&list, "l", false, "list files whose formatting differs from the canonical form")
	fs.BoolVar(&write, "w", false, "write the canonical form back to the source file")
	fs.BoolVar(&all, "all", false, "read a sequence of expressions from each input")
	fs.BoolVar(&asJSON, "json", false, "print expressions as JSON")
	fs.BoolVar(&atoms, "atoms", false, "print how often each atom occurs in the inputs")
	fs.IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum list nesting depth (negative for no limit)")
	fs.IntVar(&workers, "j", 4, "number of files processed concurrently")
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: sexpfmt [flags] [path ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			logger.Print(err)
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-depth":
			cfg.MaxDepth = maxDepth
		case "j":
			cfg.Workers = workers
		case "all":
			cfg.All = all
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Print(err)
		return 2
	}

	paths := fs.Args()
	switch {
	case asJSON && atoms:
		logger.Print("-json and -atoms cannot be used together")
		return 2
	case (asJSON || atoms) && (list || write):
		logger.Print("-l and -w cannot be used with -json or -atoms")
		return 2
	case write && len(paths) == 0:
		logger.Print("cannot use -w with standard input")
		return 2
	}

	opts := options{
		all:    cfg.All,
		json:   asJSON,
		atoms:  atoms,
		parser: cfg.ParserOptions(),
	}

	var results []*result
	if len(paths) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			logger.Print(err)
			return 1
		}
		results = []*result{process(stdinName, src, opts)}
	} else {
		results = make([]*result, len(paths))

		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		for i, path := range paths {
			g.Go(func() error {
				results[i] = processFile(path, write, opts)
				return nil
			})
		}
		_ = g.Wait()
	}

	exit := 0
	total := census.New()
	for _, res := range results {
		if res.err != nil {
			var perr *parser.Error
			if errors.As(res.err, &perr) {
				io.WriteString(stderr, parser.Report(res.name, res.src, res.err))
			} else {
				logger.Print(res.err)
			}
			exit = 1
			continue
		}

		switch {
		case atoms:
			total.Merge(res.census)
		case asJSON:
			stdout.Write(res.json)
		case list || write:
			if list && res.changed {
				fmt.Fprintln(stdout, res.name)
			}
		default:
			stdout.Write(res.canonical)
		}
	}

	if atoms {
		for atom, n := range total.All() {
			fmt.Fprintf(stdout, "%d\t%s\n", n, atom)
		}
	}
	return exit
}

func processFile(path string, write bool, opts options) *result {
	src, err := os.ReadFile(path)
	if err != nil {
		return &result{name: path, err: err}
	}

	res := process(path, src, opts)
	if write && res.err == nil && res.changed {
		fi, err := os.Stat(path)
		if err != nil {
			res.err = err
			return res
		}
		if err := os.WriteFile(path, res.canonical, fi.Mode().Perm()); err != nil {
			res.err = err
		}
	}
	return res
}
