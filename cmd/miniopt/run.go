package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/fsnotify/fsnotify"

	"github.com/dzonerzy/go-miniopt/internal/codegen"
	optio "github.com/dzonerzy/go-miniopt/io"
	"github.com/dzonerzy/go-miniopt/miniopt"
)

var usageHead = heredoc.Doc(`
	usage: miniopt [options] [input]

	Reads an option description from input, or stdin when input is
	omitted, and writes Go source declaring a miniopt option table
	and a dispatch function over it.

	options:
`)

var usageTail = heredoc.Doc(`

	environment:
	  MINIOPT_PACKAGE    default for --package
	  MINIOPT_FUNC       default for --func
	  MINIOPT_TIMESTAMP  default for --timestamp (true or false)
`)

type tool struct {
	console *optio.Console
	log     *optio.Logger
	now     func() time.Time

	// called once the watcher is registered
	watching func()
}

func newTool(console *optio.Console) *tool {
	return &tool{
		console:  console,
		log:      optio.NewLogger(console),
		now:      time.Now,
		watching: func() {},
	}
}

func (t *tool) run(ctx context.Context, args []string, getenv func(string) string) error {
	cfg, err := parseArgs(args, getenv)
	if err != nil {
		return err
	}
	if cfg.quiet {
		t.log.WithLevel(optio.LevelWarning)
	}
	switch {
	case cfg.help:
		return t.usage(t.console.Out())
	case cfg.version:
		_, err := fmt.Fprintf(t.console.Out(), "miniopt version %s\n", version)
		return err
	}
	for _, key := range []string{keyPackage, keyFunc, keyTimestamp} {
		t.log.Debug("%s taken from %s", key, cfg.origin[key])
	}

	if cfg.input != "" && cfg.output != "" && sameFile(cfg.input, cfg.output) {
		return errSameFile
	}
	if err := t.generate(cfg); err != nil {
		return err
	}
	if cfg.watch {
		return t.watch(ctx, cfg)
	}
	return nil
}

func (t *tool) usage(w io.Writer) error {
	if _, err := io.WriteString(w, usageHead); err != nil {
		return err
	}
	if err := miniopt.WriteOptions(w, options, 2); err != nil {
		return err
	}
	_, err := io.WriteString(w, usageTail)
	return err
}

// generate reads the description and writes the code. The output file is
// only replaced once generation succeeded.
func (t *tool) generate(cfg *config) error {
	table, err := t.readTable(cfg.input)
	if err != nil {
		return err
	}

	gen := codegen.Config{Package: cfg.pkg, Func: cfg.fn}
	if cfg.timestamp {
		gen.Timestamp = t.now()
	}
	var buf bytes.Buffer
	if err := codegen.Generate(&buf, table, gen); err != nil {
		return err
	}

	if cfg.output == "" {
		_, err := buf.WriteTo(t.console.Out())
		return err
	}
	if err := os.WriteFile(cfg.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	t.log.Success("generated %d options into %s", len(table), cfg.output)
	return nil
}

func (t *tool) readTable(input string) ([]miniopt.Option, error) {
	if input == "" {
		return codegen.Parse(t.console.In())
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	defer f.Close()

	table, err := codegen.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return table, nil
}

// watch regenerates the output on every change of the input file until ctx
// is cancelled. Generation errors are logged and the loop keeps going.
func (t *tool) watch(ctx context.Context, cfg *config) error {
	path, err := filepath.Abs(filepath.Clean(cfg.input))
	if err != nil {
		return fmt.Errorf("resolving input: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.input, err)
	}
	t.log.Info("watching %s", cfg.input)
	t.watching()

	for {
		select {
		case <-ctx.Done():
			t.log.Info("stopped watching %s", cfg.input)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(path) || !inputChanged(event) {
				continue
			}
			t.log.Debug("file event: %v", event)
			if err := t.generate(cfg); err != nil {
				t.log.Error("%s", describe(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			t.log.Warning("watcher: %v", err)
		}
	}
}

func inputChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// describe renders err for humans, with a suggestion for mistyped options.
func describe(err error) string {
	var parseErr *miniopt.ParseError
	if errors.As(err, &parseErr) && parseErr.Suggestion != "" {
		return fmt.Sprintf("%s did you mean %s?", err, parseErr.Suggestion)
	}
	return err.Error()
}
