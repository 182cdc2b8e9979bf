package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dzonerzy/go-miniopt/miniopt"
)

const (
	envPackage   = "MINIOPT_PACKAGE"
	envFunc      = "MINIOPT_FUNC"
	envTimestamp = "MINIOPT_TIMESTAMP"
)

const (
	keyPackage   = "package"
	keyFunc      = "func"
	keyTimestamp = "timestamp"
)

var options = []miniopt.Option{
	{Short: 'o', Long: "out", ArgHint: "<file>", Description: "write the generated code to file\ninstead of stdout."},
	{Short: 'p', Long: "package", ArgHint: "<name>", Description: "package clause of the generated file\n(default main)."},
	{Short: 'f', Long: "func", ArgHint: "<name>", Description: "name of the generated parse function\n(default parseArgs)."},
	{Short: 't', Long: "timestamp", Description: "stamp the generation time in the header."},
	{Short: 'w', Long: "watch", Description: "regenerate whenever the input file changes."},
	{Short: 'q', Long: "quiet", Description: "only log warnings and errors."},
	{Short: 'h', Long: "help", Description: "show help."},
	{Short: 'v', Long: "version", Description: "show version."},
}

// indexes into options
const (
	optOut = iota
	optPackage
	optFunc
	optTimestamp
	optWatch
	optQuiet
	optHelp
	optVersion
)

var (
	errTooManyInputs = errors.New("only one input file can be given")
	errWatchFiles    = errors.New("--watch needs an input file and --out")
	errSameFile      = errors.New("input and output are the same file")
)

// sourceType orders the layers a setting can come from, lowest first.
type sourceType int

const (
	sourceDefaults sourceType = iota
	sourceEnv
	sourceFlags
)

func (s sourceType) String() string {
	switch s {
	case sourceDefaults:
		return "defaults"
	case sourceEnv:
		return "environment"
	case sourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// layers resolves a setting to the value of its highest priority source.
type layers struct {
	sources [sourceFlags + 1]map[string]string
}

func newLayers() *layers {
	l := &layers{}
	for i := range l.sources {
		l.sources[i] = make(map[string]string)
	}
	return l
}

func (l *layers) set(src sourceType, key, value string) { l.sources[src][key] = value }

func (l *layers) resolve(key string) (string, sourceType) {
	for src := sourceFlags; src >= sourceDefaults; src-- {
		if v, ok := l.sources[src][key]; ok {
			return v, src
		}
	}
	return "", sourceDefaults
}

type config struct {
	input     string
	output    string
	pkg       string
	fn        string
	timestamp bool
	watch     bool
	quiet     bool
	help      bool
	version   bool

	// where each generator setting came from, for debug logging
	origin map[string]sourceType
}

// parseArgs resolves the tool configuration: flags override the
// environment, which overrides the defaults.
func parseArgs(args []string, getenv func(string) string) (*config, error) {
	settings := newLayers()
	settings.set(sourceDefaults, keyPackage, "main")
	settings.set(sourceDefaults, keyFunc, "parseArgs")
	settings.set(sourceDefaults, keyTimestamp, "false")
	for key, env := range map[string]string{keyPackage: envPackage, keyFunc: envFunc, keyTimestamp: envTimestamp} {
		if v := getenv(env); v != "" {
			settings.set(sourceEnv, key, v)
		}
	}

	cfg := &config{}
	s, err := miniopt.NewSession(args, options)
	if err != nil {
		return nil, err
	}
	for s.Next() == miniopt.StatusPass {
		arg, _ := s.Arg()
		switch s.Index() {
		case optOut:
			cfg.output = arg
		case optPackage:
			settings.set(sourceFlags, keyPackage, arg)
		case optFunc:
			settings.set(sourceFlags, keyFunc, arg)
		case optTimestamp:
			settings.set(sourceFlags, keyTimestamp, "true")
		case optWatch:
			cfg.watch = true
		case optQuiet:
			cfg.quiet = true
		case optHelp:
			cfg.help = true
		case optVersion:
			cfg.version = true
		default:
			if cfg.input != "" {
				return nil, errTooManyInputs
			}
			cfg.input = arg
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	cfg.origin = make(map[string]sourceType, 3)
	cfg.pkg, cfg.origin[keyPackage] = settings.resolve(keyPackage)
	cfg.fn, cfg.origin[keyFunc] = settings.resolve(keyFunc)
	stamp, src := settings.resolve(keyTimestamp)
	cfg.origin[keyTimestamp] = src
	if cfg.timestamp, err = strconv.ParseBool(stamp); err != nil {
		return nil, fmt.Errorf("%s: invalid boolean %q", envTimestamp, stamp)
	}

	if cfg.watch && (cfg.input == "" || cfg.output == "") {
		return nil, errWatchFiles
	}
	return cfg, nil
}
