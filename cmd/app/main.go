package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"moss/internal/evaluator"
	"moss/internal/lexer"
	"moss/internal/object"
	"moss/internal/parser"
	"moss/internal/repl"
	"moss/internal/util"
)

// demoProgram exercises recursion, closures, and list surgery in one go.
const demoProgram = `(progn
		(define map
			(lambda (f l)
				(if (atom l)
					NIL
					(cons
						(f (car l))
						(map f (cdr l))
					)
				)
			)
		)
		(define K 7)
		(define mulK
			(lambda (x)
				(progn
					(define L (+ K 1))
					(* x L)
				)
			)
		)
		(map mulK (quote (1 2 3)))
	)`

var (
	// Version is the current version of the moss binary, injected at build time.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// program sources
	program string
	demo    bool
	// evaluator config
	configFile string
	maxDepth   int
	// parser config
	debugAST bool
	// logging
	logLevel string
	logFile  string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// program sources
	flag.StringVar(&program, "e", "", "Evaluate the given program text and exit")
	flag.BoolVar(&demo, "demo", false, "Evaluate the built-in demonstration program and exit")
	// evaluator config
	flag.StringVar(&configFile, "config", "", "Path to a TOML configuration file")
	flag.IntVar(&maxDepth, "depth", evaluator.DefaultMaxDepth, "Maximum evaluation depth; 0 disables the guard")
	// parser config
	flag.BoolVar(&debugAST, "debug-ast", false, "Render the parsed program as a JSON file")
	// log config
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	cfg := loadConfiguration()

	// Creates a new Logger that uses a JSONHandler to write to stderr or the
	// configured log file
	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(cfg.LogLevel),
	}
	logWriter := configureLogWriter(cfg.LogFile)
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	switch {
	case program != "":
		run(program, cfg)
	case demo:
		run(demoProgram, cfg)
	case flag.Arg(0) != "":
		src, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "moss: %v\n", err)
			os.Exit(1)
		}
		run(string(src), cfg)
	default:
		repl.Start(os.Stdin, os.Stdout, cfg)
	}
}

// loadConfiguration layers defaults, then the optional config file, then any
// flags given explicitly on the command line.
func loadConfiguration() util.Configuration {
	cfg := util.DefaultConfiguration()

	if configFile != "" {
		loaded, err := util.LoadConfiguration(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v; continuing with defaults\n", err)
		} else {
			cfg = loaded
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-file":
			cfg.LogFile = logFile
		case "depth":
			cfg.MaxEvalDepth = maxDepth
		case "debug-ast":
			cfg.DebugJsonAST = debugAST
		}
	})

	cfg.Version = Version
	cfg.BuildDate = BuildDate
	cfg.Commit = Commit
	return cfg
}

func run(src string, cfg util.Configuration) {
	if cfg.DebugJsonAST {
		writeAST(src)
	}

	env := object.NewEnvironment()
	e := &evaluator.Evaluator{MaxDepth: cfg.MaxEvalDepth}

	result, err := e.EvalProgram(src, env)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "moss: %v\n", err)
		os.Exit(1)
	}

	// Nil results stay silent, matching evaluation of pure definitions.
	if result.Type() != object.NIL_OBJ {
		fmt.Println(result.Inspect())
	}
}

func writeAST(src string) {
	parsed, err := parser.New(lexer.Tokenize(src)).ParseProgram()
	if err != nil {
		slog.Warn("skipping AST dump", slog.String("error", err.Error()))
		return
	}

	name := flag.Arg(0)
	if name == "" {
		name = "program"
	}
	out := strings.TrimSuffix(name, filepath.Ext(name)) + ".ast.json"
	if err := parser.WriteASTToJSON(parsed, out); err != nil {
		slog.Warn("failed to write AST dump", slog.String("error", err.Error()))
	}
}

func configureLogWriter(logFile string) *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		// Create parent directories if they don't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func printVersion() {

	fmt.Printf("moss version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: moss [options] [filename]

Options:
  -e <program>       Evaluate the given program text and exit.
  -demo              Evaluate the built-in demonstration program and exit.
  -config <path>     Load settings from a TOML configuration file.
  -depth <n>         Set the maximum evaluation depth. 0 disables the guard.
  -debug-ast         Render the parsed program as a JSON file.
  -help              Display this help information and exit.
  -version           Display version information and exit.
  -log-level <level> Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>   Specify a log file to write logs. Default is stderr.

Details:
This is the moss programming language.

Examples:
  moss                          Start an interactive session
  moss -log-level=debug         Start with debug logging enabled
  moss myfile.moss              Evaluate the provided moss file
  moss -e "(+ 1 2)"             Evaluate a program given on the command line

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
