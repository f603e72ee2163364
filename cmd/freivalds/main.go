// Command freivalds reads a claimed matrix product from a text file and
// prints whether C = A·B holds, using Freivalds' randomized check.
//
// Usage:
//
//	freivalds [-in input.txt] [-out path] [-workers N] [-seed S]
//	          [-trials K] [-short-circuit] [-log-level info]
//
// The input holds "n k" followed by A, B and C in row-major order. The
// verdict line is "A * B == C" or "A * B != C".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/freivalds/freivalds"
	"github.com/katalvlaran/freivalds/input"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Verdict lines.
const (
	lineEqual    = "A * B == C"
	lineNotEqual = "A * B != C"
)

// stdinName selects standard input for -in.
const stdinName = "-"

type config struct {
	in           string
	out          string
	workers      int
	seed         int64
	seedSet      bool // -seed given explicitly, including 0
	trials       int
	shortCircuit bool
	logLevel     slog.Level
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// parseFlags fills a config from args. Errors are usage errors.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("freivalds", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "input.txt", `input file ("-" for stdin)`)
	fs.StringVar(&cfg.out, "out", "", "output file (default stdout)")
	fs.IntVar(&cfg.workers, "workers", 0, "max concurrent trials (0 = GOMAXPROCS)")
	fs.Int64Var(&cfg.seed, "seed", 0, "base seed for reproducible runs (unset = clock)")
	fs.IntVar(&cfg.trials, "trials", -1, "override the trial count from the input (-1 = use input)")
	fs.BoolVar(&cfg.shortCircuit, "short-circuit", false, "stop scheduling trials after the first failure")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelInfo, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.workers < 0 {
		return cfg, fmt.Errorf("-workers must be >= 0, got %d", cfg.workers)
	}

	return cfg, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newLogger builds the tint console logger on w. Colors are emitted only
// when w is a terminal.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}))
}

// run is main without process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "freivalds:", err)
		return exitUsage
	}
	logger := newLogger(stderr, cfg.logLevel)

	if err = verify(ctx, cfg, stdin, stdout, logger); err != nil {
		logger.Error("verification failed", "err", err)
		return exitError
	}

	return exitOK
}

// verify decodes the problem, runs the scheduler and writes the verdict line.
func verify(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var src io.Reader = stdin
	if cfg.in != stdinName {
		f, err := os.Open(cfg.in)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	p, err := input.Decode(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.in, err)
	}
	trials := p.Trials
	if cfg.trials >= 0 {
		trials = cfg.trials
	}
	logger.Info("problem loaded", "n", p.N, "trials", trials)

	opts := []freivalds.Option{
		freivalds.WithLogger(logger),
		freivalds.WithShortCircuit(cfg.shortCircuit),
	}
	if cfg.workers > 0 {
		opts = append(opts, freivalds.WithWorkers(cfg.workers))
	}
	if cfg.seedSet {
		opts = append(opts, freivalds.WithSeed(cfg.seed))
	}

	start := time.Now()
	rep, err := freivalds.Run(ctx, p.A, p.B, p.C, trials, opts...)
	if err != nil {
		return err
	}
	logger.Info("verification done",
		"equal", rep.Equal,
		"trials", rep.Trials,
		"failed", rep.Failed,
		"workers", rep.Workers,
		"elapsed", time.Since(start),
	)

	return writeVerdict(cfg.out, stdout, rep.Equal)
}

// writeVerdict prints the verdict line to path, or to stdout when path is empty.
func writeVerdict(path string, stdout io.Writer, equal bool) error {
	line := lineNotEqual
	if equal {
		line = lineEqual
	}
	if path == "" {
		_, err := fmt.Fprintln(stdout, line)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(f, line); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
