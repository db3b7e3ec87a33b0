package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chongchonghe/acap/internal/config"
	"github.com/chongchonghe/acap/internal/engine"
	"github.com/chongchonghe/acap/internal/history"
	"github.com/chongchonghe/acap/internal/logger"
	"github.com/chongchonghe/acap/internal/repl"
	"github.com/chongchonghe/acap/internal/web"
)

type cliOptions struct {
	serve      bool
	port       int
	digits     int
	scientific bool
	noColor    bool
	noHistory  bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	expr, opts, parseErr := parseCLIArgs(os.Args[1:])
	if parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			return nil
		}
		return parseErr
	}

	cfgPath := config.GetConfigPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Write the defaults on first run so users have a file to edit.
	if _, statErr := os.Stat(cfgPath); os.IsNotExist(statErr) {
		if saveErr := cfg.Save(cfgPath); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write default config: %v\n", saveErr)
		}
	}
	cfg.ApplyEnv()

	if opts.digits > 0 {
		cfg.Digits = opts.digits
	}
	if opts.scientific {
		cfg.Scientific = true
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	if opts.port > 0 {
		cfg.WebPort = opts.port
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer func() {
		if err != nil {
			logger.Error("fatal: %v", err)
		}
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}()

	calc := engine.New(nil, engine.Options{
		Digits:            cfg.Digits,
		Scientific:        cfg.Scientific,
		Delimiter:         cfg.Delimiter,
		RequireUnderscore: cfg.RequireUnderscore,
	})

	switch {
	case expr != "":
		return runOnce(calc, expr)
	case opts.serve:
		return runServe(calc, cfg.WebPort)
	default:
		return runInteractive(calc, cfg, opts.noHistory)
	}
}

// runOnce evaluates a single expression from the command line and prints the
// result to stdout.
func runOnce(calc *engine.Calculator, expr string) error {
	res, evalErr := calc.EvaluateLine(expr, calc.NewNamespace())
	if evalErr != nil {
		return evalErr
	}
	if res.Empty {
		return nil
	}

	fmt.Println(res.ParsedExpression)
	fmt.Printf("  = %s  (SI)\n", res.SI)
	fmt.Printf("  = %s  (CGS)\n", res.CGS)
	if res.Converted != "" {
		fmt.Printf("  = %s\n", res.Converted)
	}
	return nil
}

// runServe starts the web front end and blocks until interrupted.
func runServe(calc *engine.Calculator, port int) error {
	srv := web.NewServer(calc, port)
	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Printf("acap web at %s (Ctrl-C to stop)\n", srv.URL())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	return srv.Stop()
}

func runInteractive(calc *engine.Calculator, cfg *config.Config, noHistory bool) error {
	var store *history.Store
	if !noHistory {
		var err error
		store, err = history.NewStore(cfg.HistoryPath)
		if err != nil {
			logger.Warn("history disabled: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			defer store.Close()
		}
	}
	return repl.Run(calc, store, cfg.NoColor)
}

func parseCLIArgs(args []string) (string, *cliOptions, error) {
	fs := flag.NewFlagSet("acap", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := &cliOptions{}
	var showHelp bool

	fs.BoolVar(&opts.serve, "serve", false, "Serve the web front end instead of the terminal")
	fs.IntVar(&opts.port, "port", 0, "Web server port (default from config)")
	fs.IntVar(&opts.digits, "digits", 0, "Significant digits for results (default from config)")
	fs.BoolVar(&opts.scientific, "sci", false, "Force scientific notation")
	fs.BoolVar(&opts.noColor, "nc", false, "Disable colored output")
	fs.BoolVar(&opts.noHistory, "no-history", false, "Do not record inputs in the history database")
	fs.BoolVar(&showHelp, "help", false, "Show CLI usage information")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [\"expression\"]\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Without an expression, acap starts an interactive session.")
		fmt.Fprintln(fs.Output(), "\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", nil, flag.ErrHelp
		}
		return "", nil, err
	}
	if showHelp {
		fs.Usage()
		return "", nil, flag.ErrHelp
	}

	remaining := fs.Args()
	if opts.serve && len(remaining) > 0 {
		return "", nil, fmt.Errorf("-serve does not accept an expression")
	}

	// Two arguments are an expression plus a target unit, e.g.
	// acap "sqrt(2 G M_sun / R_sun)" km/s. Anything else joins back into
	// one expression in case the shell split an unquoted input.
	if len(remaining) == 2 && !strings.Contains(remaining[0]+remaining[1], " in ") {
		return remaining[0] + " in " + remaining[1], opts, nil
	}
	return strings.Join(remaining, " "), opts, nil
}
