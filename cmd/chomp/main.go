// Command chomp is the chomp parser CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"nickandperla.net/chomp/internal/config"
	"nickandperla.net/chomp/pkg/chomp"
)

func main() {
	var (
		evalStr    = flag.String("e", "", "Parse the given program string")
		file       = flag.String("f", "", "Parse a program file")
		metaDSL    = flag.String("m", "", "Compile a meta-language description and replay it against the input")
		parserName = flag.String("p", "", "Apply one named parser to the input")
		dbPath     = flag.String("db", "", "SQLite run-history path (overrides config)")
		configPath = flag.String("config", "", "Config file path (TOML)")
		noColor    = flag.Bool("no-color", false, "Disable styled diagnostics")
		debug      = flag.Bool("debug", false, "Print parse-failure diagnostics to stderr")
	)

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *noColor {
		cfg.Color = false
	}
	if *debug {
		cfg.Debug = true
	}

	opts := []chomp.Option{chomp.WithColor(cfg.Color)}
	if cfg.Debug {
		opts = append(opts, chomp.WithDiagnostics())
	}
	if cfg.DBPath != "" {
		opts = append(opts, chomp.WithSQLiteStore(cfg.DBPath))
	} else {
		opts = append(opts, chomp.WithMemoryStore())
	}

	runtime := chomp.New(opts...)
	defer runtime.Close()

	input, haveInput, err := readInput(*evalStr, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *metaDSL != "":
		if !haveInput {
			fmt.Fprintln(os.Stderr, "Error: -m needs input from -e, -f, or stdin")
			os.Exit(1)
		}
		res, err := runtime.RunMeta(*metaDSL, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printPipeline(res)

	case *parserName != "":
		if !haveInput {
			fmt.Fprintln(os.Stderr, "Error: -p needs input from -e, -f, or stdin")
			os.Exit(1)
		}
		res, err := runtime.RunParser(*parserName, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printPipeline(res)

	case haveInput:
		res, err := runtime.Run(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printProgram(res)

	default:
		runREPL(runtime, cfg)
	}
}

// loadConfig reads the explicit path, or the default location when none is
// given.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(filepath.Join(dir, "chomp", "config.toml"), false)
}

// readInput resolves the target input: -e wins, then -f, then piped stdin.
func readInput(evalStr, file string) (string, bool, error) {
	if evalStr != "" {
		return evalStr, true, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	}
	if !isTerminal(os.Stdin) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	}
	return "", false, nil
}

func printProgram(res chomp.Result) {
	for _, b := range res.Bindings {
		fmt.Println(b)
	}
	if !res.Success {
		fmt.Fprintf(os.Stderr, "Parse failed at: %q\n", res.Remaining)
		os.Exit(1)
	}
}

// printPipeline shows what a replayed meta pipeline observed: the chomp it
// accumulated and what it left unconsumed.
func printPipeline(res chomp.Result) {
	for _, b := range res.Bindings {
		fmt.Println(b)
	}
	fmt.Printf("chomp: %q\n", res.Chomp)
	fmt.Printf("remaining: %q\n", res.Remaining)
	if !res.Success {
		fmt.Fprintln(os.Stderr, "Pipeline did not match")
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
