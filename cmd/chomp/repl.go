package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"nickandperla.net/chomp/internal/config"
	"nickandperla.net/chomp/pkg/chomp"
)

func printBanner() {
	fmt.Println("chomp REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Statements look like:  = x + 1 2")
	fmt.Println("Commands:  :history  :quit")
	fmt.Println()
}

func runREPL(runtime *chomp.Runtime, cfg config.Config) {
	// The banner is noise when input is piped through the REPL path.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		printBanner()
	}
	runLoop(runtime, cfg)
}

func runLoop(runtime *chomp.Runtime, cfg config.Config) {
	reader := bufio.NewReader(os.Stdin)
	var multiline strings.Builder
	inMultiline := false

	for {
		if inMultiline {
			fmt.Print("... ")
		} else {
			fmt.Print(cfg.Prompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		line = strings.TrimRight(line, "\r\n")

		// Trailing backslash continues the statement list on the next
		// line, joined by a real separator.
		if strings.HasSuffix(line, "\\") {
			multiline.WriteString(strings.TrimSuffix(line, "\\"))
			multiline.WriteString("\n")
			inMultiline = true
			continue
		}

		var input string
		if inMultiline {
			multiline.WriteString(line)
			input = multiline.String()
			multiline.Reset()
			inMultiline = false
		} else {
			input = line
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		if strings.HasPrefix(input, ":") {
			if !runCommand(runtime, cfg, input) {
				return
			}
			continue
		}

		res, err := runtime.Run(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		for _, b := range res.Bindings {
			fmt.Println(b)
		}
		if !res.Success {
			fmt.Printf("Parse failed at: %q\n", res.Remaining)
		}
	}
}

// runCommand handles `:` REPL commands, reporting false on :quit.
func runCommand(runtime *chomp.Runtime, cfg config.Config, input string) bool {
	switch strings.TrimSpace(input) {
	case ":quit", ":q":
		return false
	case ":history":
		runs, err := runtime.History(cfg.HistoryLimit)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return true
		}
		for _, r := range runs {
			status := "ok"
			if !r.Success {
				status = "failed"
			}
			fmt.Printf("%s  [%s]  %s\n", r.Ts.Format("15:04:05"), status, r.Input)
		}
	default:
		fmt.Printf("Unknown command: %s\n", input)
	}
	return true
}
