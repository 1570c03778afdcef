// Command monkey is the Monkey language CLI: an interactive REPL and a
// one-shot file runner on top of pkg/lexer, pkg/parser, and pkg/evaluator.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/monkeylang/monkey/pkg/diagnostics"
	"github.com/monkeylang/monkey/pkg/evaluator"
	"github.com/monkeylang/monkey/pkg/help"
	"github.com/monkeylang/monkey/pkg/object"
	"github.com/monkeylang/monkey/pkg/parser"
)

const (
	prompt          = ">> "
	historyFile     = ".monkey_history"
	parseFailBanner = "Woops! We ran into some monkey business here!"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl(os.Args[1:]))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "help", "--help", "-h":
		os.Exit(cmdHelp(os.Args[2:]))
	case "--no-history":
		os.Exit(cmdRepl(os.Args[1:]))
	default:
		if !strings.HasPrefix(os.Args[1], "-") {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "monkey: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: monkey [repl] | monkey run <file> | monkey help [topic]")
}

// cmdRun parses and evaluates a single source file (spec §6 REPL surface's
// non-interactive sibling).
func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: monkey run <file>")
		return 2
	}
	file := args[0]

	source, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "monkey: cannot read %s: %v\n", file, err)
		return 1
	}

	program, perr := parser.Parse(string(source))
	if perr != nil {
		printParseError(os.Stderr, perr)
		return 1
	}

	ev := evaluator.New(os.Stdout)
	env := object.NewEnvironment()
	result := ev.Eval(program, env)

	if object.IsError(result) {
		fmt.Fprintf(os.Stderr, "RuntimeError: %s\n", result.(*object.Error).Message)
		return 1
	}
	return 0
}

// cmdRepl implements the interactive loop described in spec §6: prompt
// ">> ", "exit" terminates, ":help [topic]" prints help text (see
// cmdHelp), a parse failure prints the banner followed by
// the error, a runtime Error prints with the "RuntimeError:" prefix, and
// anything else prints its to_string.
func cmdRepl(args []string) int {
	noHistory := false
	for _, a := range args {
		if a == "--no-history" {
			noHistory = true
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if !noHistory {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	ev := evaluator.New(os.Stdout)
	env := object.NewEnvironment()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if strings.TrimSpace(line) == "exit" {
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if fields := strings.Fields(line); fields[0] == ":help" {
			cmdHelp(fields[1:])
			continue
		}

		program, perr := parser.Parse(line)
		if perr != nil {
			printParseError(os.Stdout, perr)
			continue
		}

		result := ev.Eval(program, env)
		if object.IsError(result) {
			fmt.Printf("RuntimeError: %s\n", result.(*object.Error).Message)
			continue
		}
		fmt.Println(result.Inspect())
	}
}

func printParseError(w io.Writer, err error) {
	fmt.Fprintln(w, parseFailBanner)
	fmt.Fprintln(w, diagnostics.Format(diagnostics.FromError(err)))
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func cmdHelp(args []string) int {
	if len(args) == 0 {
		fmt.Print(help.QUICKREF)
		return 0
	}
	_, content, err := help.MatchTopic(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nAvailable topics: %s\n", err, strings.Join(help.TopicList, ", "))
		return 1
	}
	fmt.Print(content)
	return 0
}
