/*
File    : cortado/repl/repl.go
Package : repl

Interactive shell for cortado, grounded on the teacher's repl/repl.go
banner/prompt/color scheme and its use of github.com/chzyer/readline
for line editing/history and github.com/fatih/color for colored
output. Unlike the teacher's REPL — which evaluated each line as a
fresh, independent program — this REPL keeps one persistent evaluator
across lines, so a variable or function defined on one line stays
visible on the next, matching the core's "variables/functions live for
program start" model (§3.3) extended across an interactive session.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/bencinn/cortado/eval"
	"github.com/bencinn/cortado/parser"
)

const banner = `cortado — type an expression or statement, ';' optional.
/vars  lists current top-level variables
/exit  leaves the shell
`

// Run starts an interactive session reading from a readline-backed
// terminal, echoing evaluated results and diagnostics to out via color
// (green banner, yellow results, red errors).
func Run(out io.Writer, stdin io.Reader, enabled []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "cortado> ",
		HistoryFile: "",
		Stdout:      out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	color.Output = out
	color.New(color.FgGreen).Fprint(out, banner)

	ev := eval.New(out, stdin, enabled)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "/exit":
			return nil
		case "/vars":
			printVars(out, ev)
			continue
		}

		if err := evalLine(ev, line); err != nil {
			color.New(color.FgRed).Fprintf(out, "error: %s\n", err)
			continue
		}
	}
}

// evalLine parses line as a standalone program and runs it against
// ev's persistent frame, printing its result in yellow.
func evalLine(ev *eval.Evaluator, line string) error {
	if !strings.HasSuffix(line, ";") {
		line += ";"
	}
	program, err := parser.Parse(line)
	if err != nil {
		return err
	}
	result, err := ev.Run(program)
	if err != nil {
		return err
	}
	color.New(color.FgYellow).Fprintf(color.Output, "%s\n", result.String())
	return nil
}

func printVars(out io.Writer, ev *eval.Evaluator) {
	names := ev.VariableNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "(no variables bound)")
		return
	}
	for _, name := range names {
		v, _ := ev.Lookup(name)
		fmt.Fprintf(out, "%s = %s\n", name, v.String())
	}
}
