package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"moss/internal/evaluator"
	"moss/internal/object"
	"moss/internal/util"
)

// Start runs a line-oriented evaluation loop until in is exhausted. Each
// line must be one complete form; bindings accumulate in a single root
// environment for the life of the session.
func Start(in io.Reader, out io.Writer, cfg util.Configuration) {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	e := &evaluator.Evaluator{MaxDepth: cfg.MaxEvalDepth}

	errorColor := color.New(color.FgRed)
	resultColor := color.New(color.FgGreen)

	for {
		fmt.Fprint(out, cfg.Prompt)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := e.EvalProgram(line, env)
		if err != nil {
			errorColor.Fprintf(out, "%v\n", err)
			continue
		}

		resultColor.Fprintln(out, result.Inspect())
	}
}
