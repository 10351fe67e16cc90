// Package repl implements the interactive command loop. It owns no
// calculator state; every command drives the engine.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dshills/reckon/internal/engine"
	"github.com/dshills/reckon/internal/logging"
	"github.com/dshills/reckon/internal/validate"
)

// REPL reads commands from in and writes results to out.
type REPL struct {
	eng    *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	color  bool
	logger *slog.Logger
}

// Option configures a REPL during creation.
type Option func(*REPL)

// WithColor forces colored output on or off.
func WithColor(enabled bool) Option {
	return func(r *REPL) {
		r.color = enabled
	}
}

// WithLogger sets the logger for command errors.
func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a REPL over the given engine and streams.
func New(eng *engine.Engine, in io.Reader, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		eng:    eng,
		in:     bufio.NewScanner(in),
		out:    out,
		color:  IsTerminal(out),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives the loop until the exit command or end of input.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, r.paint(ansiCyan+ansiBold, "Welcome to the Reckon calculator!"))
	fmt.Fprintln(r.out, r.paint(ansiCyan, "Type 'help' for available commands or 'exit' to quit."))
	fmt.Fprintln(r.out)

	for {
		fmt.Fprint(r.out, r.paint(ansiYellow, "calculator> "))
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}

		command := strings.ToLower(strings.TrimSpace(r.in.Text()))
		if command == "" {
			continue
		}
		if command == "exit" {
			fmt.Fprintln(r.out, r.paint(ansiCyan, "Goodbye!"))
			r.logger.Info("calculator exited")
			return nil
		}

		r.dispatch(command)
	}
}

func (r *REPL) dispatch(command string) {
	switch command {
	case "help":
		r.printHelp()
	case "history":
		r.printHistory()
	case "clear":
		r.eng.Clear()
		fmt.Fprintln(r.out, r.paint(ansiGreen, "History cleared"))
	case "undo":
		if err := r.eng.Undo(); err != nil {
			r.printError(err)
			return
		}
		fmt.Fprintln(r.out, r.paint(ansiGreen, "Undo successful"))
	case "redo":
		if err := r.eng.Redo(); err != nil {
			r.printError(err)
			return
		}
		fmt.Fprintln(r.out, r.paint(ansiGreen, "Redo successful"))
	case "save":
		path, err := r.eng.Save("")
		if err != nil {
			r.printError(err)
			return
		}
		fmt.Fprintln(r.out, r.paint(ansiGreen, "History saved to "+path))
	case "load":
		path, err := r.eng.Load("")
		if err != nil {
			r.printError(err)
			return
		}
		fmt.Fprintln(r.out, r.paint(ansiGreen, "History loaded from "+path))
	default:
		r.runOperation(command)
	}
}

func (r *REPL) runOperation(command string) {
	if err := validate.Operation(command, r.eng.Operations()); err != nil {
		fmt.Fprintln(r.out, r.paint(ansiRed,
			"Unknown command: "+command+". Type 'help' for available commands."))
		return
	}

	operand1, ok := r.prompt("Enter first number: ")
	if !ok {
		return
	}
	operand2, ok := r.prompt("Enter second number: ")
	if !ok {
		return
	}

	result, err := r.eng.Perform(command, operand1, operand2)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintln(r.out, r.paint(ansiGreen+ansiBold,
		"Result: "+strconv.FormatFloat(result, 'g', -1, 64)))
}

func (r *REPL) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, r.paint(ansiYellow, label))
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *REPL) printHistory() {
	hist := r.eng.History()
	if len(hist) == 0 {
		fmt.Fprintln(r.out, r.paint(ansiYellow, "No calculations in history"))
		return
	}
	fmt.Fprintln(r.out, r.paint(ansiCyan+ansiBold, "Calculation History:"))
	for i, c := range hist {
		fmt.Fprintln(r.out, r.paint(ansiCyan, fmt.Sprintf("%d. %s", i+1, c)))
	}
}

func (r *REPL) printHelp() {
	var b strings.Builder
	b.WriteString(r.paint(ansiCyan+ansiBold, "Calculator Commands:") + "\n")
	b.WriteString(r.paint(ansiGreen, "Arithmetic Operations:") + "\n")
	for _, name := range r.eng.Operations() {
		fmt.Fprintf(&b, "  %-15s - Perform %s operation\n", name, name)
	}
	b.WriteString("\n" + r.paint(ansiGreen, "History Management:") + "\n")
	b.WriteString("  history         - Display calculation history\n")
	b.WriteString("  clear           - Clear calculation history\n")
	b.WriteString("  undo            - Undo the last calculation\n")
	b.WriteString("  redo            - Redo the last undone calculation\n")
	b.WriteString("\n" + r.paint(ansiGreen, "File Operations:") + "\n")
	b.WriteString("  save            - Save history to CSV file\n")
	b.WriteString("  load            - Load history from CSV file\n")
	b.WriteString("\n" + r.paint(ansiGreen, "Other Commands:") + "\n")
	b.WriteString("  help            - Display this help message\n")
	b.WriteString("  exit            - Exit the calculator\n")
	fmt.Fprint(r.out, b.String())
}

func (r *REPL) printError(err error) {
	fmt.Fprintln(r.out, r.paint(ansiRed, "Error: "+err.Error()))
	r.logger.Error("command failed", "error", err)
}
