// Package repl reads literals one line at a time and prints what was read.
package repl

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ian-shakespeare/r7rs/internal/read"
	"github.com/ian-shakespeare/r7rs/pkg/iterator"
	"github.com/peterh/liner"
)

const DefaultPrompt = "r7rs> "

var exitKeywords = []string{"exit", "e", "quit", "q"}

// LineReader is the line editor the loop reads from. *liner.State satisfies
// it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type Config struct {
	Prompt string
	// Dump prints a go-spew dump after every token.
	Dump bool
}

type REPL struct {
	in     LineReader
	out    io.Writer
	config Config
	dumper *spew.ConfigState
}

func New(in LineReader, out io.Writer, config Config) *REPL {
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	return &REPL{
		in:     in,
		out:    out,
		config: config,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			ContinueOnMethod:        true,
		},
	}
}

// Run loops until an exit keyword or the end of input. Ctrl+C discards the
// current line.
func (r *REPL) Run() error {
	for {
		line, err := r.in.Prompt(r.config.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		if IsExitRequest(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		r.in.AppendHistory(line)
		r.printLine(line)
	}
}

func (r *REPL) printLine(line string) {
	for token, err := range read.NewScanner([]byte(line)).Tokens() {
		if err != nil {
			fmt.Fprintln(r.out, Diagnostic(err))
			return
		}
		fmt.Fprintln(r.out, token)
		if r.config.Dump {
			r.dumper.Fdump(r.out, token)
		}
	}
}

func IsExitRequest(line string) bool {
	return slices.Contains(exitKeywords, strings.TrimSpace(line))
}

// Diagnostic formats a read failure, telling input that ended too early apart
// from input that can never be read.
func Diagnostic(err error) string {
	if read.IsIncomplete(err) {
		return "Incomplete: " + err.Error()
	}
	return "Error: " + err.Error()
}

// Eval renders every literal of line, one per output line. The literals read
// before a failure are returned along with the error.
func Eval(line string) (string, error) {
	tokens, err := iterator.CollectUntilError(read.NewScanner([]byte(line)).Tokens())
	rendered := iterator.Collect(iterator.Map(slices.Values(tokens), read.Token.String))
	return strings.Join(rendered, "\n"), err
}
