package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ian-shakespeare/r7rs/internal/repl"
	"github.com/peterh/liner"
)

const historyFile = ".r7rs_history"

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func main() {
	prompt := flag.String("prompt", repl.DefaultPrompt, "prompt shown before each line")
	history := flag.String("history", defaultHistoryPath(), "history file; empty disables history")
	dump := flag.Bool("dump", false, "dump every token read")
	expr := flag.String("e", "", "read the literals of one line, print them and exit")
	flag.Parse()

	if *expr != "" {
		out, err := repl.Eval(*expr)
		if out != "" {
			fmt.Println(out)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, repl.Diagnostic(err))
			os.Exit(1)
		}
		return
	}

	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	if *history != "" {
		if f, err := os.Open(*history); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Printf("reading history %s: %v", *history, err)
			}
			f.Close()
		}
	}

	runErr := repl.New(ln, os.Stdout, repl.Config{Prompt: *prompt, Dump: *dump}).Run()

	if *history != "" {
		if f, err := os.Create(*history); err != nil {
			log.Printf("writing history %s: %v", *history, err)
		} else {
			if _, err := ln.WriteHistory(f); err != nil {
				log.Printf("writing history %s: %v", *history, err)
			}
			f.Close()
		}
	}
	ln.Close()

	if runErr != nil {
		log.Fatal(runErr.Error())
	}
}
