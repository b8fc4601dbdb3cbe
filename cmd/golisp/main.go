//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command golisp is the REPL and file-runner collaborator for the lisp
// package: it owns line accumulation, prompts, and the `exit` command,
// none of which are the interpreter core's concern.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/nfiedler-lab/golisp/lisp"
)

// atExitMutex is used to modify the list of exit functions.
var atExitMutex sync.Mutex

// atExitFuncs are functions called when the program is exiting.
var atExitFuncs []func()

// RunAtExit registers a function to be invoked when Exit is called. There
// is no guarantee these functions run if the process is brought down
// abruptly (os.Exit bypasses them). They run in registration order.
func RunAtExit(fn func()) {
	atExitMutex.Lock()
	defer atExitMutex.Unlock()
	atExitFuncs = append(atExitFuncs, fn)
}

// Exit invokes every function registered with RunAtExit, then terminates
// the process. Use this instead of os.Exit in all but the most extreme
// cases.
func Exit(code int) {
	atExitMutex.Lock()
	for _, fn := range atExitFuncs {
		fn()
	}
	os.Exit(code)
}

var (
	errorColor  = color.New(color.FgRed)
	promptColor = color.New(color.FgCyan)
)

func main() {
	file := flag.String("file", "", "evaluate a file instead of starting the REPL")
	logPath := flag.String("log", "", "path to the diagnostics log (default ~/.golisp/messages.log)")
	historyPath := flag.String("history", "", "path to the REPL history file (default ~/.golisp/history)")
	flag.Parse()

	defer Exit(0)
	sessionID := uuid.New().String()
	setupLogging(*logPath)
	log.Printf("session %s starting", sessionID)

	env := lisp.Initialize()

	if *file != "" {
		if err := runFile(*file, env); err != nil {
			errorColor.Fprintln(os.Stderr, err)
			Exit(1)
		}
		return
	}
	repl(sessionID, env, *historyPath)
}

// accumulator tracks the paren-balanced input a collaborator gathers
// before handing one complete form to lisp.Read: open and close counts
// from every line seen so far, plus the source text itself.
type accumulator struct {
	text   strings.Builder
	parens int
}

// feed appends a line of input and updates the running paren count. It
// returns false, with the accumulator reset, if the count went negative
// (more close parens than open).
func (a *accumulator) feed(line string) bool {
	a.text.WriteString(line)
	a.text.WriteByte('\n')
	for _, r := range line {
		switch r {
		case '(':
			a.parens++
		case ')':
			a.parens--
		}
	}
	if a.parens < 0 {
		a.reset()
		return false
	}
	return true
}

func (a *accumulator) ready() bool {
	return a.parens == 0 && a.text.Len() > 0
}

func (a *accumulator) reset() {
	a.text.Reset()
	a.parens = 0
}

// evalOne reads and evaluates one accumulated form, printing its value or
// error, then resets the accumulator.
func evalOne(acc *accumulator, env *lisp.Environment) {
	text := acc.text.String()
	acc.reset()
	expr, perr := lisp.Read(text, env)
	if perr != nil {
		errorColor.Fprintf(os.Stderr, "Parse Error: %s\n", perr)
		return
	}
	value, eerr := lisp.Eval(expr, env)
	if eerr != nil {
		errorColor.Fprintf(os.Stderr, "Error: %s\n", eerr)
		return
	}
	fmt.Println(value)
}

// repl runs the interactive read-eval-print loop: lisp:> for a fresh
// form, > while parentheses are still open, and the literal command exit
// to quit. historyPath overrides the default ~/.golisp/history location
// when non-empty.
func repl(sessionID string, env *lisp.Environment, historyPath string) {
	historyFile := historyPath
	if historyFile == "" {
		if usr, err := user.Current(); err == nil {
			historyFile = filepath.Join(usr.HomeDir, ".golisp", "history")
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptColor.Sprint("lisp:> "),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalln(err)
	}
	defer rl.Close()

	fmt.Println("golisp — type `exit` or press Ctrl-D to quit.")
	var acc accumulator
	for {
		prompt := "lisp:> "
		if acc.parens > 0 {
			prompt = "> "
		}
		rl.SetPrompt(promptColor.Sprint(prompt))
		line, err := rl.Readline()
		if err != nil {
			log.Printf("session %s ending: %v", sessionID, err)
			return
		}
		if acc.parens == 0 && strings.TrimSpace(line) == "exit" {
			log.Printf("session %s ending: exit command", sessionID)
			return
		}
		if !acc.feed(line) {
			errorColor.Fprintln(os.Stderr, "Parse Error: Unexpected )")
			continue
		}
		if acc.ready() {
			evalOne(&acc, env)
		}
	}
}

// runFile line-accumulates a source file the same way the REPL
// accumulates typed lines, evaluating each complete top-level form in
// turn.
func runFile(path string, env *lisp.Environment) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var acc accumulator
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if !acc.feed(scanner.Text()) {
			errorColor.Fprintln(os.Stderr, "Parse Error: Unexpected )")
			continue
		}
		if acc.ready() {
			evalOne(&acc, env)
		}
	}
	return scanner.Err()
}

// setupLogging directs the standard logger to a file under the user's
// home directory so REPL diagnostics don't clutter the terminal session.
// logPath overrides the default ~/.golisp/messages.log location when
// non-empty; the parent directory is created only in the default case,
// since an explicit path is the caller's responsibility.
func setupLogging(logPath string) {
	logname := logPath
	if logname == "" {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(err)
		}
		golispDir := filepath.Join(usr.HomeDir, ".golisp")
		if _, err := os.Stat(golispDir); err != nil {
			if os.IsNotExist(err) {
				os.Mkdir(golispDir, 0755)
			} else {
				log.Fatalln(err)
			}
		}
		logname = filepath.Join(golispDir, "messages.log")
	}
	logfile, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln(err)
	}

	out := bufio.NewWriter(logfile)
	log.SetOutput(out)
	closer := func() {
		out.Flush()
		logfile.Sync()
		logfile.Close()
	}
	RunAtExit(closer)
	logSysInfo()
}

// logSysInfo writes environment details to the log file, useful when
// debugging a report from another machine.
func logSysInfo() {
	header := "-------------------------------------------------------------------------------"
	log.Println(header)
	log.Printf("Log Session: %s\n", time.Now().Format(time.ANSIC))
	log.Printf("Go Version = %s\n", runtime.Version())
	if usr, err := user.Current(); err == nil {
		log.Printf("Home Directory = %s\n", usr.HomeDir)
	}
	if pwd, err := os.Getwd(); err == nil {
		log.Printf("Current Directory = %s\n", pwd)
	}
	for _, key := range []string{"PATH", "LANG", "LC_ALL", "SHELL", "TERM"} {
		if val := os.Getenv(key); val != "" {
			log.Printf("%s = %s", key, val)
		}
	}
	log.Println(header)
}
