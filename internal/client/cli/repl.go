package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the calckeeper CLI.
//
// It reads a line, parses the first token as the command and dispatches
// to methods on 'a'. The loop exits on EOF or when the user types "exit"
// or "quit".
//
//	Not logged in:
//	  - help           : show available commands
//	  - register       : create an account
//	  - login          : authenticate
//	  - exit | quit    : leave the program
//
//	Logged in:
//	  - (l)ist                 : list calculations
//	  - add <op> <a> <b>       : create a calculation
//	  - show <id>              : show one calculation
//	  - edit <id> <op> <a> <b> : replace a calculation
//	  - delete <id>            : delete a calculation
//	  - logout                 : log out
//	  - exit | quit            : leave the program
//
// Errors returned by command handlers are printed and the loop goes on.
//
// in is shared with the prompts of register and login, so lines are read
// one at a time from the same buffered reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "calc %s> ", statusFn())
		line, readErr := in.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, add <op> <a> <b>, show <id>, edit <id> <op> <a> <b>, delete <id>, logout, exit")
				fmt.Fprintln(out, "Operations: add, subtract, multiply, divide")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "add":
			err = a.Add(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "edit":
			err = a.Edit(ctx, args)

		case "delete":
			err = a.Delete(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}
