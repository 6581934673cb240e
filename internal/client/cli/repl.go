package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printFn and printlnFn are test seams for the REPL's own output.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	NewEntry(ctx context.Context) error
	EditEntry(ctx context.Context, id string) error
	DeleteEntry(ctx context.Context, id string) error
	Timeline(ctx context.Context) error
	Toggle(ctx context.Context, group string, expand bool) error
	Insights(ctx context.Context, daily bool) error
	Refresh(ctx context.Context) error
	Copy(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: new, edit <id>, delete <id>, (t)imeline, more <group>, less <group>, insights [daily], refresh, copy, logout, exit"
	loginFirst    = "Please log in first (type 'login' or 'register')."
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Not logged in:
//	  - help               show available commands
//	  - register           create an account
//	  - login              authenticate
//	  - exit | quit        leave the program
//
//	Logged in:
//	  - new                write an entry
//	  - edit <id>          edit an entry (id or unique id prefix)
//	  - delete <id>        delete an entry after confirmation
//	  - t | timeline       show entries grouped by recency
//	  - more | less <g>    expand or collapse a timeline group
//	  - insights [daily]   weekly mood distribution or daily trend
//	  - refresh            reload entries from the server
//	  - copy               copy the last vibe check to the clipboard
//	  - logout             log out
//
// Errors returned by handlers are ignored here; handlers report their own
// errors. The loop exits on end of input or on "exit" / "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("mj %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !isEntryCommand(cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn(loginFirst)
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "new":
			_ = a.NewEntry(ctx)
		case "edit":
			_ = a.EditEntry(ctx, arg)
		case "delete", "rm":
			_ = a.DeleteEntry(ctx, arg)
		case "t", "timeline":
			_ = a.Timeline(ctx)
		case "more", "less":
			if arg == "" {
				printlnFn(fmt.Sprintf("Usage: %s <today|yesterday|last week|older>", cmd))
				continue
			}
			_ = a.Toggle(ctx, arg, cmd == "more")
		case "insights":
			_ = a.Insights(ctx, strings.EqualFold(arg, "daily"))
		case "refresh":
			_ = a.Refresh(ctx)
		case "copy":
			_ = a.Copy(ctx)
		}
	}
}

func isEntryCommand(cmd string) bool {
	switch cmd {
	case "logout", "new", "edit", "delete", "rm", "t", "timeline", "more", "less", "insights", "refresh", "copy":
		return true
	}
	return false
}
