package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/garden/internal/client/client"
	"github.com/dmitrijs2005/garden/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// printFn writes the prompt without a trailing newline.
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Garden(ctx context.Context, author string) error
	Refresh(ctx context.Context) error
	Down(ctx context.Context) error
	Up(ctx context.Context) error
	Plant(ctx context.Context) error
	Like(ctx context.Context, ref string) error
	Unlike(ctx context.Context, ref string) error
	Avatar(ctx context.Context, path string) error
}

const (
	helpAnonymous = "Available commands: register, login, (g)arden [name], (d)own, (u)p, refresh, exit"
	helpLoggedIn  = "Available commands: (g)arden [name], (d)own, (u)p, refresh, plant, like <n|id>, unlike <n|id>, avatar <path>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the Garden CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help              show available commands
//	  - garden [name]     show everyone's garden, or the garden of one author
//	  - down | up         scroll the list; the next page loads near the end
//	  - refresh           reload the current garden from the first page
//	  - exit | quit       leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - plant             plant a new seed
//	  - like <n|id>       like the n-th listed seed or a seed id
//	  - unlike <n|id>     remove your like
//	  - avatar <path>     upload an avatar image
//	  - logout
//
// Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("garden %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "g", "garden":
			cmdErr = a.Garden(ctx, strings.Join(args, " "))

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "d", "down":
			cmdErr = a.Down(ctx)

		case "u", "up":
			cmdErr = a.Up(ctx)

		case "plant":
			cmdErr = a.Plant(ctx)

		case "like", "unlike":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <n|id>", cmd))
				continue
			}
			if cmd == "like" {
				cmdErr = a.Like(ctx, args[0])
			} else {
				cmdErr = a.Unlike(ctx, args[0])
			}

		case "avatar":
			if len(args) != 1 {
				printlnFn("Usage: avatar <path>")
				continue
			}
			cmdErr = a.Avatar(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describeError(cmdErr))
		}

		if err != nil {
			return
		}
	}
}

// describeError turns service errors into short user-facing messages.
func describeError(err error) string {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, errLoginRequired):
		return "please log in first"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, common.ErrorConflict):
		return "already exists"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	default:
		return err.Error()
	}
}
