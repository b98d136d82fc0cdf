package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a
// recording stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Write(ctx context.Context) error
	Publish(ctx context.Context, args []string) error
	Unpublish(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Feed(ctx context.Context) error
	Read(ctx context.Context, args []string) error
	Clap(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or "exit"/"quit". Handler errors are ignored here; handlers
// report their own failures, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inkwell> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, write, publish, unpublish, list, feed, read, clap, comment, follow, unfollow, delete, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, feed, read, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "write":
			_ = a.Write(ctx)

		case "publish":
			_ = a.Publish(ctx, args)

		case "unpublish":
			_ = a.Unpublish(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "read":
			_ = a.Read(ctx, args)

		case "clap":
			_ = a.Clap(ctx, args)

		case "comment":
			_ = a.Comment(ctx, args)

		case "follow":
			_ = a.Follow(ctx, args)

		case "unfollow":
			_ = a.Unfollow(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
