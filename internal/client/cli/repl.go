package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if u := a.session.Identity(); u != nil {
		return fmt.Sprintf("(%s) ", u.Email)
	}
	return ""
}

// Run restores the session and starts the read–eval–print loop. It returns
// on scanner EOF or when the user types "exit" or "quit".
func (a *App) Run(ctx context.Context) {
	printlnFn("ECG analysis service CLI (type 'help' for commands)")

	if err := a.session.Initialize(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if u := a.session.Identity(); u != nil {
		printlnFn("Welcome back,", displayName(u))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("ecg %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if !a.dispatch(ctx, parts[0], parts[1:]) {
			return
		}
	}
}

// dispatch executes one command and reports whether the loop should keep
// running. Handlers print their own errors; dispatch only validates arity.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: whoami, upload <path>, (l)ist, show <id>, preview <id>, delete <id>,")
			printlnFn("  process <id>, job <job-id>, results <id>, status <id>, reprocess <id>,")
			printlnFn("  export <id> <format>, download <filename>, formats, logout, exit")
		} else {
			printlnFn("Available commands: register, login, exit")
		}

	case "register":
		_ = a.Register(ctx)

	case "login":
		_ = a.Login(ctx)

	case "logout":
		a.Logout(ctx)

	case "whoami":
		a.WhoAmI()

	case "upload":
		if len(args) == 0 {
			printlnFn("Usage: upload <path>")
			return true
		}
		_ = a.Upload(ctx, args[0])

	case "l", "list":
		_ = a.List(ctx)

	case "show":
		withID(args, "show", func(id int64) { _ = a.Show(ctx, id) })

	case "preview":
		withID(args, "preview", func(id int64) { _ = a.Preview(ctx, id) })

	case "delete":
		withID(args, "delete", func(id int64) { _ = a.Delete(ctx, id) })

	case "process":
		withID(args, "process", func(id int64) { _ = a.Process(ctx, id) })

	case "job":
		if len(args) == 0 {
			printlnFn("Usage: job <job-id>")
			return true
		}
		_ = a.Job(ctx, args[0])

	case "results":
		withID(args, "results", func(id int64) { _ = a.Results(ctx, id) })

	case "status":
		withID(args, "status", func(id int64) { _ = a.Status(ctx, id) })

	case "reprocess":
		withID(args, "reprocess", func(id int64) { _ = a.Reprocess(ctx, id) })

	case "export":
		if len(args) < 2 {
			printlnFn("Usage: export <id> <csv|json|numpy|excel>")
			return true
		}
		withID(args, "export", func(id int64) { _ = a.Export(ctx, id, args[1]) })

	case "download":
		if len(args) == 0 {
			printlnFn("Usage: download <filename>")
			return true
		}
		_ = a.Download(ctx, args[0])

	case "formats":
		_ = a.Formats(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return false

	default:
		printlnFn("Unknown command:", cmd)
	}
	return true
}

// withID parses the first argument as a record identifier and invokes fn.
func withID(args []string, usage string, fn func(id int64)) {
	if len(args) == 0 {
		printlnFn("Usage: " + usage + " <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return
	}
	fn(id)
}
