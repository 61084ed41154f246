package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hustlebot/internal/config"
	"hustlebot/internal/db"
	"hustlebot/internal/intent"
	"hustlebot/internal/logger"
	"hustlebot/internal/reply"
	"hustlebot/internal/store"
)

type options struct {
	help    bool
	persist string
	history int
	message string
}

// parseArgs reads the flag-ish arguments; everything unrecognized is joined,
// in order, into the one-shot message. The --say value is part of that join,
// so `--say exit` is a message to answer, never an exit command.
func parseArgs(args []string) (options, error) {
	var opts options
	var parts []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			opts.help = true
		case "--say":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--say requires a message")
			}
			i++
			parts = append(parts, args[i])
		case "--persist":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--persist requires a file path")
			}
			i++
			opts.persist = args[i]
		case "--history":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--history requires a count")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("--history wants a positive number, got %q", args[i])
			}
			opts.history = n
		default:
			parts = append(parts, args[i])
		}
	}
	opts.message = strings.Join(parts, " ")
	return opts, nil
}

func usage(w io.Writer, botName string) {
	fmt.Fprintf(w, `%s: a terminal chatbot for the aspiring entrepreneur.

Usage:
  hustlebot [options] [message]

Options:
  --say <text>       Send one message, print the reply, and exit.
  --persist <file>   Keep the session log in <file> as JSON.
  --history <n>      Print the last n recorded turns and exit.
  -h, --help         Show this help.

Any other arguments are joined into a single message, so
  hustlebot got any business ideas
works the same as --say "got any business ideas".

Environment:
  HUSTLEBOT_NAME            Bot display name (default HustleBot).
  HUSTLEBOT_USER            Session user id (default local).
  HUSTLEBOT_SESSIONS_FILE   Default session file; --persist overrides it.
  HUSTLEBOT_RESPONSES       YAML response pack replacing built-in replies.
  HUSTLEBOT_ARCHIVE_DRIVER  Turn archive driver (sqlite3 or postgres).
  HUSTLEBOT_ARCHIVE_DSN     DSN for the turn archive.
  HUSTLEBOT_DEBUG           Log diagnostics to stderr.

With no message %s starts an interactive chat. Type 'exit', 'quit', or
'bye' (or an empty line) to leave.
`, botName, botName)
}

func main() {
	cfg := config.Load()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hustlebot: %v\n", err)
		os.Exit(2)
	}
	if opts.help {
		usage(os.Stdout, cfg.BotName)
		return
	}
	if opts.persist != "" {
		cfg.SessionsFile = opts.persist
	}

	diag := logger.Discard()
	if cfg.Debug {
		diag = logger.New(os.Stderr)
	}

	var templates reply.TemplateSet
	var knowledge reply.Knowledge
	if cfg.ResponsePack != "" {
		ts, kn, err := reply.LoadPack(cfg.ResponsePack)
		if err != nil {
			diag.Warnf("response pack %s unusable, using built-ins: %v", cfg.ResponsePack, err)
		} else {
			templates, knowledge = ts, kn
		}
	}

	var archive *store.ArchiveStore
	if cfg.ArchiveDriver != "" {
		database, err := db.New(cfg.ArchiveDriver, cfg.ArchiveDSN)
		if err != nil {
			diag.Warnf("turn archive disabled: %v", err)
		} else if err := database.Migrate(); err != nil {
			diag.Warnf("turn archive disabled: %v", err)
			database.Close()
		} else {
			defer database.Close()
			runID := uuid.NewString()
			archive = store.NewArchiveStore(database, runID)
			diag.Infof("archiving turns to %s (run %s)", cfg.ArchiveDriver, runID)
		}
	}

	var file *store.SessionFile
	if cfg.SessionsFile != "" {
		file = store.NewSessionFile(cfg.SessionsFile)
	}

	st := store.NewMemoryStore(file, archive, diag)
	gen := reply.NewGenerator(st, nil, templates, knowledge)

	switch {
	case opts.history > 0:
		printHistory(os.Stdout, st, cfg.UserID, opts.history)
	case opts.message != "":
		runOnce(os.Stdout, gen, cfg.UserID, opts.message)
	default:
		runREPL(os.Stdin, os.Stdout, gen, cfg.UserID, cfg.BotName)
	}
}

// runOnce answers a single message. The printed intent is the classifier's
// reading; the reply may still come from an overridden category.
func runOnce(out io.Writer, gen *reply.Generator, userID, message string) {
	kind := intent.Detect(message)
	fmt.Fprintf(out, "intent: %s\n", kind)
	fmt.Fprintln(out, gen.Respond(userID, message, kind))
}

func runREPL(in io.Reader, out io.Writer, gen *reply.Generator, userID, botName string) {
	fmt.Fprintf(out, "Chat with %s! Type 'exit', 'quit', or 'bye' to leave.\n", botName)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return
		}
		if isExitWord(input) {
			fmt.Fprintf(out, "%s: Catch you on the flip side. Keep hustling! 👋\n", botName)
			return
		}
		fmt.Fprintf(out, "%s: %s\n", botName, gen.Respond(userID, input, intent.Detect(input)))
	}
}

func isExitWord(s string) bool {
	switch strings.ToLower(s) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}

func printHistory(out io.Writer, st *store.MemoryStore, userID string, limit int) {
	turns := st.Get(userID, limit)
	if len(turns) == 0 {
		fmt.Fprintln(out, "No recorded turns yet.")
		return
	}
	for _, t := range turns {
		stamp := time.Unix(t.Timestamp, 0).Format("2006-01-02 15:04:05")
		fmt.Fprintf(out, "[%s] %s: %s\n", stamp, t.Role, t.Text)
	}
}
