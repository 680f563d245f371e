// Package cli implements the castcheck command line: cast queries against a
// hierarchy file, either one-shot or in an interactive session.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/albertoruibal/kotlin/internal/config"
	"github.com/albertoruibal/kotlin/internal/diagnostics"
	"github.com/albertoruibal/kotlin/internal/hierarchy"
)

const usage = `Usage: castcheck -t <hierarchy.yaml> [options] "<type> as <type>"
       castcheck -t <hierarchy.yaml> [options] -i

Options:
  -t <file>     hierarchy description (required)
  -v <version>  language version for deprecation checks (default 2.0)
  -db <file>    append emitted diagnostics to a SQLite database
  -i            interactive session
`

// options holds the parsed command line.
type options struct {
	hierarchyPath string
	dbPath        string
	version       config.LanguageVersion
	interactive   bool
	help          bool
	query         string
}

// Run executes the command line and returns the process exit code.
func Run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "castcheck:", err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if opts.help {
		fmt.Print(usage)
		return 0
	}

	universe, err := hierarchy.Load(opts.hierarchyPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "castcheck:", err)
		return 1
	}

	session := newSession(universe, opts.version)

	if opts.interactive {
		if err := session.repl(); err != nil {
			fmt.Fprintln(os.Stderr, "castcheck:", err)
			return 1
		}
	} else {
		session.evaluate(opts.query, os.Stdout)
	}

	if opts.dbPath != "" {
		if err := persist(opts.dbPath, session.collector.Diagnostics()); err != nil {
			fmt.Fprintln(os.Stderr, "castcheck:", err)
			return 1
		}
	}

	for _, d := range session.collector.Diagnostics() {
		if d.Severity == diagnostics.SeverityError {
			return 1
		}
	}
	return 0
}

func parseArgs(args []string) (*options, error) {
	opts := &options{version: config.DefaultLanguageVersion}
	i := 0
	for i < len(args) {
		switch arg := args[i]; arg {
		case "-t":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-t requires a file")
			}
			opts.hierarchyPath = args[i]
		case "-v":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-v requires a version")
			}
			v, err := config.ParseLanguageVersion(args[i])
			if err != nil {
				return nil, err
			}
			opts.version = v
		case "-db":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-db requires a file")
			}
			opts.dbPath = args[i]
		case "-i":
			opts.interactive = true
		case "-help", "--help", "help":
			return &options{help: true}, nil
		default:
			if opts.query != "" {
				return nil, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.query = arg
		}
		i++
	}
	if opts.hierarchyPath == "" {
		return nil, fmt.Errorf("a hierarchy file is required (-t)")
	}
	if !opts.interactive && opts.query == "" {
		return nil, fmt.Errorf("nothing to do: pass a query or -i")
	}
	return opts, nil
}

func persist(path string, diags []*diagnostics.Diagnostic) error {
	store, err := diagnostics.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Write(diags)
}

// color wraps s in an ANSI color when stdout is a terminal.
func color(code, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

const (
	colorRed    = "31"
	colorYellow = "33"
	colorGreen  = "32"
)
