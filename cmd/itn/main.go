// Command itn converts spoken-form English to written form.
//
// Text is taken from the arguments or, when there are none, read from
// standard input one line at a time:
//
//	itn normalize twenty one                  # 21
//	echo "I have twenty one apples" | itn sentence
//	itn extract "I paid five dollars"         # JSON matches
//	itn spell --ordinal 21                    # twenty first
//	itn batch corpus/ --out normalized/       # every .txt file, in parallel
//	itn serve --addr :8080                    # HTTP and WebSocket API
//	itn rules check rules.toml
//
// Defaults come from the environment (ITN_MAX_SPAN, ITN_RULES_FILE,
// ITN_PUNCTUATION, ITN_LOG_LEVEL, ITN_LOG_FORMAT, PORT) and a .env file in
// the working directory; flags override them.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/az-ai-labs/en-itn/internal/config"
	"github.com/az-ai-labs/en-itn/internal/logging"
	"github.com/az-ai-labs/en-itn/normalize"
	"github.com/az-ai-labs/en-itn/rules"
)

// maxLineBytes bounds a single input line; the engine passes longer input
// through unchanged anyway.
const maxLineBytes = 1 << 20

// Globals are the flags shared by every command.
type Globals struct {
	RulesFile   string `name:"rules" help:"TOML rule file to load" default:"${rules_file}"`
	MaxSpan     int    `name:"max-span" help:"Maximum words per sentence-mode span" default:"${max_span}"`
	Punctuation bool   `help:"Convert spoken punctuation (\"question mark\" to \"?\")" default:"${punctuation}" negatable:""`
	LogLevel    string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"${log_level}"`
	LogFormat   string `name:"log-format" help:"Log format" enum:"json,text" default:"${log_format}"`
}

// CLI defines the command-line interface for itn.
type CLI struct {
	Globals

	Normalize NormalizeCmd `cmd:"" help:"Convert each input as a single expression"`
	Sentence  SentenceCmd  `cmd:"" help:"Convert every expression inside running text"`
	Extract   ExtractCmd   `cmd:"" help:"Print the replacements sentence mode would make, as JSON"`
	Spell     SpellCmd     `cmd:"" help:"Print the spoken form of integers"`
	Batch     BatchCmd     `cmd:"" help:"Convert every text file in a directory"`
	Serve     ServeCmd     `cmd:"" help:"Start the HTTP and WebSocket server"`
	Rules     RulesGroup   `cmd:"" help:"Rule file operations"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// app is what command Run methods receive.
type app struct {
	*Globals
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
	addr   string // default listen address from the environment
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "itn:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("itn"),
		kong.Description("Inverse text normalization for English: spoken form to written form."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"rules_file":  cfg.RulesFile,
			"max_span":    strconv.Itoa(cfg.MaxSpan),
			"punctuation": strconv.FormatBool(cfg.Punctuation),
			"log_level":   cfg.LogLevel,
			"log_format":  cfg.LogFormat,
		},
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}

	return ctx.Run(&app{
		Globals: &cli.Globals,
		stdin:   stdin,
		stdout:  stdout,
		logger:  logging.New(stderr, level, format),
		addr:    cfg.ListenAddr,
	})
}

// engine builds an engine from the global flags.
func (a *app) engine() (*normalize.Engine, error) {
	reg := rules.NewRegistry()
	if a.RulesFile != "" {
		n, err := reg.LoadFile(a.RulesFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("rules loaded", "file", a.RulesFile, "count", n)
	}
	return normalize.New(
		normalize.WithRules(reg),
		normalize.WithMaxSpan(a.MaxSpan),
		normalize.WithPunctuation(a.Punctuation),
		normalize.WithLogger(a.logger),
	), nil
}

// inputs calls fn with the joined arguments, or with every line of stdin
// when there are no arguments.
func (a *app) inputs(args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}
	sc := bufio.NewScanner(a.stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.stdout, "itn version %s\n", normalize.Version())
	return nil
}
