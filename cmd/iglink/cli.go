package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bunchhieng/iglink/internal/app"
	igcli "github.com/bunchhieng/iglink/internal/cli"
	"github.com/bunchhieng/iglink/internal/tui"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	defaults := app.DefaultConfig()

	a := &cli.App{
		Name:    "iglink",
		Usage:   "Inspect Instagram links, shortcodes and CDN URLs",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: defaults.LogLevel, EnvVars: []string{app.EnvPrefix + "LOG_LEVEL"}, Usage: "Log level: debug|info|warn|error"},
			&cli.BoolFlag{Name: "no-color", EnvVars: []string{"NO_COLOR", app.EnvPrefix + "NO_COLOR"}, Usage: "Disable colored output"},
			&cli.BoolFlag{Name: "json", EnvVars: []string{app.EnvPrefix + "JSON"}, Usage: "Print results as JSON"},
		},
		Commands: []*cli.Command{
			parseCmd(),
			encodeCmd(),
			decodeCmd(),
			cdnCmd(),
			hashtagsCmd(),
			filterCmd(),
			permissionsCmd(),
			tuiCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	a.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return a
}

// commands builds the command runner from the global flags.
func commands(c *cli.Context) (*igcli.Commands, error) {
	cfg := app.Config{
		LogLevel: c.String("log-level"),
		NoColor:  c.Bool("no-color"),
		JSON:     c.Bool("json"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	return igcli.NewCommands(c.App.Writer, logger, !cfg.NoColor, cfg.JSON), nil
}

// withCommands runs fn with a command runner and flushes its logger afterwards.
func withCommands(c *cli.Context, fn func(*igcli.Commands) error) error {
	cmds, err := commands(c)
	if err != nil {
		return err
	}
	defer func() { _ = cmds.Close() }()
	return fn(cmds)
}

// parseCmd creates the parse command.
func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Classify Instagram post, story, highlight, IGTV and reel URLs",
		ArgsUsage: "<url> [url...]",
		Action: func(c *cli.Context) error {
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.Parse(c.Args().Slice()...)
			})
		},
	}
}

// encodeCmd creates the encode command.
func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Convert media identifiers to shortcodes",
		ArgsUsage: "<id> [id...]",
		Action: func(c *cli.Context) error {
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.Encode(c.Args().Slice()...)
			})
		},
	}
}

// decodeCmd creates the decode command.
func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Convert public or private shortcodes to media identifiers",
		ArgsUsage: "<shortcode> [shortcode...]",
		Action: func(c *cli.Context) error {
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.Decode(c.Args().Slice()...)
			})
		},
	}
}

// cdnCmd creates the cdn command.
func cdnCmd() *cli.Command {
	return &cli.Command{
		Name:      "cdn",
		Usage:     "Report when a signed CDN URL expires",
		ArgsUsage: "<url>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: iglink cdn <url>")
			}
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.CDN(c.Args().First(), time.Now())
			})
		},
	}
}

// hashtagsCmd creates the hashtags command.
func hashtagsCmd() *cli.Command {
	return &cli.Command{
		Name:      "hashtags",
		Usage:     "Extract hashtags from text (reads stdin when no text is given)",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			text := strings.Join(c.Args().Slice(), " ")
			if text == "" {
				var err error
				if text, err = readInput(c.App.Reader); err != nil {
					return err
				}
			}
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.Hashtags(text)
			})
		},
	}
}

// filterCmd creates the filter command.
func filterCmd() *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "Look up the name of a filter_type id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: iglink filter <id>")
			}
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.Filter(c.Args().First())
			})
		},
	}
}

// permissionsCmd creates the permissions command.
func permissionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "permissions",
		Usage: "List known Graph API permission scopes",
		Action: func(c *cli.Context) error {
			return withCommands(c, func(cmds *igcli.Commands) error {
				return cmds.Permissions()
			})
		},
	}
}

// tuiCmd creates the tui command.
func tuiCmd() *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Classify links interactively",
		ArgsUsage: "[url...]",
		Action: func(c *cli.Context) error {
			return tui.Run(c.Args().Slice())
		},
	}
}

// readInput reads all of r, refusing to block on an interactive terminal.
func readInput(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("text required: pass it as arguments or pipe it via stdin")
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
