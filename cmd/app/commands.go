package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/starford/reelmd/internal"
	"github.com/starford/reelmd/internal/index"
	"github.com/starford/reelmd/internal/logging"
	"github.com/starford/reelmd/internal/parser"
	"github.com/starford/reelmd/internal/quickcheck"
	"github.com/starford/reelmd/internal/storage"
	"github.com/starford/reelmd/internal/timeline"
	"github.com/starford/reelmd/internal/validator"
	pkgconfig "github.com/starford/reelmd/pkg/config"
)

// errInvalid makes the process exit 1 without an extra log line; the
// diagnostics have already been printed.
var errInvalid = errors.New("script is invalid")

const inputUsage = "<file|->"

func markdownCommands(in io.Reader, out io.Writer) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "parse",
			Usage:     "Parse a script and print its scenes and chapters",
			ArgsUsage: inputUsage,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json or yaml"},
			},
			Action: func(_ context.Context, cmd *cli.Command) error {
				src, err := readInput(in, cmd.Args().First())
				if err != nil {
					return err
				}
				doc := parser.ParseFull(src)
				switch cmd.String("format") {
				case "json":
					return writeJSON(out, doc)
				case "yaml":
					return writeYAML(out, doc)
				default:
					return fmt.Errorf("unknown format %q", cmd.String("format"))
				}
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate a script; exits 1 when it has errors or no scenes",
			ArgsUsage: inputUsage,
			Action: func(_ context.Context, cmd *cli.Command) error {
				src, err := readInput(in, cmd.Args().First())
				if err != nil {
					return err
				}
				res := validator.Validate(src)
				if err := writeJSON(out, res); err != nil {
					return err
				}
				if !res.Valid {
					return errInvalid
				}
				return nil
			},
		},
		{
			Name:      "check",
			Usage:     "Run the fast line-level syntax check",
			ArgsUsage: inputUsage,
			Action: func(_ context.Context, cmd *cli.Command) error {
				src, err := readInput(in, cmd.Args().First())
				if err != nil {
					return err
				}
				return writeJSON(out, quickcheck.Check(src))
			},
		},
		{
			Name:      "suggest",
			Usage:     "Print directive completions for a partial script",
			ArgsUsage: inputUsage,
			Action: func(_ context.Context, cmd *cli.Command) error {
				src, err := readInput(in, cmd.Args().First())
				if err != nil {
					return err
				}
				return writeJSON(out, quickcheck.Suggest(src))
			},
		},
		{
			Name:      "timeline",
			Usage:     "Print timeline segments, or the scene playing at --at seconds",
			ArgsUsage: inputUsage,
			Flags: []cli.Flag{
				&cli.FloatFlag{Name: "at", Usage: "Time in seconds"},
			},
			Action: func(_ context.Context, cmd *cli.Command) error {
				src, err := readInput(in, cmd.Args().First())
				if err != nil {
					return err
				}
				scenes := parser.Parse(src)
				if !cmd.IsSet("at") {
					return writeJSON(out, timeline.Build(scenes))
				}
				pos, ok := timeline.SceneAt(scenes, cmd.Float("at"))
				if !ok {
					return fmt.Errorf("no scene at %gs", cmd.Float("at"))
				}
				return writeJSON(out, pos)
			},
		},
		{
			Name:      "index",
			Usage:     "Index a scripts directory into the SQLite catalog",
			ArgsUsage: "<dir>",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "db", Usage: "Catalog path (default: sqlite.path from config)"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return indexDir(ctx, cmd, out)
			},
		},
	}
}

func indexDir(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOrDefault(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	dir := cmd.Args().First()
	if dir == "" {
		dir = cfg.Scripts.Path
	}
	dbPath := cmd.String("db")
	if dbPath == "" {
		dbPath = cfg.SQLite.Path
	}

	logger, closer := logging.New(os.Stderr, cfg.App.LoggingOptions())
	defer closer.Close()

	store, err := storage.NewFS(dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	db, err := index.Open(dbPath)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	stats, err := index.Sync(ctx, db, store, logger)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return writeJSON(out, map[string]int{
		"indexed":   stats.Indexed,
		"unchanged": stats.Unchanged,
		"removed":   stats.Removed,
	})
}

// readInput reads the named file, or in when name is "-" or empty.
func readInput(in io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML renders v through its JSON form so custom marshalers and field
// names carry over, keeping key order.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	clearStyle(&node)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// clearStyle drops the flow and quoting styles inherited from JSON.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
