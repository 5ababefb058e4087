package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"

	"github.com/aglyzov/go-veb/wordscan"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "vebbench",
		Usage:   "van Emde Boas tree benchmark driver",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			EnvVars: []string{"VEBBENCH_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "wordscan",
			Usage:   "force a word scan kernel (scalar, wide2, wide4); detected by default",
			EnvVars: []string{"VEBBENCH_WORDSCAN"},
		},
	}

	app.Before = func(cctx *cli.Context) error {
		logger := configLogger(cctx, os.Stderr)
		if name := cctx.String("wordscan"); name != "" {
			mode, ok := wordscan.ParseMode(name)
			if !ok {
				return fmt.Errorf("unknown word scan kernel: %q", name)
			}
			wordscan.Use(mode)
		}
		logger.Debug("word scan kernel", "mode", wordscan.Active())
		return nil
	}

	app.Commands = []*cli.Command{
		insertCmd,
		compareCmd,
	}

	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// commonFlags are shared by all benchmark commands.
func commonFlags(prefix string) []cli.Flag {
	return []cli.Flag{
		&cli.UintFlag{
			Name:    "bits",
			Usage:   "key width of the tree (24, 32, 40, 48 or 64)",
			Value:   48,
			EnvVars: []string{prefix + "_BITS"},
		},
		&cli.IntFlag{
			Name:    "num-inserts",
			Usage:   "number of keys to insert",
			Value:   10_000_000,
			EnvVars: []string{prefix + "_NUM_INSERTS"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed (0 picks one)",
			EnvVars: []string{prefix + "_SEED"},
		},
	}
}
