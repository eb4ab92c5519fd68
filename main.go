package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quoridor/game9x9"
	"quoridor/internal/config"
	"quoridor/internal/logger"
	"quoridor/internal/remote"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "quoridor",
		Usage: "play Quoridor against a bot, locally or on the course server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Usage: "game server base URL", EnvVars: []string{"REMOTE_URL"}},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "play against the local bot",
				ArgsUsage: "NAME",
				Action:    playLocal,
			},
			{
				Name:      "remote",
				Usage:     "start a game on the server",
				ArgsUsage: "NAME",
				Action:    playRemote,
			},
			{
				Name:      "list",
				Usage:     "list your 20 latest server games",
				ArgsUsage: "NAME",
				Action:    listGames,
			},
		},
	}
}

func setup(c *cli.Context) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	if s := c.String("server"); s != "" {
		cfg.RemoteURL = s
	}
	if c.Bool("verbose") {
		cfg.LogLevel = "debug"
		cfg.LogDev = true
	} else {
		cfg.LogLevel = "warn"
	}
	log, err := logger.New(cfg)
	return cfg, log, err
}

func playerName(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.New("exactly one NAME is required")
	}
	return c.Args().First(), nil
}

func playLocal(c *cli.Context) error {
	name, err := playerName(c)
	if err != nil {
		return err
	}
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	table, err := game9x9.NewLocalTable(name, cfg.BotName)
	if err != nil {
		return err
	}
	return runSession(c, table)
}

func playRemote(c *cli.Context) error {
	name, err := playerName(c)
	if err != nil {
		return err
	}
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	client := remote.New(cfg.RemoteURL, cfg.RemoteTimeout, log)
	table, err := game9x9.StartRemote(c.Context, client, name)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Game %s started for %s.\n", table.ID(), name)
	return runSession(c, table)
}

func runSession(c *cli.Context, t game9x9.Table) error {
	_, err := game9x9.NewSession(t, os.Stdin, c.App.Writer).Run(c.Context)
	if errors.Is(err, game9x9.ErrCancelled) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(c.App.Writer, "\nGame cancelled.")
		return nil
	}
	return err
}

func listGames(c *cli.Context) error {
	name, err := playerName(c)
	if err != nil {
		return err
	}
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	games, err := remote.New(cfg.RemoteURL, cfg.RemoteTimeout, log).List(c.Context, name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(games)
}
