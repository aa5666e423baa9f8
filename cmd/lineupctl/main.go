// Command lineupctl rates players and builds lineups from the terminal,
// working directly on the configured roster file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/lineup/internal/adapters/repository"
	app "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/cli"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lineupctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.InitWithWriter(os.Stderr, cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc := app.New(
		app.WithLogger(logger.Named("lineupctl")),
		app.WithConfig(cfg),
		app.WithStore(repository.NewFileStore(cfg.RosterPath)),
		// mutating commands save explicitly
		app.WithAutoSave(false),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}

	root := cli.NewRootCommand(svc, os.Stdout)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
